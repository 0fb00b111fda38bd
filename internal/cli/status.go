package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"hyperliquid-journal/internal/hyperliquid"
	"hyperliquid-journal/internal/journal"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show journal and account status",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			doc, path, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			all := doc.AllTrades()
			var totalPnL, totalFees float64
			wins := 0
			tagged := 0
			for _, t := range all {
				totalPnL += t.PnL
				totalFees += t.Fee
				if t.PnL > 0 {
					wins++
				}
				if t.EmotionalState != "" || t.Triggers != "" || t.Mistakes != "" || t.CorrectiveAction != "" {
					tagged++
				}
			}
			winRate := 0.0
			if len(all) > 0 {
				winRate = float64(wins) / float64(len(all)) * 100
			}

			state := userStateFromDoc(doc)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"journal":        path,
					"wallet_address": doc.ExtraString("wallet_address"),
					"trades":         len(doc.Trades),
					"manual_trades":  len(doc.ManualTrades),
					"tagged_trades":  tagged,
					"total_pnl":      totalPnL,
					"total_fees":     totalFees,
					"win_rate":       winRate,
					"saved_at":       doc.ExtraString("saved_at"),
				})
			}

			lines := []string{
				fmt.Sprintf("Journal:        %s", TruncateString(path, 60)),
				fmt.Sprintf("API trades:     %d", len(doc.Trades)),
				fmt.Sprintf("Manual trades:  %d", len(doc.ManualTrades)),
				fmt.Sprintf("Tagged:         %d of %d", tagged, len(all)),
				fmt.Sprintf("Total P&L:      %s", output.FormatPnL(totalPnL)),
				fmt.Sprintf("Total fees:     %s", FormatUSD(totalFees)),
				fmt.Sprintf("Win rate:       %.1f%%", winRate),
			}
			if saved := doc.ExtraString("saved_at"); saved != "" {
				lines = append(lines, fmt.Sprintf("Last saved:     %s UTC", saved))
			}
			output.Box("Journal Status", lines)

			if state != nil {
				output.Println()
				output.Bold("Portfolio")
				output.Printf("  Account equity: %s USDC\n", FormatUSD(state.AccountValue()))
				if len(state.AssetPositions) == 0 {
					output.Printf("  Open positions: none\n")
				}
				for _, ap := range state.AssetPositions {
					pos := ap.Position
					side := output.Green(string(pos.Side()))
					if pos.Size() < 0 {
						side = output.Red(string(pos.Side()))
					}
					output.Printf("  %s %s %s  (uPnL %s)\n",
						FormatSize(abs(pos.Size())), pos.Coin, side, output.FormatPnL(pos.PnL()))
				}
			}
			return nil
		},
	}
}

// userStateFromDoc decodes the account snapshot stored alongside the
// journal, nil when absent or unreadable.
func userStateFromDoc(doc *journal.Document) *hyperliquid.UserState {
	raw, ok := doc.Extra["user_state"]
	if !ok {
		return nil
	}
	state := &hyperliquid.UserState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return nil
	}
	return state
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
