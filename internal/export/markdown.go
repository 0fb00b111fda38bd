// Package export renders the journal as a Markdown document.
package export

import (
	"fmt"
	"math"
	"strings"
	"time"

	"hyperliquid-journal/internal/hyperliquid"
	"hyperliquid-journal/internal/journal"
	"hyperliquid-journal/internal/models"
)

// Markdown renders the full journal: trades newest first, the
// reflection section, and a portfolio snapshot when account state is
// available.
func Markdown(doc *journal.Document, state *hyperliquid.UserState, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Hyperliquid Emotional Trading Journal\n\n")
	fmt.Fprintf(&b, "Generated on: %s UTC\n\n", now.UTC().Format(models.TimeLayout))
	fmt.Fprintf(&b, "Track your trades and emotions to identify fear, greed, and FOMO patterns.\n\n")
	fmt.Fprintf(&b, "## Recent Trades\n")

	for _, t := range doc.AllTrades() {
		writeTrade(&b, t)
	}

	fmt.Fprintf(&b, "\n## Emotional Reflection\n")
	fmt.Fprintf(&b, "- **Recurring Patterns**: %s\n", doc.Reflections.Patterns)
	fmt.Fprintf(&b, "- **Triggers to Avoid**: %s\n", doc.Reflections.Triggers)
	fmt.Fprintf(&b, "- **Trading Plan Adjustments**: %s\n", doc.Reflections.Adjustments)
	fmt.Fprintf(&b, "- **Daily/Weekly Goal**: %s\n", doc.Reflections.Goals)

	fmt.Fprintf(&b, "\n## Portfolio Snapshot\n")
	writeSnapshot(&b, state)

	return b.String()
}

func writeTrade(b *strings.Builder, t models.Trade) {
	fmt.Fprintf(b, "\n### Trade: %s (%s) (ID: %s)\n", t.Coin, t.Side, t.ID)
	fmt.Fprintf(b, "- **Asset Pair**: %s/USD\n", t.Coin)
	fmt.Fprintf(b, "- **Position Type**: %s\n", t.Side)
	fmt.Fprintf(b, "- **Position Size**: %.4f %s\n", t.Size, t.Coin)
	fmt.Fprintf(b, "- **Entry Price**: $%.2f\n", t.Price)
	fmt.Fprintf(b, "- **Entry Time**: %s UTC\n", t.Time)
	fmt.Fprintf(b, "- **Profit/Loss**: $%.2f\n", t.PnL)
	fmt.Fprintf(b, "- **Fees Paid**: %.2f USDC\n", t.Fee)
	fmt.Fprintf(b, "- **Emotional State**: %s\n", t.EmotionalState)
	fmt.Fprintf(b, "- **Triggers**: %s\n", t.Triggers)
	fmt.Fprintf(b, "- **Psychological Mistakes**: %s\n", t.Mistakes)
	fmt.Fprintf(b, "- **Corrective Action**: %s\n", t.CorrectiveAction)
	fmt.Fprintf(b, "- **Last Edited**: %s\n", t.LastEdited)
}

func writeSnapshot(b *strings.Builder, state *hyperliquid.UserState) {
	if state == nil {
		fmt.Fprintf(b, "- **Account Equity**: $0.00 USDC\n- **Open Positions**: None\n")
		return
	}

	fmt.Fprintf(b, "- **Account Equity**: $%.2f USDC\n", state.AccountValue())

	if len(state.AssetPositions) == 0 {
		fmt.Fprintf(b, "- **Open Positions**: None\n")
		return
	}

	var parts []string
	for _, ap := range state.AssetPositions {
		pos := ap.Position
		parts = append(parts, fmt.Sprintf("%.4f %s %s", math.Abs(pos.Size()), pos.Coin, pos.Side()))
	}
	fmt.Fprintf(b, "- **Open Positions**: %s\n", strings.Join(parts, ", "))
}
