package cli

import (
	"time"

	"github.com/spf13/cobra"

	"hyperliquid-journal/internal/errors"
	"hyperliquid-journal/internal/hyperliquid"
	"hyperliquid-journal/internal/logging"
	"hyperliquid-journal/internal/models"
	"hyperliquid-journal/pkg/utils"
)

func newFetchCmd(app *App) *cobra.Command {
	var (
		limit int
		retry bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch recent trades from Hyperliquid",
		Long: `Fetch the connected wallet's recent fills and account state from
the Hyperliquid info API and merge them into the journal.

Tags already written on previously fetched trades survive a refetch;
trades are matched by ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			addr, err := app.wallet()
			if err != nil {
				output.Error("No wallet connected. Run 'hlj wallet connect <address>' first.")
				return err
			}

			doc, path, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			ctx := cmd.Context()
			start := time.Now()

			fetchFills := func() ([]hyperliquid.Fill, error) {
				return app.Client.UserFills(ctx, addr)
			}
			fetchState := func() (*hyperliquid.UserState, error) {
				return app.Client.UserState(ctx, addr)
			}

			var fills []hyperliquid.Fill
			var state *hyperliquid.UserState
			if retry {
				cfg := utils.DefaultRetryConfig()
				fills, err = utils.RetryWithResult(ctx, cfg, fetchFills)
				if err == nil {
					state, err = utils.RetryWithResult(ctx, cfg, fetchState)
				}
			} else {
				fills, err = fetchFills()
				if err == nil {
					state, err = fetchState()
				}
			}
			if err != nil {
				return reportProviderError(output, err)
			}

			if limit > 0 && len(fills) > limit {
				fills = fills[:limit]
			}
			fetched := make([]models.Trade, 0, len(fills))
			for _, f := range fills {
				fetched = append(fetched, f.Trade())
			}
			doc.ReplaceAPITrades(fetched)

			if err := doc.SetExtra("wallet_address", addr); err != nil {
				return err
			}
			if err := doc.SetExtra("user_state", state); err != nil {
				return err
			}
			if err := app.saveJournal(doc, path); err != nil {
				return err
			}
			logging.LogFetch(app.Logger, addr, len(fetched), time.Since(start))

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"wallet_address": addr,
					"fetched":        len(fetched),
					"account_value":  state.AccountValue(),
					"journal":        path,
				})
			}

			output.Success("✓ Fetched %d trades for %s", len(fetched), addr)
			output.Printf("Account equity: %s USDC\n", FormatUSD(state.AccountValue()))
			output.Dim("Journal: %s", path)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "max trades to keep (default: journal.fetch_limit)")
	cmd.Flags().BoolVar(&retry, "retry", false, "retry transient failures with backoff")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("limit") {
			limit = app.Config.Journal.FetchLimit
		}
	}

	return cmd
}

// reportProviderError prints the user-facing description of a
// provider failure before returning it.
func reportProviderError(output *Output, err error) error {
	var perr *errors.ProviderError
	if errors.As(err, &perr) {
		output.Error("%s", perr.UserMessage())
	} else {
		output.Error("Fetch failed: %v", err)
	}
	return err
}

// reportJournalError prints a readable message for journal load
// failures before returning the error.
func reportJournalError(output *Output, err error) error {
	switch {
	case errors.Is(err, errors.ErrCorruptJournal):
		output.Error("Journal file is corrupted and no readable backup exists.")
	case errors.Is(err, errors.ErrJournalNotFound):
		output.Error("No journal file found.")
	default:
		output.Error("Failed to open journal: %v", err)
	}
	return err
}
