package cli

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"hyperliquid-journal/internal/journal"
)

func newSaveCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the journal to a snapshot file",
		Long: `Write the current journal into a date-named file
(trade-log-YYYYMMDD.json) in the journal directory, creating a
.backup of any file being overwritten, and flush the tag usage
counters. --file overrides the target path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			doc, _, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			path := file
			if path == "" {
				path = filepath.Join(app.Config.Journal.Dir, journal.DefaultFilename(time.Now().UTC()))
			}
			if err := app.saveJournal(doc, path); err != nil {
				return err
			}
			app.saveStats()

			if output.IsJSON() {
				return output.JSON(map[string]string{"saved": path})
			}
			output.Success("✓ Journal saved to %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "target file (default: trade-log-YYYYMMDD.json in the journal dir)")

	return cmd
}

func newLoadCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load a journal file and show its contents",
		Long: `Load a specific journal file, or the most recent one when no file
is given. A corrupted file falls back to its .backup sibling.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			path := file
			if path == "" {
				var err error
				path, err = journal.LatestFile(app.Config.Journal.Dir)
				if err != nil {
					return reportJournalError(output, err)
				}
			}

			doc, err := app.Store.Load(path)
			if err != nil {
				return reportJournalError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"journal":        path,
					"trades":         len(doc.Trades),
					"manual_trades":  len(doc.ManualTrades),
					"wallet_address": doc.ExtraString("wallet_address"),
					"saved_at":       doc.ExtraString("saved_at"),
				})
			}

			output.Success("✓ Loaded %s", path)
			output.Printf("  API trades:    %d\n", len(doc.Trades))
			output.Printf("  Manual trades: %d\n", len(doc.ManualTrades))
			if w := doc.ExtraString("wallet_address"); w != "" {
				output.Printf("  Wallet:        %s\n", w)
			}
			if s := doc.ExtraString("saved_at"); s != "" {
				output.Printf("  Saved at:      %s UTC\n", s)
			}
			if !doc.Reflections.IsEmpty() {
				output.Printf("  Reflection:    recorded\n")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "journal file to load (default: most recent)")

	return cmd
}
