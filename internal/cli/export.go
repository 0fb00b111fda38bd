package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"hyperliquid-journal/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal as Markdown",
		Long: `Render the journal to a Markdown document: all trades newest
first with their tags, the reflection section, and a portfolio
snapshot from the last fetched account state.

Without --out the document is written to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			doc, _, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			md := export.Markdown(doc, userStateFromDoc(doc), time.Now().UTC())

			if outPath == "" {
				output.Print("%s", md)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
				return err
			}
			app.Logger.Info().Str("path", outPath).Msg("Journal exported")

			if output.IsJSON() {
				return output.JSON(map[string]string{"exported": outPath})
			}
			output.Success("✓ Exported journal to %s", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to a file instead of stdout")

	return cmd
}
