package cli

import (
	"github.com/spf13/cobra"

	"hyperliquid-journal/internal/journal"
)

func newReflectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "View or update the emotional reflection",
		Long: `The reflection is a set of four free-text fields persisted with the
journal: recurring patterns, triggers to avoid, trading plan
adjustments, and a daily or weekly goal.`,
	}

	cmd.AddCommand(newReflectSetCmd(app))
	cmd.AddCommand(newReflectShowCmd(app))

	return cmd
}

func newReflectSetCmd(app *App) *cobra.Command {
	var (
		patterns    string
		triggers    string
		adjustments string
		goals       string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update reflection fields",
		Long:  "Update the reflection. Flags change only the fields they name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			doc, path, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			changed := false
			if cmd.Flags().Changed("patterns") {
				doc.Reflections.Patterns = patterns
				changed = true
			}
			if cmd.Flags().Changed("triggers") {
				doc.Reflections.Triggers = triggers
				changed = true
			}
			if cmd.Flags().Changed("adjustments") {
				doc.Reflections.Adjustments = adjustments
				changed = true
			}
			if cmd.Flags().Changed("goals") {
				doc.Reflections.Goals = goals
				changed = true
			}

			if !changed {
				output.Warning("No fields given; nothing changed.")
				return nil
			}
			if err := app.saveJournal(doc, path); err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(doc.Reflections)
			}
			output.Success("✓ Reflection updated")
			printReflections(output, doc)
			return nil
		},
	}

	cmd.Flags().StringVar(&patterns, "patterns", "", "recurring emotional patterns")
	cmd.Flags().StringVar(&triggers, "triggers", "", "triggers to avoid")
	cmd.Flags().StringVar(&adjustments, "adjustments", "", "trading plan adjustments")
	cmd.Flags().StringVar(&goals, "goals", "", "daily or weekly goal")

	return cmd
}

func newReflectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current reflection",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			doc, _, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			if output.IsJSON() {
				return output.JSON(doc.Reflections)
			}
			if doc.Reflections.IsEmpty() {
				output.Println("No reflection recorded yet.")
				output.Dim("Set one with: hlj reflect set --patterns \"...\" --goals \"...\"")
				return nil
			}
			printReflections(output, doc)
			return nil
		},
	}
}

func printReflections(output *Output, doc *journal.Document) {
	output.Bold("Emotional Reflection")
	output.Printf("  Recurring patterns:   %s\n", doc.Reflections.Patterns)
	output.Printf("  Triggers to avoid:    %s\n", doc.Reflections.Triggers)
	output.Printf("  Plan adjustments:     %s\n", doc.Reflections.Adjustments)
	output.Printf("  Daily/weekly goal:    %s\n", doc.Reflections.Goals)
}
