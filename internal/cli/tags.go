package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hyperliquid-journal/internal/errors"
	"hyperliquid-journal/internal/models"
	"hyperliquid-journal/internal/tags"
)

func newTagsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Browse the tag vocabulary and usage statistics",
	}

	cmd.AddCommand(newTagsShowCmd(app))
	cmd.AddCommand(newTagsTopCmd(app))

	return cmd
}

// tierSprint maps each popularity tier to a render style. Hotter
// tags stand out more.
var tierSprint = map[tags.Tier]func(a ...interface{}) string{
	tags.TierNone:   color.New(color.Faint).SprintFunc(),
	tags.TierLow:    color.New(color.FgWhite).SprintFunc(),
	tags.TierMedium: color.New(color.FgYellow).SprintFunc(),
	tags.TierHigh:   color.New(color.FgRed, color.Bold).SprintFunc(),
}

// categoriesForFlag resolves a --category value to the categories to
// render: all four when empty.
func categoriesForFlag(flag string) ([]models.TagCategory, error) {
	if flag == "" {
		return models.Categories(), nil
	}
	c := models.TagCategory(flag)
	if !c.Valid() {
		return nil, errors.Wrapf(errors.ErrUnknownCategory, "%q", flag)
	}
	return []models.TagCategory{c}, nil
}

func newTagsShowCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show tag options with usage counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			cats, err := categoriesForFlag(category)
			if err != nil {
				output.Error("Unknown category %q. Valid: emotional_states, triggers, mistakes, actions.", category)
				return err
			}

			if output.IsJSON() {
				out := make(map[string][]map[string]interface{})
				for _, c := range cats {
					opts, err := tags.Options(c)
					if err != nil {
						return err
					}
					entries := make([]map[string]interface{}, 0, len(opts))
					for _, v := range opts {
						entries = append(entries, map[string]interface{}{
							"value": v,
							"count": app.Stats.Count(c, v),
							"tier":  app.Stats.Tier(c, v),
						})
					}
					out[string(c)] = entries
				}
				return output.JSON(out)
			}

			for _, c := range cats {
				opts, err := tags.Options(c)
				if err != nil {
					return err
				}
				output.Bold("%s", c.Title())
				for _, v := range opts {
					count := app.Stats.Count(c, v)
					label := v
					if sprint := tierSprint[tags.TierForCount(count)]; sprint != nil {
						label = sprint(v)
					}
					if count > 0 {
						output.Printf("  %s %s\n", label, output.DimText(countSuffix(count)))
					} else {
						output.Printf("  %s\n", label)
					}
				}
				output.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "limit to one category")

	return cmd
}

func countSuffix(count int) string {
	if count == 1 {
		return "(used once)"
	}
	return fmt.Sprintf("(used %d times)", count)
}

func newTagsTopCmd(app *App) *cobra.Command {
	var (
		n        int
		category string
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the most-used tags per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			cats, err := categoriesForFlag(category)
			if err != nil {
				output.Error("Unknown category %q. Valid: emotional_states, triggers, mistakes, actions.", category)
				return err
			}

			if output.IsJSON() {
				out := make(map[string][]tags.Ranked)
				for _, c := range cats {
					out[string(c)] = app.Stats.TopN(c, n)
				}
				return output.JSON(out)
			}

			for _, c := range cats {
				ranked := app.Stats.TopN(c, n)
				output.Bold("%s", c.Title())
				if len(ranked) == 0 {
					output.Dim("  no usage recorded yet")
					output.Println()
					continue
				}
				table := NewTable(output, "TAG", "COUNT", "TIER")
				for _, r := range ranked {
					table.AddRow(r.Value, strconv.Itoa(r.Count), string(tags.TierForCount(r.Count)))
				}
				table.Render()
				output.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 5, "number of tags per category")
	cmd.Flags().StringVarP(&category, "category", "c", "", "limit to one category")

	return cmd
}
