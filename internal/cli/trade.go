package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hyperliquid-journal/internal/errors"
	"hyperliquid-journal/internal/logging"
	"hyperliquid-journal/internal/models"
)

func newTradeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Manage journal trades",
		Long: `List, inspect, add, delete, and tag trades.

API-sourced and manually entered trades share one journal; manual
trades carry generated IDs prefixed with "manual-".`,
	}

	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeShowCmd(app))
	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))
	cmd.AddCommand(newTradeTagCmd(app))

	return cmd
}

func newTradeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all trades, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			doc, _, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			all := doc.AllTrades()
			if output.IsJSON() {
				return output.JSON(all)
			}
			if len(all) == 0 {
				output.Println("No trades in the journal yet.")
				output.Dim("Fetch with 'hlj fetch' or add one with 'hlj trade add'.")
				return nil
			}

			table := NewTable(output, "ID", "COIN", "SIDE", "SIZE", "PRICE", "PNL", "TIME", "TYPE", "TAGGED")
			for _, t := range all {
				side := output.Green(string(t.Side))
				if t.Side == models.SideShort {
					side = output.Red(string(t.Side))
				}
				tagged := ""
				if t.EmotionalState != "" || t.Triggers != "" || t.Mistakes != "" || t.CorrectiveAction != "" {
					tagged = "✓"
				}
				table.AddRow(
					TruncateString(t.ID, 16),
					t.Coin,
					side,
					FormatSize(t.Size),
					FormatPrice(t.Price),
					output.FormatPnL(t.PnL),
					t.Time,
					string(t.Type),
					tagged,
				)
			}
			table.Render()
			return nil
		},
	}
}

func newTradeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one trade in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			doc, _, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			t := doc.FindTrade(args[0])
			if t == nil {
				output.Error("Trade %s not found.", args[0])
				return errors.Wrapf(errors.ErrTradeNotFound, "%s", args[0])
			}

			if output.IsJSON() {
				return output.JSON(t)
			}

			output.Bold("%s (%s) — %s", t.Coin, t.Side, t.ID)
			output.Printf("  Size:       %s %s\n", FormatSize(t.Size), t.Coin)
			output.Printf("  Price:      %s\n", FormatUSD(t.Price))
			output.Printf("  P&L:        %s\n", output.FormatPnL(t.PnL))
			output.Printf("  Fee:        %s USDC\n", FormatUSD(t.Fee))
			output.Printf("  Time:       %s UTC\n", t.Time)
			if t.Leverage > 0 {
				output.Printf("  Leverage:   %dx\n", t.Leverage)
			}
			output.Printf("  Type:       %s\n", t.Type)
			if t.LastEdited != "" {
				output.Printf("  Edited:     %s UTC\n", t.LastEdited)
			}
			output.Println()
			for _, c := range models.Categories() {
				val := t.TagField(c)
				if val == "" {
					val = output.DimText("(none)")
				}
				output.Printf("  %-22s %s\n", c.Title()+":", val)
			}
			return nil
		},
	}
}

func newTradeAddCmd(app *App) *cobra.Command {
	var (
		coin     string
		side     string
		size     float64
		price    float64
		pnl      float64
		fee      float64
		when     string
		leverage int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a manual trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			t, err := buildManualTrade(coin, side, size, price, pnl, fee, when, leverage)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			doc, path, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			id, err := doc.AddManualTrade(t)
			if err != nil {
				return err
			}
			if err := app.saveJournal(doc, path); err != nil {
				return err
			}
			log := logging.WithTradeID(app.Logger, id)
			log.Info().Str("coin", t.Coin).Msg("Manual trade added")

			if output.IsJSON() {
				return output.JSON(map[string]string{"id": id})
			}
			output.Success("✓ Added manual trade %s", id)
			output.Dim("Tag it with: hlj trade tag %s --emotion <value>", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&coin, "coin", "", "asset symbol, e.g. BTC")
	cmd.Flags().StringVar(&side, "side", "long", "position side: long or short")
	cmd.Flags().Float64Var(&size, "size", 0, "position size")
	cmd.Flags().Float64Var(&price, "price", 0, "entry price in USD")
	cmd.Flags().Float64Var(&pnl, "pnl", 0, "realized profit or loss in USD")
	cmd.Flags().Float64Var(&fee, "fee", 0, "fees paid in USDC")
	cmd.Flags().StringVar(&when, "time", "", "entry time (2006-01-02 15:04:05, default: now)")
	cmd.Flags().IntVar(&leverage, "leverage", 0, "leverage multiplier")
	cmd.MarkFlagRequired("coin")
	cmd.MarkFlagRequired("size")
	cmd.MarkFlagRequired("price")

	return cmd
}

func buildManualTrade(coin, side string, size, price, pnl, fee float64, when string, leverage int) (models.Trade, error) {
	var t models.Trade

	coin = strings.ToUpper(strings.TrimSpace(coin))
	if coin == "" {
		return t, errors.NewValidationError("coin", coin, "must not be empty")
	}
	var s models.Side
	switch strings.ToLower(side) {
	case "long", "buy", "b":
		s = models.SideLong
	case "short", "sell", "a":
		s = models.SideShort
	default:
		return t, errors.NewValidationError("side", side, "must be long or short")
	}
	if size <= 0 {
		return t, errors.NewValidationError("size", size, "must be positive")
	}
	if price <= 0 {
		return t, errors.NewValidationError("price", price, "must be positive")
	}
	if leverage < 0 {
		return t, errors.NewValidationError("leverage", leverage, "must not be negative")
	}

	if when == "" {
		when = time.Now().UTC().Format(models.TimeLayout)
	} else if _, err := time.Parse(models.TimeLayout, when); err != nil {
		return t, errors.NewValidationError("time", when, "must match 2006-01-02 15:04:05")
	}

	return models.Trade{
		Coin:     coin,
		Side:     s,
		Size:     size,
		Price:    price,
		PnL:      pnl,
		Fee:      fee,
		Time:     when,
		Leverage: leverage,
		Type:     models.TradeTypeManual,
	}, nil
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a trade from the journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			doc, path, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			if !doc.DeleteTrade(args[0]) {
				output.Warning("Trade %s not found; nothing deleted.", args[0])
				return nil
			}
			app.Session.Discard(args[0])
			if err := app.saveJournal(doc, path); err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]string{"deleted": args[0]})
			}
			output.Success("✓ Deleted trade %s", args[0])
			return nil
		},
	}
}

func newTradeTagCmd(app *App) *cobra.Command {
	var (
		emotions   []string
		triggers   []string
		mistakes   []string
		actions    []string
		clears     []string
		resetState bool
	)

	cmd := &cobra.Command{
		Use:   "tag <id>",
		Short: "Tag a trade with emotional analysis",
		Long: `Toggle tag values on a trade and commit the result.

Each flag value toggles: selecting an already-selected value removes
it. Values outside the canonical lists are accepted as custom tags.
Committing updates the usage counters exactly once per command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			doc, path, err := app.openJournal()
			if err != nil {
				return reportJournalError(output, err)
			}

			t := doc.FindTrade(args[0])
			if t == nil {
				output.Error("Trade %s not found.", args[0])
				return errors.Wrapf(errors.ErrTradeNotFound, "%s", args[0])
			}

			if resetState {
				for _, c := range models.Categories() {
					app.Session.Get(t.ID, c).Reset()
				}
			}
			app.Session.SeedFromTrade(t)

			for _, name := range clears {
				if name == "all" {
					for _, c := range models.Categories() {
						app.Session.Get(t.ID, c).Clear()
					}
					continue
				}
				c := models.TagCategory(name)
				if !c.Valid() {
					output.Error("Unknown category %q. Valid: emotional_states, triggers, mistakes, actions, all.", name)
					return errors.Wrapf(errors.ErrUnknownCategory, "%q", name)
				}
				app.Session.Get(t.ID, c).Clear()
			}
			toggles := map[models.TagCategory][]string{
				models.CategoryEmotionalStates: emotions,
				models.CategoryTriggers:        triggers,
				models.CategoryMistakes:        mistakes,
				models.CategoryActions:         actions,
			}
			for _, c := range models.Categories() {
				sel := app.Session.Get(t.ID, c)
				for _, v := range toggles[c] {
					if v = strings.TrimSpace(v); v != "" {
						sel.Toggle(v)
					}
				}
			}

			t.Touch(time.Now().UTC())
			if err := app.Session.Commit(t, app.Stats); err != nil {
				return err
			}
			if err := app.saveJournal(doc, path); err != nil {
				return err
			}
			app.saveStats()
			app.Session.Discard(t.ID)

			for _, c := range models.Categories() {
				if v := t.TagField(c); v != "" {
					logging.LogTagCommit(app.Logger, t.ID, string(c), v)
				}
			}

			if output.IsJSON() {
				return output.JSON(t)
			}
			output.Success("✓ Tagged trade %s", t.ID)
			for _, c := range models.Categories() {
				val := t.TagField(c)
				if val == "" {
					val = output.DimText("(none)")
				}
				output.Printf("  %-22s %s\n", c.Title()+":", val)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&emotions, "emotion", nil, "toggle an emotional state")
	cmd.Flags().StringArrayVar(&triggers, "trigger", nil, "toggle a trigger")
	cmd.Flags().StringArrayVar(&mistakes, "mistake", nil, "toggle a psychological mistake")
	cmd.Flags().StringArrayVar(&actions, "action", nil, "toggle a corrective action")
	cmd.Flags().StringArrayVar(&clears, "clear", nil, "clear a category (or 'all') before applying toggles")
	cmd.Flags().BoolVar(&resetState, "reset", false, "drop in-memory state and re-seed from stored tags")

	return cmd
}
