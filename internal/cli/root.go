package cli

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hyperliquid-journal/internal/config"
	"hyperliquid-journal/internal/errors"
	"hyperliquid-journal/internal/hyperliquid"
	"hyperliquid-journal/internal/journal"
	"hyperliquid-journal/internal/logging"
	"hyperliquid-journal/internal/tags"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2025-08-25"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	ConfigDir string
	Logger    zerolog.Logger
	Client    *hyperliquid.Client
	Store     *journal.Store
	Stats     *tags.UsageStats
	Session   *tags.Session
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, configDir string, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
		Logger:    logger,
		Client:    hyperliquid.NewClient(cfg.Provider.APIURL, cfg.Provider.Timeout, logger),
		Store:     journal.NewStore(logger),
		Stats:     tags.NewUsageStats(),
		Session:   tags.NewSession(),
	}

	SetColorEnabled(cfg.UI.ColorEnabled)

	if err := app.Stats.Load(cfg.StatsPath()); err != nil {
		logger.Warn().Err(err).Str("path", cfg.StatsPath()).Msg("Failed to load usage stats")
	}

	rootCmd := &cobra.Command{
		Use:   "hlj",
		Short: "Hyperliquid Emotional Trading Journal",
		Long: `hlj is a personal trading journal for Hyperliquid wallets.

It fetches your recent trades from the Hyperliquid info API, lets you
record manual trades, and tags every trade with emotional states,
triggers, mistakes, and corrective actions to surface fear, greed,
and FOMO patterns over time.

Use 'hlj help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/hyperliquid-journal)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newWalletCmd(app))
	rootCmd.AddCommand(newFetchCmd(app))
	rootCmd.AddCommand(newStatusCmd(app))
	rootCmd.AddCommand(newTradeCmd(app))
	rootCmd.AddCommand(newTagsCmd(app))
	rootCmd.AddCommand(newReflectCmd(app))
	rootCmd.AddCommand(newExportCmd(app))
	rootCmd.AddCommand(newSaveCmd(app))
	rootCmd.AddCommand(newLoadCmd(app))

	return rootCmd
}

// wallet returns the normalized connected wallet address.
func (app *App) wallet() (string, error) {
	if !app.Config.Connected() {
		return "", errors.ErrNoWallet
	}
	return hyperliquid.NormalizeAddress(app.Config.Wallet.Address), nil
}

// openJournal loads the most recent journal file from the journal
// directory, or starts a fresh document when none exists yet. The
// returned path is where saves should go.
func (app *App) openJournal() (*journal.Document, string, error) {
	path, err := journal.LatestFile(app.Config.Journal.Dir)
	if err != nil {
		if errors.Is(err, errors.ErrJournalNotFound) {
			fresh := filepath.Join(app.Config.Journal.Dir, journal.DefaultFilename(time.Now().UTC()))
			return journal.NewDocument(), fresh, nil
		}
		return nil, "", err
	}

	doc, err := app.Store.Load(path)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}

// saveJournal persists the document and stamps the save time.
func (app *App) saveJournal(doc *journal.Document, path string) error {
	if err := doc.SetExtra("saved_at", time.Now().UTC().Format("2006-01-02 15:04:05")); err != nil {
		return err
	}
	if err := app.Store.Save(path, doc); err != nil {
		return err
	}
	logging.LogJournalSaved(app.Logger, path, len(doc.Trades), len(doc.ManualTrades))
	return nil
}

// saveStats flushes usage counters to disk. Failures are logged, not
// fatal; counters are rebuilt from future commits.
func (app *App) saveStats() {
	if err := app.Stats.Save(app.Config.StatsPath()); err != nil {
		app.Logger.Warn().Err(err).Str("path", app.Config.StatsPath()).Msg("Failed to save usage stats")
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("Hyperliquid Journal v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": app.ConfigDir})
			} else {
				output.Println(app.ConfigDir)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Wallet")
	if cfg.Connected() {
		output.Printf("  Address:       %s\n", cfg.Wallet.Address)
	} else {
		output.Printf("  Address:       %s\n", output.DimText("(not connected)"))
	}
	output.Println()

	output.Bold("Journal")
	output.Printf("  Directory:     %s\n", cfg.Journal.Dir)
	output.Printf("  Stats file:    %s\n", cfg.Journal.StatsFile)
	output.Printf("  Fetch limit:   %d\n", cfg.Journal.FetchLimit)
	output.Println()

	output.Bold("Provider")
	output.Printf("  API URL:       %s\n", cfg.Provider.APIURL)
	output.Printf("  Timeout:       %s\n", cfg.Provider.Timeout)

	return nil
}
