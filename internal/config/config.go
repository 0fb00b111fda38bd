// Package config provides configuration management for the journal
// application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Provider ProviderConfig `mapstructure:"provider"`
	UI       UIConfig       `mapstructure:"ui"`
}

// WalletConfig holds the connected wallet.
type WalletConfig struct {
	Address string `mapstructure:"address"`
}

// JournalConfig holds journal persistence configuration.
type JournalConfig struct {
	Dir        string `mapstructure:"dir"`         // where trade-log-*.json files live
	StatsFile  string `mapstructure:"stats_file"`  // usage stats path
	FetchLimit int    `mapstructure:"fetch_limit"` // fills kept per fetch
}

// ProviderConfig holds trade-data provider configuration.
type ProviderConfig struct {
	APIURL  string        `mapstructure:"api_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// Connected reports whether a wallet address is configured.
func (c *Config) Connected() bool {
	return c.Wallet.Address != ""
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/hyperliquid-journal"
	}
	return filepath.Join(home, ".config", "hyperliquid-journal")
}

// Load loads configuration from the specified directory. If
// configDir is empty, uses the default config directory. A missing
// config file is created from a template with defaults applied.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("creating config template: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("journal.dir", configDir)
	v.SetDefault("journal.stats_file", filepath.Join(configDir, "emotional_stats.json"))
	v.SetDefault("journal.fetch_limit", 10)
	v.SetDefault("provider.api_url", "https://api.hyperliquid.xyz")
	v.SetDefault("provider.timeout", 15*time.Second)
	v.SetDefault("ui.color_enabled", true)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HLJ_WALLET_ADDRESS"); v != "" {
		cfg.Wallet.Address = v
	}
	if v := os.Getenv("HLJ_JOURNAL_DIR"); v != "" {
		cfg.Journal.Dir = v
	}
	if v := os.Getenv("HLJ_API_URL"); v != "" {
		cfg.Provider.APIURL = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Journal.FetchLimit < 1 {
		return fmt.Errorf("journal.fetch_limit must be at least 1")
	}
	if c.Provider.Timeout < 0 {
		return fmt.Errorf("provider.timeout must be non-negative")
	}
	if c.Provider.APIURL == "" {
		return fmt.Errorf("provider.api_url must not be empty")
	}
	return nil
}

// StatsPath returns the usage stats file path.
func (c *Config) StatsPath() string {
	return c.Journal.StatsFile
}

// JournalPath returns the path of the journal file for a given day.
func (c *Config) JournalPath(filename string) string {
	return filepath.Join(c.Journal.Dir, filename)
}

const configTemplate = `# Hyperliquid Emotional Trading Journal configuration

[wallet]
# Read-only wallet address used to fetch trades. No private keys.
address = ""

[journal]
# Directory holding trade-log-*.json files and their backups.
# dir = ""
# stats_file = ""
fetch_limit = 10

[provider]
api_url = "https://api.hyperliquid.xyz"
timeout = "15s"

[ui]
color_enabled = true
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0o644)
}

// SaveWallet persists the wallet address back to the config file.
func SaveWallet(configDir, address string) error {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		if err := createTemplateConfig(configDir); err != nil {
			return err
		}
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	v.Set("wallet.address", address)
	return v.WriteConfigAs(filepath.Join(configDir, "config.toml"))
}
