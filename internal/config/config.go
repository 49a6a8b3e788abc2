package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/arcanaland/deckbuilder/internal/card"
)

// Config represents the application configuration
type Config struct {
	Catalog string `toml:"catalog" env:"DECKBUILDER_CATALOG"`
	Output  string `toml:"output" env:"DECKBUILDER_OUTPUT"`
	Decks   int    `toml:"decks" env:"DECKBUILDER_DECKS"`
	Seed    uint64 `toml:"seed" env:"DECKBUILDER_SEED"`
	Balance bool   `toml:"balance" env:"DECKBUILDER_BALANCE"`

	Rules Rules `toml:"rules"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Output: "decks.txt",
		Decks:  5,
		Rules:  DefaultRules(),
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDataDir returns the directory holding catalogs
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), "deckbuilder")
}

// GetDefaultCatalogPath returns where `library init` writes the default catalog
func GetDefaultCatalogPath() string {
	return filepath.Join(GetDataDir(), "catalog.csv")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "deckbuilder", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing,
// then applies environment overrides.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		config, err = LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFile decodes a config file on top of the defaults
func LoadConfigFile(path string) (*Config, error) {
	config := Default()
	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	// An affinity table in the file replaces the default one
	if md.IsDefined("rules", "affinity") {
		affinity := make(map[string]string)
		for suit, id := range config.Rules.Affinity {
			if md.IsDefined("rules", "affinity", suit) {
				affinity[suit] = id
			}
		}
		config.Rules.Affinity = affinity
	}
	config.Rules.Affinity = normalizeAffinity(config.Rules.Affinity)

	return config, nil
}

// normalizeAffinity title-cases affinity suits the way catalog suits are
func normalizeAffinity(affinity map[string]string) map[string]string {
	normalized := make(map[string]string, len(affinity))
	for suit, id := range affinity {
		normalized[card.NormalizeSuit(suit)] = strings.TrimSpace(id)
	}
	return normalized
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()
	if err := writeConfig(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(path string, config *Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Validate checks the run settings and the game rules
func (c *Config) Validate() error {
	if c.Decks < 0 {
		return fmt.Errorf("invalid deck count: %d", c.Decks)
	}
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	return nil
}

// ResolveCatalogPath returns the configured catalog, else the one written by
// `library init`, else "" meaning the embedded catalog.
func (c *Config) ResolveCatalogPath() string {
	if c.Catalog != "" {
		return c.Catalog
	}
	if _, err := os.Stat(GetDefaultCatalogPath()); err == nil {
		return GetDefaultCatalogPath()
	}
	return ""
}
