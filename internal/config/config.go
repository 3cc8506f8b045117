// Package config handles global resolver configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/holdon1221/ScholarSite/internal/match"
)

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "scholarsite"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	// DefaultStoreFile is the batch results database file name, created
	// in the working directory unless configured otherwise.
	DefaultStoreFile = "resolutions.db"
)

// Config is the resolver configuration stored in
// ~/.config/scholarsite/config.yml, with environment overrides.
type Config struct {
	CatalogPath string       `yaml:"catalog_path,omitempty"`
	StorePath   string       `yaml:"store_path,omitempty"`
	LogLevel    string       `yaml:"log_level,omitempty"`
	Match       match.Config `yaml:"match"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		StorePath: DefaultStoreFile,
		LogLevel:  "warn",
		Match:     match.DefaultConfig(),
	}
}

// Path returns the global config file path. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/scholarsite/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// Load reads the global config, then applies .env and environment
// overrides. A missing config file yields defaults, not an error.
func Load() (*Config, error) {
	cfg := Default()

	if path := Path(); path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// .env in the working directory, then real environment on top.
	_ = godotenv.Load()
	applyEnv(cfg)

	if cfg.Match.MaxFuzzyComparisons <= 0 {
		cfg.Match = match.DefaultConfig()
	}
	return cfg, nil
}

// applyEnv overrides config fields from SCHOLAR_* variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SCHOLAR_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("SCHOLAR_STORE"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("SCHOLAR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
