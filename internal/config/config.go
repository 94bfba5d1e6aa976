// Package config loads and saves the pdash TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/theirongolddev/pdash/internal/model"
)

// Config holds all pdash configuration.
type Config struct {
	Defaults   model.ProjectInputs `toml:"defaults"`
	Appearance AppearanceConfig    `toml:"appearance"`
	Export     ExportConfig        `toml:"export"`
	Server     ServerConfig        `toml:"server"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ExportConfig controls where the dashboard writes PDF reports.
type ExportConfig struct {
	Dir string `toml:"dir,omitempty"`
}

// ServerConfig holds `pdash serve` settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: model.DefaultInputs(),
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8788",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pdash")
}

// Path returns the full path to the config file. PDASH_CONFIG overrides it.
func Path() string {
	if p := os.Getenv("PDASH_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Keys missing from the file keep their default values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ExportDir returns the directory PDF exports go to: the configured one, or
// the working directory.
func ExportDir(cfg Config) string {
	if cfg.Export.Dir != "" {
		return cfg.Export.Dir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
