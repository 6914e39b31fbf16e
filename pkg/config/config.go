package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

// EnvVar is the environment variable that overrides the stored filter at
// startup.
const EnvVar = "DBG"

type Config struct {
	// Filter is the active namespace filter string, e.g. "app:*,-app:noise".
	Filter string `toml:"filter"`
	// Color controls colored output when the terminal supports it.
	Color bool `toml:"color"`
	// Hotkey enables the interactive keyboard toggle in watch mode.
	Hotkey bool `toml:"hotkey"`
	// HotkeySequence is the typed sequence that toggles the filter.
	HotkeySequence string `toml:"hotkey_sequence"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Filter:         "",
		Color:          true,
		Hotkey:         false,
		HotkeySequence: "ddd",
	}
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := GetDefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.HotkeySequence == "" {
		config.HotkeySequence = "ddd"
	}

	return config, nil
}

func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveTemplateConfig writes the annotated sample config so users get comments
// instead of a bare marshaled struct.
func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(configPath, []byte(configTemplate), 0644)
}

// FilterFromEnv returns the DBG environment override, if set. An empty value
// counts as set and means "disable everything".
func FilterFromEnv() (string, bool) {
	return os.LookupEnv(EnvVar)
}

// GetConfigDir returns the configuration directory for dbg
func GetConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if set, otherwise use ~/.config
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dbgConfigDir := filepath.Join(configDir, "dbg")

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(dbgConfigDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dbgConfigDir, err)
	}

	return dbgConfigDir, nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetDefaultHistoryPath returns the default filter-history database path
func GetDefaultHistoryPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "history.db"), nil
}
