package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the expect configuration
type Config struct {
	NoColor         *bool  `json:"noColor,omitempty" yaml:"noColor,omitempty"`
	Verbose         *bool  `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	SnapshotDir     string `json:"snapshotDir,omitempty" yaml:"snapshotDir,omitempty"`
	UpdateSnapshots *bool  `json:"updateSnapshots,omitempty" yaml:"updateSnapshots,omitempty"`
	MaxDiffLines    int    `json:"maxDiffLines,omitempty" yaml:"maxDiffLines,omitempty"` // 0 disables the cap
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetUpdateSnapshots returns the snapshot update setting, defaulting to false
func (c *Config) GetUpdateSnapshots() bool {
	return getBool(c.UpdateSnapshots, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".expect.json",
	"expect.json",
	".expect.yaml",
	".expect.yml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		cfg, err := loadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		return cfg.ApplyEnv(), nil
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := loadConfigFromFile(configPath)
			if err != nil {
				return nil, err
			}
			return cfg.ApplyEnv(), nil
		}
	}

	// Return defaults if no config file found
	return DefaultConfig().ApplyEnv(), nil
}

// loadConfigFromFile loads configuration from a specific file, choosing the
// decoder by extension
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv overrides settings from EXPECT_UPDATE_SNAPSHOTS and
// EXPECT_NO_COLOR and returns c.
func (c *Config) ApplyEnv() *Config {
	if v, ok := envBool("EXPECT_UPDATE_SNAPSHOTS"); ok {
		c.UpdateSnapshots = BoolPtr(v)
	}
	if v, ok := envBool("EXPECT_NO_COLOR"); ok {
		c.NoColor = BoolPtr(v)
	}
	return c
}

func envBool(name string) (bool, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.SnapshotDir != "" {
		result.SnapshotDir = other.SnapshotDir
	}
	if other.MaxDiffLines > 0 {
		result.MaxDiffLines = other.MaxDiffLines
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.UpdateSnapshots != nil {
		result.UpdateSnapshots = other.UpdateSnapshots
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
