package config

// DefaultSnapshotDir is where snapshots are stored unless configured otherwise
const DefaultSnapshotDir = "testdata"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		NoColor:         BoolPtr(false),
		Verbose:         BoolPtr(false),
		SnapshotDir:     DefaultSnapshotDir,
		UpdateSnapshots: BoolPtr(false),
		MaxDiffLines:    50,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.GetNoColor() == defaults.GetNoColor() &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.SnapshotDir == defaults.SnapshotDir &&
		c.GetUpdateSnapshots() == defaults.GetUpdateSnapshots() &&
		c.MaxDiffLines == defaults.MaxDiffLines
}
