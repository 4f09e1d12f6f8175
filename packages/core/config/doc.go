// Package config handles configuration loading for expect.
//
// It provides functionality for:
//   - Loading configuration from .expect.json or .expect.yaml files
//   - Default configuration values
//   - Environment overrides (EXPECT_UPDATE_SNAPSHOTS, EXPECT_NO_COLOR)
package config
