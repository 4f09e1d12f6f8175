package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.IsDefault())
	assert.False(t, cfg.GetNoColor())
	assert.False(t, cfg.GetUpdateSnapshots())
	assert.Equal(t, DefaultSnapshotDir, cfg.SnapshotDir)
	assert.Equal(t, 50, cfg.MaxDiffLines)
}

func TestGetters_NilPointers(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.GetNoColor())
	assert.False(t, cfg.GetVerbose())
	assert.False(t, cfg.GetUpdateSnapshots())
}

func TestFindAndLoadConfig_JSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".expect.json"),
		[]byte(`{"noColor": true, "snapshotDir": "golden", "maxDiffLines": 10}`), 0644))

	cfg, err := FindAndLoadConfig(dir)
	require.NoError(t, err)

	assert.True(t, cfg.GetNoColor())
	assert.Equal(t, "golden", cfg.SnapshotDir)
	assert.Equal(t, 10, cfg.MaxDiffLines)
	assert.False(t, cfg.GetVerbose())
}

func TestFindAndLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".expect.yaml"),
		[]byte("verbose: true\nupdateSnapshots: true\n"), 0644))

	cfg, err := FindAndLoadConfig(dir)
	require.NoError(t, err)

	assert.True(t, cfg.GetVerbose())
	assert.True(t, cfg.GetUpdateSnapshots())
	assert.Equal(t, DefaultSnapshotDir, cfg.SnapshotDir)
}

func TestFindAndLoadConfig_NoFile(t *testing.T) {
	cfg, err := FindAndLoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultSnapshotDir, cfg.SnapshotDir)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expect.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("EXPECT_UPDATE_SNAPSHOTS", "true")
	t.Setenv("EXPECT_NO_COLOR", "1")

	cfg, err := FindAndLoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.GetUpdateSnapshots())
	assert.True(t, cfg.GetNoColor())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("EXPECT_NO_COLOR", "false")
	t.Setenv("EXPECT_UPDATE_SNAPSHOTS", "not-a-bool")

	cfg := &Config{NoColor: BoolPtr(true)}
	assert.Same(t, cfg, cfg.ApplyEnv())
	assert.False(t, cfg.GetNoColor())
	assert.Nil(t, cfg.UpdateSnapshots)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	merged := base.Merge(&Config{SnapshotDir: "other", NoColor: BoolPtr(true)})

	assert.Equal(t, "other", merged.SnapshotDir)
	assert.True(t, merged.GetNoColor())
	assert.Equal(t, DefaultSnapshotDir, base.SnapshotDir)
	assert.Same(t, base, base.Merge(nil))
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expect.json")
	cfg := DefaultConfig()
	cfg.SnapshotDir = "saved"
	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "saved", loaded.SnapshotDir)
}
