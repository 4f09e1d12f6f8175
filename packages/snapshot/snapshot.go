package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/abdul-hamid-achik/expect/packages/core/config"
)

const (
	// SnapshotDir is the directory name for storing snapshots
	SnapshotDir = "__snapshots__"
	// SnapshotExt is the file extension for snapshot files
	SnapshotExt = ".snap.json"
	// MessageMismatch is the Result message when a stored snapshot differs
	MessageMismatch = "snapshot mismatch"
)

// Manager handles snapshot storage and comparison. It is safe for
// concurrent use, so parallel tests can share one.
type Manager struct {
	baseDir    string
	updateMode bool

	mu            sync.Mutex
	snapshotsRead map[string]map[string]any // file -> {name -> value}
}

// NewManager creates a new snapshot manager.
func NewManager(baseDir string, updateMode bool) *Manager {
	return &Manager{
		baseDir:       baseDir,
		updateMode:    updateMode,
		snapshotsRead: make(map[string]map[string]any),
	}
}

// FromConfig creates a manager using the configured directory and update mode.
func FromConfig(cfg *config.Config) *Manager {
	return NewManager(cfg.SnapshotDir, cfg.GetUpdateSnapshots())
}

// Result represents the result of a snapshot comparison.
type Result struct {
	Passed     bool
	Message    string
	Expected   any
	Actual     any
	IsNew      bool
	WasUpdated bool
}

// Suite binds a manager to one snapshot file.
type Suite struct {
	manager *Manager
	name    string
}

// Suite returns the snapshot suite stored under name, typically t.Name().
func (m *Manager) Suite(name string) *Suite {
	return &Suite{manager: m, name: name}
}

// Compare compares actual against the snapshot stored under name.
func (s *Suite) Compare(name string, actual any) *Result {
	return s.manager.Compare(s.name, name, actual)
}

// Compare compares an actual value against a stored snapshot.
// If updateMode is true and there's a mismatch, the snapshot is updated.
// The name parameter is optional; if empty, a hash of the value is used.
func (m *Manager) Compare(suite string, snapshotName string, actual any) *Result {
	normalized, err := normalize(actual)
	if err != nil {
		return &Result{Actual: actual, Message: fmt.Sprintf("failed to encode value: %v", err)}
	}
	result := &Result{
		Actual: normalized,
	}

	snapshotFile := m.filePath(suite)
	key := m.generateKey(snapshotName, normalized)

	m.mu.Lock()
	defer m.mu.Unlock()

	snapshots, err := m.loadSnapshots(snapshotFile)
	if err != nil {
		result.Message = fmt.Sprintf("failed to load snapshots: %v", err)
		return result
	}

	expected, exists := snapshots[key]
	if !exists {
		if !m.updateMode {
			result.Message = "snapshot does not exist (set EXPECT_UPDATE_SNAPSHOTS=1 to create)"
			return result
		}
		snapshots[key] = normalized
		if err := m.saveSnapshots(snapshotFile, snapshots); err != nil {
			result.Message = fmt.Sprintf("failed to save snapshot: %v", err)
			return result
		}
		result.Passed = true
		result.IsNew = true
		result.Expected = normalized
		result.Message = "new snapshot created"
		return result
	}

	result.Expected = expected
	if reflect.DeepEqual(expected, normalized) {
		result.Passed = true
		return result
	}

	if m.updateMode {
		snapshots[key] = normalized
		if err := m.saveSnapshots(snapshotFile, snapshots); err != nil {
			result.Message = fmt.Sprintf("failed to update snapshot: %v", err)
			return result
		}
		result.Passed = true
		result.WasUpdated = true
		result.Message = "snapshot updated"
		return result
	}

	result.Message = MessageMismatch
	return result
}

// filePath returns the snapshot file for a suite. Subtest separators and
// spaces are flattened so the name is a single file.
func (m *Manager) filePath(suite string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(suite)
	return filepath.Join(m.baseDir, SnapshotDir, name+SnapshotExt)
}

// generateKey generates a unique key for a snapshot.
func (m *Manager) generateKey(snapshotName string, value any) string {
	if snapshotName != "" {
		return snapshotName
	}
	hash := sha256.Sum256([]byte(fmt.Sprintf("%v", value)))
	return "anon_" + hex.EncodeToString(hash[:8])
}

// loadSnapshots loads snapshots from a file. m.mu must be held.
func (m *Manager) loadSnapshots(path string) (map[string]any, error) {
	if cached, ok := m.snapshotsRead[path]; ok {
		return cached, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, err
	}

	var snapshots map[string]any
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, err
	}
	if snapshots == nil {
		snapshots = make(map[string]any)
	}

	m.snapshotsRead[path] = snapshots
	return snapshots, nil
}

// saveSnapshots saves snapshots to a file. m.mu must be held.
func (m *Manager) saveSnapshots(path string, snapshots map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return err
	}

	m.snapshotsRead[path] = snapshots

	return os.WriteFile(path, data, 0644)
}

// normalize round-trips v through JSON so stored and fresh values compare
// with the same types.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
