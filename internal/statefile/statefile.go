// Package statefile persists generator state snapshots to disk for
// save/replay sessions. Writes are atomic: readers observe either no
// file or a complete 16-byte snapshot, never a partial write.
package statefile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/splitrand/rng"
)

// Save writes the state to filename atomically by writing a temporary
// file in the same directory and renaming it over the target. The
// rename is atomic per POSIX; the temp file lives in the same
// directory because cross-filesystem renames are not.
func Save(filename string, state rng.State) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmpFile, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	b := state.Bytes()
	if _, err := tmpFile.Write(b[:]); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil // Prevent defer cleanup

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads a state snapshot written by Save.
func Load(filename string) (rng.State, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return rng.State{}, fmt.Errorf("failed to read state file: %w", err)
	}
	state, err := rng.StateFromBytes(data)
	if err != nil {
		return rng.State{}, fmt.Errorf("%s: %w", filename, err)
	}
	return state, nil
}
