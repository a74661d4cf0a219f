package statefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/splitrand/rng"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.state")

	g := rng.New([]byte("session"))
	for i := 0; i < 100; i++ {
		g.Uint32()
	}
	saved := g.State()

	require.NoError(t, Save(path, saved))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, saved, loaded)

	// The resumed generator replays the exact future of the saved one.
	resumed := rng.FromState(loaded)
	for i := 0; i < 1000; i++ {
		require.Equal(t, g.Uint32(), resumed.Uint32(), "step %d", i)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.state")

	first := rng.New([]byte("first")).State()
	second := rng.New([]byte("second")).State()

	require.NoError(t, Save(path, first))
	require.NoError(t, Save(path, second))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, second, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.state"))
	require.Error(t, err)
}

func TestLoadTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.state")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "16 bytes")
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.state")
	require.NoError(t, Save(path, rng.New(nil).State()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "session.state", entries[0].Name())
}
