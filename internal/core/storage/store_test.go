package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/storage"
)

func newStore(t *testing.T, path string) *storage.FileStore {
	t.Helper()
	s, err := storage.NewFileStore(path, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := newStore(t, path)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("theme", "dark"))
	v, ok := s.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, s.Set("theme", "light"))
	v, _ = s.Get("theme")
	assert.Equal(t, "light", v)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := newStore(t, path)
	require.NoError(t, s.Set("token", "abc"))
	require.NoError(t, s.Set("theme", "dark"))
	require.NoError(t, s.Delete("theme"))

	reopened := newStore(t, path)
	v, ok := reopened.Get("token")
	require.True(t, ok)
	assert.Equal(t, "abc", v)
	_, ok = reopened.Get("theme")
	assert.False(t, ok)
}

func TestFileStore_DeleteMissingIsNoError(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, s.Delete("never-set"))
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := newStore(t, path)
	_, ok := s.Get("token")
	assert.False(t, ok)

	// The store must remain writable after recovery.
	require.NoError(t, s.Set("token", "fresh"))
}

func TestFileStore_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config", "state.json")
	s := newStore(t, path)
	require.NoError(t, s.Set("token", "abc"))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

type user struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestGetJSON(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "state.json"))

	// Missing key yields the default.
	got := storage.GetJSON(s, "user", user{})
	assert.Equal(t, user{}, got)

	require.NoError(t, storage.SetJSON(s, "user", user{ID: 7, Name: "Alex"}))
	got = storage.GetJSON(s, "user", user{})
	assert.Equal(t, user{ID: 7, Name: "Alex"}, got)

	// An unparsable value degrades to the default rather than erroring.
	require.NoError(t, s.Set("user", "{broken"))
	got = storage.GetJSON(s, "user", user{ID: -1})
	assert.Equal(t, user{ID: -1}, got)
}
