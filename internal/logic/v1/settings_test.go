package v1_test

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/storage"
	v1 "github.com/arx-shy/AI-Travel-Planner-Pro/internal/logic/v1"
)

func TestSettings_Theme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := storage.NewFileStore(path, zerolog.Nop())
	require.NoError(t, err)
	settings := v1.NewSettings(store, zerolog.Nop())

	assert.Equal(t, v1.ThemeSystem, settings.Theme(), "default theme")

	require.NoError(t, settings.SetTheme(v1.ThemeDark))
	assert.Equal(t, v1.ThemeDark, settings.Theme())

	// The preference survives a reopen.
	reopened, err := storage.NewFileStore(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, v1.ThemeDark, v1.NewSettings(reopened, zerolog.Nop()).Theme())
}

func TestSettings_SetThemeUnknown(t *testing.T) {
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"), zerolog.Nop())
	require.NoError(t, err)
	settings := v1.NewSettings(store, zerolog.Nop())

	err = settings.SetTheme("neon")
	require.ErrorIs(t, err, v1.ErrUnknownTheme)
	assert.Equal(t, v1.ThemeSystem, settings.Theme())
}

func TestSettings_GarbageStoredValueFallsBack(t *testing.T) {
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, store.Set(storage.ThemeKey, `"ultraviolet"`))

	settings := v1.NewSettings(store, zerolog.Nop())
	assert.Equal(t, v1.ThemeSystem, settings.Theme())
}
