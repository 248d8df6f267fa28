package v1

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/storage"
)

// Theme names. "system" follows the OS preference.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Settings persists UI preferences in the durable store.
type Settings struct {
	store  storage.Store
	logger zerolog.Logger
}

// NewSettings creates a Settings store.
func NewSettings(store storage.Store, logger zerolog.Logger) *Settings {
	return &Settings{store: store, logger: logger}
}

// Theme returns the persisted theme, defaulting to system.
func (s *Settings) Theme() string {
	theme := storage.GetJSON(s.store, storage.ThemeKey, ThemeSystem)
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return theme
	default:
		return ThemeSystem
	}
}

// SetTheme persists the theme preference.
func (s *Settings) SetTheme(theme string) error {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return fmt.Errorf("set theme %q: %w", theme, ErrUnknownTheme)
	}
	if err := storage.SetJSON(s.store, storage.ThemeKey, theme); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	s.logger.Debug().Str("theme", theme).Msg("Theme updated")
	return nil
}
