// Package cli wires the client stores together and exposes them as cobra
// commands. It is the navigation layer: the guard's redirect decisions and
// the session-invalidated event surface here.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arx-shy/AI-Travel-Planner-Pro/config"
	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/httpapi"
	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/storage"
	logicv1 "github.com/arx-shy/AI-Travel-Planner-Pro/internal/logic/v1"
)

// App holds the wired client components. There are no package-level
// singletons; everything hangs off this struct.
type App struct {
	Cfg    *config.Config
	Logger zerolog.Logger

	Store      storage.Store
	API        *httpapi.Client
	LongAPI    *httpapi.Client
	Session    *logicv1.Session
	Guard      *logicv1.Guard
	Planner    *logicv1.Planner
	Copywriter *logicv1.Copywriter
	Chat       *logicv1.Chat
	Settings   *logicv1.Settings
}

// NewApp builds the component graph: file store, the two HTTP clients
// (ordinary and long-timeout), the session hydrated from storage, and the
// feature stores.
func NewApp(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	store, err := storage.NewFileStore(cfg.Storage.StateFile, logger)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}

	// The hook closes over the session variable: the session consumes the
	// client, and the client's 401 side effect clears the session.
	var session *logicv1.Session
	invalidated := func() {
		if session != nil {
			session.Invalidate()
		}
		logger.Warn().Msg("Session invalidated, please log in again")
	}

	api := httpapi.New(cfg.API.BaseURL, store,
		httpapi.WithTimeout(cfg.API.Timeout),
		httpapi.WithLogger(logger),
		httpapi.WithSessionInvalidatedHook(invalidated),
	)
	longAPI := httpapi.New(cfg.API.BaseURL, store,
		httpapi.WithTimeout(cfg.API.LongTimeout),
		httpapi.WithLogger(logger),
		httpapi.WithSessionInvalidatedHook(invalidated),
	)

	session = logicv1.NewSession(api, store, logger)
	session.InitFromStorage()

	return &App{
		Cfg:        cfg,
		Logger:     logger,
		Store:      store,
		API:        api,
		LongAPI:    longAPI,
		Session:    session,
		Guard:      logicv1.NewGuard(session, api, store, cfg.Routes.Login, cfg.Routes.Home, logger),
		Planner:    logicv1.NewPlanner(logger),
		Copywriter: logicv1.NewCopywriter(logger),
		Chat:       logicv1.NewChat(logger),
		Settings:   logicv1.NewSettings(store, logger),
	}, nil
}
