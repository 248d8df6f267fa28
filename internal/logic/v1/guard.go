package v1

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/domain"
	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/httpapi"
	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/storage"
)

// Decision is the outcome of a guard check. RedirectTo is empty when the
// navigation is allowed.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Guard intercepts navigation and enforces per-route authorization
// metadata against the current session state.
type Guard struct {
	session *Session
	api     *httpapi.Client
	store   storage.Store
	logger  zerolog.Logger

	loginRoute string
	homeRoute  string
}

// NewGuard creates a Guard. loginRoute receives anonymous users hitting
// protected routes; homeRoute receives authenticated users hitting
// guest-only routes.
func NewGuard(session *Session, api *httpapi.Client, store storage.Store, loginRoute, homeRoute string, logger zerolog.Logger) *Guard {
	return &Guard{
		session:    session,
		api:        api,
		store:      store,
		logger:     logger,
		loginRoute: loginRoute,
		homeRoute:  homeRoute,
	}
}

// Authorize decides whether navigation to route may proceed.
//
// When the in-memory session is anonymous but durable storage still holds a
// credential, the guard first hydrates the session and validates the
// credential with a lightweight who-am-i call. A failed validation clears
// the in-memory state directly, without the full logout side effects, and
// the decision is then made against the settled state:
//
//  1. route requires auth, session anonymous  -> redirect to login
//  2. route requires guest, session authed    -> redirect home
//  3. otherwise                               -> allow
func (g *Guard) Authorize(ctx context.Context, route domain.Route) Decision {
	if !g.session.IsAuthenticated() {
		if token, ok := g.store.Get(storage.TokenKey); ok && token != "" {
			g.session.InitFromStorage()

			var me domain.User
			if err := g.api.Get(ctx, "/api/v1/auth/me", &me); err != nil {
				g.logger.Warn().Err(err).Msg("Stored credential failed validation, clearing session")
				g.session.Invalidate()
			}
		}
	}

	authed := g.session.IsAuthenticated()
	switch {
	case route.RequiresAuth && !authed:
		g.logger.Debug().Str("route", route.Path).Msg("Navigation denied, login required")
		return Decision{RedirectTo: g.loginRoute}
	case route.RequiresGuest && authed:
		g.logger.Debug().Str("route", route.Path).Msg("Guest-only route, redirecting home")
		return Decision{RedirectTo: g.homeRoute}
	default:
		return Decision{Allowed: true}
	}
}
