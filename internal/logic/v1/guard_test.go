package v1_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/domain"
	v1 "github.com/arx-shy/AI-Travel-Planner-Pro/internal/logic/v1"
)

func newGuard(env *sessionEnv) *v1.Guard {
	return v1.NewGuard(env.session, env.api, env.store, "/login", "/planner", zerolog.Nop())
}

func mustRoute(t *testing.T, path string) domain.Route {
	t.Helper()
	route, ok := domain.FindRoute(path)
	require.True(t, ok, "route %s not in table", path)
	return route
}

func TestGuard_AnonymousOnProtectedRoute(t *testing.T) {
	env := newSessionEnv(t)
	guard := newGuard(env)

	decision := guard.Authorize(context.Background(), mustRoute(t, "/planner"))
	assert.False(t, decision.Allowed)
	assert.Equal(t, "/login", decision.RedirectTo)
}

func TestGuard_AnonymousOnPublicRoute(t *testing.T) {
	env := newSessionEnv(t)
	guard := newGuard(env)

	decision := guard.Authorize(context.Background(), mustRoute(t, "/"))
	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.RedirectTo)
}

func TestGuard_AuthenticatedOnGuestRoute(t *testing.T) {
	env := newSessionEnv(t)
	env.backend.Seed(testEmail, testPassword, "Alex", domain.MembershipFree)
	env.login(t)
	guard := newGuard(env)

	decision := guard.Authorize(context.Background(), mustRoute(t, "/login"))
	assert.False(t, decision.Allowed)
	assert.Equal(t, "/planner", decision.RedirectTo)
}

func TestGuard_HydratesFromStoredCredential(t *testing.T) {
	env := newSessionEnv(t)
	env.backend.Seed(testEmail, testPassword, "Alex", domain.MembershipFree)
	env.login(t)

	// A fresh session with the persisted record but no in-memory state, as
	// after an app restart landing directly on a protected route.
	restarted := v1.NewSession(env.api, env.store, zerolog.Nop())
	guard := v1.NewGuard(restarted, env.api, env.store, "/login", "/planner", zerolog.Nop())

	decision := guard.Authorize(context.Background(), mustRoute(t, "/planner"))
	assert.True(t, decision.Allowed)
	assert.True(t, restarted.IsAuthenticated())
}

func TestGuard_StaleCredentialRedirectsToLogin(t *testing.T) {
	env := newSessionEnv(t)
	env.backend.Seed(testEmail, testPassword, "Alex", domain.MembershipFree)
	env.login(t)
	env.backend.Revoke(env.session.Token())

	restarted := v1.NewSession(env.api, env.store, zerolog.Nop())
	guard := v1.NewGuard(restarted, env.api, env.store, "/login", "/planner", zerolog.Nop())

	decision := guard.Authorize(context.Background(), mustRoute(t, "/planner"))
	assert.False(t, decision.Allowed)
	assert.Equal(t, "/login", decision.RedirectTo)
	assert.False(t, restarted.IsAuthenticated())
}

func TestGuard_StaleCredentialStillAllowsPublicRoute(t *testing.T) {
	env := newSessionEnv(t)
	env.backend.Seed(testEmail, testPassword, "Alex", domain.MembershipFree)
	env.login(t)
	env.backend.Revoke(env.session.Token())

	restarted := v1.NewSession(env.api, env.store, zerolog.Nop())
	guard := v1.NewGuard(restarted, env.api, env.store, "/login", "/planner", zerolog.Nop())

	decision := guard.Authorize(context.Background(), mustRoute(t, "/"))
	assert.True(t, decision.Allowed)
	assert.False(t, restarted.IsAuthenticated())
}

func TestGuard_RouteTable(t *testing.T) {
	for _, path := range []string{"/planner", "/qa", "/copywriter", "/settings", "/profile/edit"} {
		route := mustRoute(t, path)
		assert.True(t, route.RequiresAuth, "%s must require auth", path)
		assert.False(t, route.RequiresGuest)
	}
	for _, path := range []string{"/login", "/register"} {
		route := mustRoute(t, path)
		assert.True(t, route.RequiresGuest, "%s must be guest-only", path)
		assert.False(t, route.RequiresAuth)
	}

	_, ok := domain.FindRoute("/no-such-route")
	assert.False(t, ok)
}
