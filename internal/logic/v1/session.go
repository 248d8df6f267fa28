package v1

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/domain"
	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/httpapi"
	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/storage"
	"github.com/arx-shy/AI-Travel-Planner-Pro/middleware"
)

// Session holds the authenticated identity, the bearer credential, and the
// usage-quota snapshot, and keeps the durable session record in sync.
//
// A Session is Anonymous (no identity, no credential), Authenticating (a
// login or registration is in flight), or Authenticated. The authenticated
// invariant is that identity and credential are set together and cleared
// together, always under the same lock acquisition, so no caller can observe
// a half-authenticated state.
type Session struct {
	api    *httpapi.Client
	store  storage.Store
	logger zerolog.Logger

	mu             sync.Mutex
	user           *domain.User
	token          string
	quota          *domain.Quota
	authenticating bool
}

// NewSession creates a Session. It starts Anonymous; call InitFromStorage
// to hydrate from a previous run.
func NewSession(api *httpapi.Client, store storage.Store, logger zerolog.Logger) *Session {
	return &Session{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// InitFromStorage adopts the persisted session record, if a complete one
// exists. A partial record (credential without identity, or the reverse) is
// treated as "not logged in" and left alone. Idempotent; safe to call more
// than once.
func (s *Session) InitFromStorage() {
	token, ok := s.store.Get(storage.TokenKey)
	if !ok || token == "" {
		return
	}
	user := storage.GetJSON[*domain.User](s.store, storage.UserKey, nil)
	if user == nil {
		return
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()
	s.logger.Debug().Int64("user_id", user.ID).Msg("Session hydrated from storage")
}

// Login authenticates with email and password. On success the session
// adopts the returned identity and credential, persists the record, and
// refreshes the quota snapshot. A concurrent duplicate attempt fails with
// ErrAuthInFlight.
func (s *Session) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := s.beginAuth(); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	defer s.endAuth()

	ctx, span := middleware.StartSpan(ctx, "session.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	var resp domain.AuthResponse
	if err := s.api.Post(ctx, "/api/v1/auth/login", req, &resp); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("auth.success", false))
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Login failed")
		if httpapi.StatusCode(err) == http.StatusUnauthorized {
			return nil, fmt.Errorf("login %q: %w", req.Email, ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("login %q: %w", req.Email, err)
	}

	s.adopt(&resp)
	span.SetAttributes(
		attribute.String("user.id", fmt.Sprint(resp.User.ID)),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")
	s.logger.Info().Int64("user_id", resp.User.ID).Msg("Login successful")

	// The quota snapshot refreshes on every successful login; failure here
	// is logged inside and never fails the login itself.
	s.FetchQuota(ctx)

	return s.User(), nil
}

// Register creates an account with email, password, and display name. The
// rest of the flow matches Login.
func (s *Session) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err := s.beginAuth(); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	defer s.endAuth()

	ctx, span := middleware.StartSpan(ctx, "session.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	var resp domain.AuthResponse
	if err := s.api.Post(ctx, "/api/v1/auth/register", req, &resp); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("registration.success", false))
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Registration failed")
		if httpapi.StatusCode(err) == http.StatusConflict {
			return nil, fmt.Errorf("register %q: %w", req.Email, ErrUserExists)
		}
		return nil, fmt.Errorf("register %q: %w", req.Email, err)
	}

	s.adopt(&resp)
	span.SetAttributes(
		attribute.String("user.id", fmt.Sprint(resp.User.ID)),
		attribute.Bool("registration.success", true),
	)
	span.AddEvent("user.registered")
	s.logger.Info().Int64("user_id", resp.User.ID).Msg("Registration successful")

	s.FetchQuota(ctx)

	return s.User(), nil
}

// Logout notifies the backend best-effort, then unconditionally clears the
// in-memory session and the persisted record. Logout always succeeds
// locally; a failing network call is logged, nothing more.
func (s *Session) Logout(ctx context.Context) {
	ctx, span := middleware.StartSpan(ctx, "session.logout", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if s.IsAuthenticated() {
		if err := s.api.Post(ctx, "/api/v1/auth/logout", nil, nil); err != nil {
			span.RecordError(err)
			s.logger.Warn().Err(err).Msg("Logout notification failed, clearing local session anyway")
		}
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.quota = nil
	s.mu.Unlock()

	s.clearPersisted()
	s.logger.Info().Msg("Logged out")
}

// FetchCurrentUser refreshes the identity from the backend and re-persists
// it. A no-op while anonymous. Network failure is logged and swallowed; the
// stale local identity is retained.
func (s *Session) FetchCurrentUser(ctx context.Context) {
	if !s.IsAuthenticated() {
		return
	}

	var user domain.User
	if err := s.api.Get(ctx, "/api/v1/auth/me", &user); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to refresh current user")
		return
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.persistUser(&user)
}

// FetchQuota replaces the quota snapshot wholesale from the backend. A
// no-op while anonymous; failure is logged and swallowed.
func (s *Session) FetchQuota(ctx context.Context) {
	if !s.IsAuthenticated() {
		return
	}

	var quota domain.Quota
	if err := s.api.Get(ctx, "/api/v1/auth/quota", &quota); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to refresh quota")
		return
	}

	s.mu.Lock()
	s.quota = &quota
	s.mu.Unlock()
}

// UpdateProfile sends a partial profile update and replaces the identity
// with the full profile the server returns — no local merge. Fails fast
// with ErrNotAuthenticated while anonymous; on failure local state is
// unchanged.
func (s *Session) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (*domain.User, error) {
	if !s.IsAuthenticated() {
		return nil, fmt.Errorf("update profile: %w", ErrNotAuthenticated)
	}

	var user domain.User
	if err := s.api.Put(ctx, "/api/v1/auth/me", upd, &user); err != nil {
		s.logger.Error().Err(err).Msg("Profile update failed")
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.persistUser(&user)

	return s.User(), nil
}

// Invalidate clears the in-memory identity, credential, and quota without
// the backend notification or storage writes of a full logout. The guard
// uses it when a stored credential turns out to be stale, and it is the
// session-invalidated hook for the HTTP client's 401 side effect.
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.quota = nil
	s.mu.Unlock()
}

// IsAuthenticated reports whether both identity and credential are present.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}

// IsAuthenticating reports whether a login or registration is in flight.
func (s *Session) IsAuthenticating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticating
}

// User returns a copy of the current identity, or nil while anonymous.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current credential, or the empty string.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Quota returns a copy of the current quota snapshot, or nil when none has
// been loaded.
func (s *Session) Quota() *domain.Quota {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota == nil {
		return nil
	}
	q := *s.quota
	return &q
}

// IsPro reports whether the identity's membership tier is exactly "pro".
func (s *Session) IsPro() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.IsPro()
}

// RemainingPlans derives the remaining plan-generation allowance:
// UnlimitedPlans (-1) for unlimited accounts, 0 when no quota has been
// loaded, the snapshot's remaining count otherwise.
func (s *Session) RemainingPlans() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.quota == nil:
		return 0
	case s.quota.Unlimited:
		return domain.UnlimitedPlans
	default:
		return s.quota.RemainingPlans
	}
}

func (s *Session) beginAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authenticating {
		return ErrAuthInFlight
	}
	s.authenticating = true
	return nil
}

func (s *Session) endAuth() {
	s.mu.Lock()
	s.authenticating = false
	s.mu.Unlock()
}

func (s *Session) adopt(resp *domain.AuthResponse) {
	user := resp.User

	s.mu.Lock()
	s.user = &user
	s.token = resp.AccessToken
	s.mu.Unlock()

	if err := s.store.Set(storage.TokenKey, resp.AccessToken); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist token")
	}
	s.persistUser(&user)
}

func (s *Session) persistUser(user *domain.User) {
	if err := storage.SetJSON(s.store, storage.UserKey, user); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist user profile")
	}
}

func (s *Session) clearPersisted() {
	if err := s.store.Delete(storage.TokenKey); err != nil {
		s.logger.Error().Err(err).Msg("Failed to clear stored token")
	}
	if err := s.store.Delete(storage.UserKey); err != nil {
		s.logger.Error().Err(err).Msg("Failed to clear stored user")
	}
}
