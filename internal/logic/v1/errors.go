// Package v1 holds the client-side state stores for API version 1: the
// authenticated session, the navigation guard, and the itinerary,
// copywriting, and chat feature stores.
//
// Error Handling:
// Operations return sentinel errors wrapped with context via
// fmt.Errorf("%w"). Callers branch with errors.Is:
//
//	_, err := sess.Login(ctx, req)
//	switch {
//	case errors.Is(err, logicv1.ErrInvalidCredentials):
//	    // show "wrong email or password"
//	case errors.Is(err, logicv1.ErrAuthInFlight):
//	    // ignore the duplicate attempt
//	}
//
// No operation panics or lets a raw transport error escape undecorated.
package v1

import "errors"

// Sentinel errors for the session and feature stores.
var (
	// ErrNotAuthenticated indicates an operation that requires a logged-in
	// session was called while anonymous.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthInFlight indicates a login or registration is already running;
	// duplicate concurrent attempts are rejected rather than interleaved.
	ErrAuthInFlight = errors.New("authentication already in flight")

	// ErrInvalidCredentials indicates the backend rejected the email/password
	// pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists indicates the email is already registered.
	ErrUserExists = errors.New("user already exists")

	// ErrItineraryNotFound indicates the itinerary id is not in the local
	// collection.
	ErrItineraryNotFound = errors.New("itinerary not found")

	// ErrResultNotFound indicates the copywriting result id is not in the
	// local collection.
	ErrResultNotFound = errors.New("copywriting result not found")

	// ErrChatSessionNotFound indicates the chat session id is not in the
	// local collection.
	ErrChatSessionNotFound = errors.New("chat session not found")

	// ErrUnknownPlatform indicates an unsupported copywriting platform.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrUnknownTheme indicates an unsupported theme name.
	ErrUnknownTheme = errors.New("unknown theme")
)
