package domain

import "time"

// Membership levels as the backend reports them.
const (
	MembershipFree = "free"
	MembershipPro  = "pro"
)

// User represents the authenticated user's profile as returned by
// GET /api/v1/auth/me and embedded in login/register responses.
type User struct {
	ID                int64             `json:"id"`
	Email             string            `json:"email"`
	Name              string            `json:"name"`
	AvatarURL         string            `json:"avatar_url,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	Gender            string            `json:"gender,omitempty"`
	BirthDate         string            `json:"birth_date,omitempty"`
	City              string            `json:"city,omitempty"`
	Country           string            `json:"country,omitempty"`
	Bio               string            `json:"bio,omitempty"`
	PreferredLanguage string            `json:"preferred_language,omitempty"`
	PreferredCurrency string            `json:"preferred_currency,omitempty"`
	SocialAccounts    map[string]string `json:"social_accounts,omitempty"`
	MembershipLevel   string            `json:"membership_level"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// IsPro reports whether the profile carries the pro membership level.
// Any other value, including the empty string, counts as free.
func (u *User) IsPro() bool {
	return u != nil && u.MembershipLevel == MembershipPro
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is the flat token-plus-profile payload returned by the
// login and register endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

// ProfileUpdate is the partial body of PUT /api/v1/auth/me. Nil fields are
// omitted from the request; the server responds with the full profile.
type ProfileUpdate struct {
	Name              *string           `json:"name,omitempty"`
	AvatarURL         *string           `json:"avatar_url,omitempty"`
	Phone             *string           `json:"phone,omitempty"`
	Gender            *string           `json:"gender,omitempty"`
	BirthDate         *string           `json:"birth_date,omitempty"`
	City              *string           `json:"city,omitempty"`
	Country           *string           `json:"country,omitempty"`
	Bio               *string           `json:"bio,omitempty"`
	PreferredLanguage *string           `json:"preferred_language,omitempty"`
	PreferredCurrency *string           `json:"preferred_currency,omitempty"`
	SocialAccounts    map[string]string `json:"social_accounts,omitempty"`
}
