package domain

import (
	"errors"
	"regexp"
	"strings"
)

// Validation errors for login/register preconditions.
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email address is invalid")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordWeak     = errors.New("password does not meet strength requirements")
	ErrNameRequired     = errors.New("name is required")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// PasswordStrength scores a password 0-5: one point each for length >= 8,
// a lowercase letter, an uppercase letter, a digit, and a special character.
// A score of 4 or more counts as acceptable.
func PasswordStrength(password string) int {
	score := 0
	if len(password) >= 8 {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		score++
	}
	if strings.ContainsAny(password, `!@#$%^&*(),.?":{}|<>`) {
		score++
	}
	return score
}

// Validate checks the login request preconditions.
func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmailRequired
	}
	if !ValidateEmail(r.Email) {
		return ErrEmailInvalid
	}
	if r.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// Validate checks the registration request preconditions, including
// password strength.
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmailRequired
	}
	if !ValidateEmail(r.Email) {
		return ErrEmailInvalid
	}
	if r.Password == "" {
		return ErrPasswordRequired
	}
	if PasswordStrength(r.Password) < 4 {
		return ErrPasswordWeak
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	return nil
}
