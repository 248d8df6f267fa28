// Package storage provides the durable key-value store backing the client's
// persisted session state. It is the local equivalent of the web app's
// localStorage: flat string keys, string values, no expiry.
package storage

import "encoding/json"

// Keys used by the session layer. The credential and the serialized profile
// are written as two independent keys; readers must tolerate one being
// present without the other.
const (
	TokenKey = "token"
	UserKey  = "user"
	ThemeKey = "theme"
)

// Store is the data-access contract for durable local state.
// Implementations live in this package; the logic layer depends on this
// interface only.
type Store interface {
	// Get returns the raw value for key. The second return value reports
	// whether the key exists.
	Get(key string) (string, bool)

	// Set writes value under key, overwriting any prior value.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// GetJSON reads key and unmarshals it into a T. A missing key or an
// unparsable value yields def; deserialization failure is deliberately
// degraded to "absent" rather than surfaced.
func GetJSON[T any](s Store, key string, def T) T {
	raw, ok := s.Get(key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}
	return v
}

// SetJSON marshals v and writes it under key.
func SetJSON[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
