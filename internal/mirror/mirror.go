// Package mirror implements the durable key-value mirror: a best-effort
// persisted copy of in-memory state (cart contents, user profiles) used
// to survive a restart. The in-memory state stays authoritative during a
// session; a failed mirror write is logged by callers and never
// interrupts the user flow.
package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound returned when a key has no mirrored value
var ErrNotFound = errors.New("mirror: key not found")

// Key prefixes
const (
	KeyPrefixCart = "cart:"
	KeyPrefixUser = "user:"
)

// CartKey mirror key for a session's cart
func CartKey(sessionID string) string {
	return KeyPrefixCart + sessionID
}

// UserKey mirror key for a member profile
func UserKey(userID string) string {
	return KeyPrefixUser + userID
}

// Store durable key-value mirror boundary
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ReadJSON reads and unmarshals a mirrored value into dest
func ReadJSON(ctx context.Context, s Store, key string, dest interface{}) error {
	data, err := s.Read(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("mirror: decode %s: %w", key, err)
	}
	return nil
}

// WriteJSON marshals and writes a value under key
func WriteJSON(ctx context.Context, s Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("mirror: encode %s: %w", key, err)
	}
	return s.Write(ctx, key, data)
}
