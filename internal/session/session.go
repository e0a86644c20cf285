// Package session issues and resolves server-side sessions keyed by an
// opaque token held in a cookie.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a token does not resolve to a live session.
var ErrNotFound = errors.New("session not found")

// Store defines the interface for session persistence. Implementations must
// expire sessions after the TTL they were created with.
type Store interface {
	// Create records a new session for userID and returns its token.
	Create(ctx context.Context, userID int64) (string, error)
	// Get resolves a token to the user it was issued for. Returns
	// ErrNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (int64, error)
	// Destroy removes a session. Destroying an absent session is not an
	// error.
	Destroy(ctx context.Context, token string) error
}

// newToken returns 256 bits from the CSPRNG, hex encoded. The token is the
// session credential, so it never comes from a non-cryptographic source.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
