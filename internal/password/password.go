// Package password hashes and verifies user credentials with scrypt.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. Changing these invalidates stored hashes.
const (
	scryptN   = 16384
	scryptR   = 8
	scryptP   = 1
	saltBytes = 16
	keyBytes  = 64
)

// Hash derives a 64-byte key from the password under a fresh random salt
// and returns it encoded as "hex(key).hex(salt)".
func Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyBytes)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// Verify re-derives the key from the supplied password and the stored salt
// and compares it against the stored key in constant time. Any malformed
// stored value verifies as false rather than returning an error.
func Verify(password, encoded string) bool {
	stored, salt, ok := decode(encoded)
	if !ok {
		return false
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyBytes)
	if err != nil {
		return false
	}

	// Both keys are keyBytes long here; decode rejects anything else, so
	// the constant-time comparison is over equal-length inputs.
	return subtle.ConstantTimeCompare(stored, key) == 1
}

func decode(encoded string) (key, salt []byte, ok bool) {
	parts := strings.Split(encoded, ".")
	if len(parts) != 2 {
		return nil, nil, false
	}

	key, err := hex.DecodeString(parts[0])
	if err != nil || len(key) != keyBytes {
		return nil, nil, false
	}

	salt, err = hex.DecodeString(parts[1])
	if err != nil || len(salt) != saltBytes {
		return nil, nil, false
	}

	return key, salt, true
}
