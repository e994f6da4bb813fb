// Package password derives and verifies salted scrypt password hashes.
//
// Stored format is "salt.hash" where both parts are hex-encoded: the salt is
// 8 random bytes generated at registration, the hash is a 32-byte scrypt key.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltBytes = 8
	keyLen    = 32

	// scrypt cost parameters.
	costN = 16384
	costR = 8
	costP = 1
)

// ErrMalformedHash is returned when a stored value is not in salt.hash form.
var ErrMalformedHash = errors.New("malformed password hash")

// Hasher derives and verifies scrypt password hashes.
//
// It is a struct so the cost factor can be lowered in tests; scrypt at the
// production cost takes tens of milliseconds per call.
type Hasher struct {
	n int
}

// New creates a Hasher with production cost parameters.
func New() *Hasher {
	return &Hasher{n: costN}
}

// NewWithCost creates a Hasher with a custom scrypt N. Test use only.
func NewWithCost(n int) *Hasher {
	return &Hasher{n: n}
}

// Hash derives a salted hash from a plaintext password, generating a fresh
// random salt. The result is stored as-is in the user row.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	key, err := h.derive(plaintext, saltHex)
	if err != nil {
		return "", err
	}

	return saltHex + "." + hex.EncodeToString(key), nil
}

// Verify reports whether plaintext matches a stored "salt.hash" value.
// The comparison is constant-time.
func (h *Hasher) Verify(plaintext, stored string) (bool, error) {
	saltHex, storedHashHex, ok := strings.Cut(stored, ".")
	if !ok {
		return false, ErrMalformedHash
	}

	storedHash, err := hex.DecodeString(storedHashHex)
	if err != nil {
		return false, ErrMalformedHash
	}

	key, err := h.derive(plaintext, saltHex)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(key, storedHash) == 1, nil
}

// derive runs scrypt with the hex-encoded salt as the salt input; stored
// hashes were produced that way, so verification must do the same.
func (h *Hasher) derive(plaintext, saltHex string) ([]byte, error) {
	key, err := scrypt.Key([]byte(plaintext), []byte(saltHex), h.n, costR, costP, keyLen)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	return key, nil
}
