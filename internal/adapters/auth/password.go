package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"communityhub/internal/domain"

	"golang.org/x/crypto/scrypt"
)

// Parameters for scrypt key derivation.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

type scryptHasher struct{}

// NewScryptHasher returns a PasswordHasher that stores "<hex key>.<hex salt>".
func NewScryptHasher() domain.PasswordHasher {
	return scryptHasher{}
}

func (scryptHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

func (scryptHasher) Verify(password, stored string) bool {
	if password == "" || stored == "" {
		return false
	}
	keyHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok || keyHex == "" || saltHex == "" {
		return false
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	got, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, len(want))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}
