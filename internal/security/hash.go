package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltBytes    = 16
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

// HashPassword derives a fresh credential in the form
// "hex(salt):hex(key)" using scrypt over the password and a random salt.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword re-derives the key from the stored salt and compares in
// constant time. A malformed stored credential verifies as false rather
// than erroring, so callers fail closed without a separate error path.
func VerifyPassword(stored, candidate string) bool {
	salt, key, ok := splitCredential(stored)
	if !ok {
		return false
	}
	derived, err := scrypt.Key([]byte(candidate), salt, scryptN, scryptR, scryptP, len(key))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(derived, key) == 1
}

func splitCredential(stored string) (salt, key []byte, ok bool) {
	i := strings.IndexByte(stored, ':')
	if i <= 0 || i == len(stored)-1 {
		return nil, nil, false
	}
	salt, err := hex.DecodeString(stored[:i])
	if err != nil || len(salt) == 0 {
		return nil, nil, false
	}
	key, err = hex.DecodeString(stored[i+1:])
	if err != nil || len(key) == 0 {
		return nil, nil, false
	}
	return salt, key, true
}
