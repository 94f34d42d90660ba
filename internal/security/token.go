package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"
)

const sessionTokenBytes = 20

var tokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewSessionToken draws 160 bits from the system CSPRNG, encoded
// without padding so the value is cookie-safe as-is.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return tokenEncoding.EncodeToString(b), nil
}

// SessionIDFromToken derives the storage lookup key for a token. The
// digest is one-way: a leaked session row never yields a usable token.
func SessionIDFromToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// SignToken computes the cookie MAC for a token under the server secret.
func SignToken(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// EncodeCookieValue produces the wire form "token.signature".
func EncodeCookieValue(token, secret string) string {
	return token + "." + SignToken(token, secret)
}

// VerifyCookieValue splits a raw cookie value on its last dot,
// recomputes the signature and compares the whole value in constant
// time. Anything malformed or tampered with yields ("", false).
func VerifyCookieValue(raw, secret string) (string, bool) {
	i := strings.LastIndexByte(raw, '.')
	if i <= 0 || i == len(raw)-1 {
		return "", false
	}
	token := raw[:i]
	expected := EncodeCookieValue(token, secret)
	if !hmac.Equal([]byte(expected), []byte(raw)) {
		return "", false
	}
	return token, true
}
