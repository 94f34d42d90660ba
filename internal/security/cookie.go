package security

import (
	"net/http"
	"strings"
	"time"
)

// SessionCookieName is fixed; clients and the auth gate both key on it.
const SessionCookieName = "session"

type CookieManager struct {
	Secret   string
	Domain   string
	Secure   bool
	SameSite http.SameSite
	TTL      time.Duration
}

func NewCookieManager(secret, domain string, secure bool, sameSite string, ttl time.Duration) *CookieManager {
	ss := http.SameSiteLaxMode
	switch strings.ToLower(sameSite) {
	case "none":
		ss = http.SameSiteNoneMode
	case "strict":
		ss = http.SameSiteStrictMode
	}
	return &CookieManager{Secret: secret, Domain: domain, Secure: secure, SameSite: ss, TTL: ttl}
}

// SetSessionCookie signs the token and emits it as the session cookie.
func (c *CookieManager) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    EncodeCookieValue(token, c.Secret),
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
		MaxAge:   int(c.TTL.Seconds()),
	})
}

func (c *CookieManager) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
		MaxAge:   -1,
	})
}

// TokenFromRequest extracts and signature-checks the session cookie.
// A missing cookie and a tampered one are indistinguishable to callers.
func (c *CookieManager) TokenFromRequest(r *http.Request) (string, bool) {
	raw := GetCookie(r, SessionCookieName)
	if raw == "" {
		return "", false
	}
	return VerifyCookieValue(raw, c.Secret)
}

func GetCookie(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
