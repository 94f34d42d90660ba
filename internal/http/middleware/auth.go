package middleware

import (
	"context"
	"net/http"

	"github.com/enyelsequeira/gym-be/internal/apperror"
	"github.com/enyelsequeira/gym-be/internal/domain"
	"github.com/enyelsequeira/gym-be/internal/http/response"
	"github.com/enyelsequeira/gym-be/internal/security"
)

type authContextKey struct{}

// AuthUser is the public slice of the session owner attached to the
// request. It never carries the credential.
type AuthUser struct {
	ID         uint
	Username   string
	Type       string
	FirstLogin bool
}

type AuthContext struct {
	User    AuthUser
	Session *domain.Session
}

func AuthFromContext(ctx context.Context) (*AuthContext, bool) {
	auth, ok := ctx.Value(authContextKey{}).(*AuthContext)
	return auth, ok
}

// ContextWithAuth exists for handler tests that need an authenticated
// request without running the full gate.
func ContextWithAuth(ctx context.Context, auth *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey{}, auth)
}

// SessionResolver resolves a verified cookie token to its live session.
// Satisfied by *service.AuthService.
type SessionResolver interface {
	Authenticate(token string) (*domain.Session, error)
}

type Authenticator struct {
	auth    SessionResolver
	cookies *security.CookieManager
}

func NewAuthenticator(auth SessionResolver, cookies *security.CookieManager) *Authenticator {
	return &Authenticator{auth: auth, cookies: cookies}
}

// RequireUser is the authentication gate: cookie → verified token →
// resolved session → identity on the context. All rejection paths
// return the identical unauthorized envelope so a caller cannot tell a
// malformed cookie from an expired session.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := a.cookies.TokenFromRequest(r)
		if !ok {
			unauthorized(w)
			return
		}
		session, err := a.auth.Authenticate(token)
		if err != nil {
			unauthorized(w)
			return
		}
		auth := &AuthContext{
			User: AuthUser{
				ID:         session.User.ID,
				Username:   session.User.Username,
				Type:       session.User.Type,
				FirstLogin: session.User.FirstLogin,
			},
			Session: session,
		}
		next.ServeHTTP(w, r.WithContext(ContextWithAuth(r.Context(), auth)))
	})
}

// RequireAdmin composes on top of RequireUser; an authenticated
// non-admin gets a distinct forbidden outcome.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, ok := AuthFromContext(r.Context())
		if !ok {
			unauthorized(w)
			return
		}
		if auth.User.Type != domain.UserTypeAdmin {
			response.Error(w, apperror.Forbidden("You are not authorized to perform this action"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	response.Error(w, apperror.Unauthorized("Please login to continue"))
}
