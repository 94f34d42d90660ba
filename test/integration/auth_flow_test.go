package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/enyelsequeira/gym-be/internal/security"
)

func TestLoginSetsCookieAndRedactsPassword(t *testing.T) {
	s := newTestServer(t, 100)
	registerUser(t, s, "alice", "password-123", "USER")

	w := s.do(t, http.MethodPost, "/login", map[string]any{
		"username": "alice",
		"password": "password-123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	raw := w.Body.String()
	if strings.Contains(raw, "password") {
		t.Fatalf("login response leaks password material: %s", raw)
	}
	body := decodeBody(t, w)
	if body["message"] != "You have been logged in" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == security.SessionCookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected session cookie")
	}
	if !sessionCookie.HttpOnly {
		t.Fatal("session cookie must be http-only")
	}
	if _, ok := security.VerifyCookieValue(sessionCookie.Value, testCookieSecret); !ok {
		t.Fatal("session cookie is not a validly signed token")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	s := newTestServer(t, 100)
	registerUser(t, s, "alice", "password-123", "USER")

	unknown := s.do(t, http.MethodPost, "/login", map[string]any{
		"username": "nobody-here", "password": "password-123",
	})
	wrong := s.do(t, http.MethodPost, "/login", map[string]any{
		"username": "alice", "password": "wrong-password",
	})

	if unknown.Code != http.StatusNotFound || wrong.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for both, got %d and %d", unknown.Code, wrong.Code)
	}
	if unknown.Body.String() != wrong.Body.String() {
		t.Fatalf("failure bodies differ:\n%s\nvs\n%s", unknown.Body.String(), wrong.Body.String())
	}
	body := decodeBody(t, unknown)
	if body["errorMessage"] != "Username or Password invalid" {
		t.Fatalf("unexpected message %v", body["errorMessage"])
	}
}

func TestProtectedRoutesRejectWithoutSession(t *testing.T) {
	s := newTestServer(t, 100)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/me"},
		{http.MethodPost, "/logout/1"},
		{http.MethodPatch, "/update-password"},
		{http.MethodGet, "/workouts"},
	} {
		w := s.do(t, route.method, route.path, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", route.method, route.path, w.Code)
		}
		body := decodeBody(t, w)
		if body["errorMessage"] != "Please login to continue" {
			t.Fatalf("%s %s: unexpected message %v", route.method, route.path, body["errorMessage"])
		}
	}
}

func TestLogoutInvalidatesEverySession(t *testing.T) {
	s := newTestServer(t, 100)
	id := registerUser(t, s, "alice", "password-123", "USER")

	first := login(t, s, "alice", "password-123")
	second := login(t, s, "alice", "password-123")

	w := s.do(t, http.MethodPost, fmt.Sprintf("/logout/%d", id), nil, second)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["message"] != "You have been logged out" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	// Both sessions are dead, including the one not used for the call.
	for i, c := range []*http.Cookie{first, second} {
		if w := s.do(t, http.MethodGet, "/me", nil, c); w.Code != http.StatusUnauthorized {
			t.Fatalf("session %d: expected 401 after logout, got %d", i, w.Code)
		}
	}
}

func TestLogoutForOtherUserForbidden(t *testing.T) {
	s := newTestServer(t, 100)
	registerUser(t, s, "alice", "password-123", "USER")
	bobID := registerUser(t, s, "bob", "password-456", "USER")
	aliceCookie := login(t, s, "alice", "password-123")

	w := s.do(t, http.MethodPost, fmt.Sprintf("/logout/%d", bobID), nil, aliceCookie)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["errorMessage"] != "You can only logout from your own account" {
		t.Fatalf("unexpected message %v", body["errorMessage"])
	}

	// Alice's own session is untouched by the rejected attempt.
	if w := s.do(t, http.MethodGet, "/me", nil, aliceCookie); w.Code != http.StatusOK {
		t.Fatalf("expected session still live, got %d", w.Code)
	}
}

func TestUpdatePasswordFlow(t *testing.T) {
	s := newTestServer(t, 100)
	registerUser(t, s, "alice", "password-123", "USER")
	registerUser(t, s, "bob", "password-456", "USER")
	cookie := login(t, s, "alice", "password-123")

	t.Run("cannot change someone else's password", func(t *testing.T) {
		w := s.do(t, http.MethodPatch, "/update-password", map[string]any{
			"username": "bob", "password": "password-456", "newPassword": "new-password-1",
		}, cookie)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["errorMessage"] != "Sorry you cannot change someone else password" {
			t.Fatalf("unexpected message %v", body["errorMessage"])
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		w := s.do(t, http.MethodPatch, "/update-password", map[string]any{
			"username": "alice", "password": "not-right", "newPassword": "new-password-1",
		}, cookie)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["errorMessage"] != "Username or password wrong" {
			t.Fatalf("unexpected message %v", body["errorMessage"])
		}
	})

	t.Run("success swaps the credential", func(t *testing.T) {
		w := s.do(t, http.MethodPatch, "/update-password", map[string]any{
			"username": "alice", "password": "password-123", "newPassword": "new-password-1",
		}, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["message"] != "Password has been updated" {
			t.Fatalf("unexpected message %v", body["message"])
		}
		data := body["data"].(map[string]any)
		if data["firstLogin"] != false {
			t.Fatalf("expected firstLogin cleared, got %v", data["firstLogin"])
		}

		// Old password no longer works, new one does.
		if w := s.do(t, http.MethodPost, "/login", map[string]any{
			"username": "alice", "password": "password-123",
		}); w.Code != http.StatusNotFound {
			t.Fatalf("old password still accepted: %d", w.Code)
		}
		login(t, s, "alice", "new-password-1")
	})
}

func TestLoginRateLimited(t *testing.T) {
	s := newTestServer(t, 3)
	registerUser(t, s, "alice", "password-123", "USER")

	for i := 0; i < 3; i++ {
		w := s.do(t, http.MethodPost, "/login", map[string]any{
			"username": "alice", "password": "wrong-password",
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("attempt %d: expected 404, got %d", i+1, w.Code)
		}
	}

	w := s.do(t, http.MethodPost, "/login", map[string]any{
		"username": "alice", "password": "password-123",
	})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}
