package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/enyelsequeira/gym-be/internal/app"
	"github.com/enyelsequeira/gym-be/internal/database"
	"github.com/enyelsequeira/gym-be/internal/http/handler"
	"github.com/enyelsequeira/gym-be/internal/http/middleware"
	"github.com/enyelsequeira/gym-be/internal/repository"
	"github.com/enyelsequeira/gym-be/internal/security"
	"github.com/enyelsequeira/gym-be/internal/service"
)

const testCookieSecret = "integration-test-secret"

type testServer struct {
	router  http.Handler
	db      *gorm.DB
	cookies *security.CookieManager
}

// newTestServer wires the real router over an in-memory database, with
// only the dialect swapped relative to production.
func newTestServer(t *testing.T, loginLimit int) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cookies := security.NewCookieManager(testCookieSecret, "", false, "lax", time.Hour)

	users := repository.NewUserRepository(db)
	sessions := repository.NewSessionRepository(db, time.Hour)
	workouts := repository.NewWorkoutRepository(db)

	authSvc := service.NewAuthService(users, sessions, log)
	userSvc := service.NewUserService(users, log)
	workoutSvc := service.NewWorkoutService(workouts, users, log)

	limiter := middleware.NewRateLimiter(middleware.NewLocalFixedWindowLimiter(), loginLimit, time.Minute, log)
	router := app.NewRouter(app.RouterDeps{
		Logger:       log,
		Auth:         middleware.NewAuthenticator(authSvc, cookies),
		LoginLimiter: limiter,
		AuthHandler:  handler.NewAuthHandler(authSvc, cookies),
		UserHandler:  handler.NewUserHandler(userSvc),
		Workouts:     handler.NewWorkoutHandler(workoutSvc),
	})

	return &testServer{router: router, db: db, cookies: cookies}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	r := httptest.NewRequest(method, path, reader)
	r.RemoteAddr = "192.0.2.10:44321"
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func registerUser(t *testing.T, s *testServer, username, password, userType string) uint {
	t.Helper()
	w := s.do(t, http.MethodPost, "/user", map[string]any{
		"username": username,
		"name":     "Test",
		"lastName": "User",
		"password": password,
		"email":    username + "@example.com",
		"type":     userType,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", username, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	return uint(data["id"].(float64))
}

// login performs a real login and returns the session cookie.
func login(t *testing.T, s *testServer, username, password string) *http.Cookie {
	t.Helper()
	w := s.do(t, http.MethodPost, "/login", map[string]any{
		"username": username,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == security.SessionCookieName {
			return c
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}
