package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/enyelsequeira/gym-be/internal/apperror"
	"github.com/enyelsequeira/gym-be/internal/http/response"
)

// Limiter decides whether a key may proceed within a fixed window. The
// second return is how long until the window resets, for Retry-After.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
}

type fixedWindow struct {
	count       int
	windowStart time.Time
}

type localFixedWindowLimiter struct {
	mu    sync.Mutex
	store map[string]*fixedWindow
}

func NewLocalFixedWindowLimiter() Limiter {
	return &localFixedWindowLimiter{store: make(map[string]*fixedWindow)}
}

func (l *localFixedWindowLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.store[key]
	if !ok || now.Sub(w.windowStart) >= window {
		l.store[key] = &fixedWindow{count: 1, windowStart: now}
		return true, window, nil
	}
	retry := window - now.Sub(w.windowStart)
	if w.count >= limit {
		return false, retry, nil
	}
	w.count++
	return true, retry, nil
}

type RateLimiter struct {
	limiter Limiter
	limit   int
	window  time.Duration
	keyFunc func(r *http.Request) string
	logger  *slog.Logger
}

func NewRateLimiter(limiter Limiter, limit int, window time.Duration, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		limit:   limit,
		window:  window,
		keyFunc: clientIPKey,
		logger:  logger,
	}
}

// Handler applies the per-IP limit. Limiter backend failures fail open:
// an unreachable redis must not take logins down with it.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, retry, err := rl.limiter.Allow(r.Context(), rl.keyFunc(r), rl.limit, rl.window)
		if err != nil {
			rl.logger.Error("rate limiter unavailable", "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			seconds := int(retry.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			appErr := apperror.New(apperror.KindRateLimited, "Too many requests. Please try again later.").
				WithDetails(map[string]any{"limit": rl.limit, "retryAfterSeconds": seconds})
			response.Error(w, appErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIPKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
