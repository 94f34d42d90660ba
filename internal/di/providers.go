package di

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/enyelsequeira/gym-be/internal/app"
	"github.com/enyelsequeira/gym-be/internal/config"
	"github.com/enyelsequeira/gym-be/internal/database"
	"github.com/enyelsequeira/gym-be/internal/http/handler"
	"github.com/enyelsequeira/gym-be/internal/http/middleware"
	"github.com/enyelsequeira/gym-be/internal/observability"
	"github.com/enyelsequeira/gym-be/internal/repository"
	"github.com/enyelsequeira/gym-be/internal/security"
	"github.com/enyelsequeira/gym-be/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(provideLogger)

var DatabaseSet = wire.NewSet(provideDB)

var SecuritySet = wire.NewSet(provideCookieManager)

var RepositorySet = wire.NewSet(
	repository.NewUserRepository,
	provideSessionRepository,
	repository.NewWorkoutRepository,
)

var ServiceSet = wire.NewSet(
	service.NewAuthService,
	wire.Bind(new(middleware.SessionResolver), new(*service.AuthService)),
	service.NewUserService,
	service.NewWorkoutService,
)

var HTTPSet = wire.NewSet(
	middleware.NewAuthenticator,
	provideLoginLimiter,
	handler.NewAuthHandler,
	handler.NewUserHandler,
	handler.NewWorkoutHandler,
	provideRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

func provideLogger(cfg *config.Config) *slog.Logger {
	return observability.NewLogger(cfg.Env, cfg.LogLevel)
}

func provideDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	report, err := database.EnsureAdminUser(db, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	if report.CreatedAdmin {
		logger.Info("bootstrap admin user created", "user_id", report.AdminID, "username", cfg.AdminUsername)
	}
	return db, nil
}

func provideCookieManager(cfg *config.Config) *security.CookieManager {
	return security.NewCookieManager(
		cfg.SessionCookieSecret,
		cfg.CookieDomain,
		cfg.CookieSecure,
		cfg.CookieSameSite,
		cfg.SessionTTL,
	)
}

func provideSessionRepository(db *gorm.DB, cfg *config.Config) repository.SessionRepository {
	return repository.NewSessionRepository(db, cfg.SessionTTL)
}

// provideLoginLimiter picks the distributed limiter when redis is
// configured; single-instance deployments fall back to the in-process
// fixed window.
func provideLoginLimiter(cfg *config.Config, logger *slog.Logger) *middleware.RateLimiter {
	var limiter middleware.Limiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = middleware.NewRedisFixedWindowLimiter(client, "login")
	} else {
		limiter = middleware.NewLocalFixedWindowLimiter()
	}
	return middleware.NewRateLimiter(limiter, cfg.LoginRateLimit, cfg.LoginRateLimitWindow, logger)
}

func provideRouter(
	logger *slog.Logger,
	auth *middleware.Authenticator,
	loginLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	workoutHandler *handler.WorkoutHandler,
) http.Handler {
	return app.NewRouter(app.RouterDeps{
		Logger:       logger,
		Auth:         auth,
		LoginLimiter: loginLimiter,
		AuthHandler:  authHandler,
		UserHandler:  userHandler,
		Workouts:     workoutHandler,
	})
}

func provideHTTPServer(cfg *config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
