package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/enyelsequeira/gym-be/internal/apperror"
	"github.com/enyelsequeira/gym-be/internal/http/handler"
	"github.com/enyelsequeira/gym-be/internal/http/middleware"
	"github.com/enyelsequeira/gym-be/internal/http/response"
)

type RouterDeps struct {
	Logger       *slog.Logger
	Auth         *middleware.Authenticator
	LoginLimiter *middleware.RateLimiter
	AuthHandler  *handler.AuthHandler
	UserHandler  *handler.UserHandler
	Workouts     *handler.WorkoutHandler
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, apperror.NotFound("Not Found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, apperror.BadRequest("Method Not Allowed"))
	})

	r.With(deps.LoginLimiter.Handler).Post("/login", deps.AuthHandler.Login)
	r.Post("/user", deps.UserHandler.Create)
	r.Get("/users", deps.UserHandler.List)
	r.Get("/users/{id}", deps.UserHandler.GetByID)

	r.Group(func(r chi.Router) {
		r.Use(deps.Auth.RequireUser)

		r.Post("/logout/{id}", deps.AuthHandler.Logout)
		r.Patch("/update-password", deps.AuthHandler.UpdatePassword)
		r.Get("/me", deps.UserHandler.Me)
		r.Patch("/user/{id}", deps.UserHandler.Update)

		r.Get("/workouts", deps.Workouts.List)
		r.Get("/workouts/{id}", deps.Workouts.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/workout", deps.Workouts.Create)
			r.Post("/exercises", deps.Workouts.CreateExercises)
		})
	})

	return r
}
