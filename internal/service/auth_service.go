package service

import (
	"errors"
	"log/slog"

	"github.com/enyelsequeira/gym-be/internal/apperror"
	"github.com/enyelsequeira/gym-be/internal/domain"
	"github.com/enyelsequeira/gym-be/internal/repository"
	"github.com/enyelsequeira/gym-be/internal/security"
)

type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	logger   *slog.Logger
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Login verifies the credential and opens a session. Unknown username
// and wrong password produce byte-identical failures so the endpoint
// does not confirm account existence.
func (s *AuthService) Login(username, password string) (UserView, string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserView{}, "", apperror.NotFound("Username or Password invalid")
		}
		return UserView{}, "", err
	}
	if !security.VerifyPassword(user.Password, password) {
		return UserView{}, "", apperror.NotFound("Username or Password invalid")
	}

	token, err := security.NewSessionToken()
	if err != nil {
		return UserView{}, "", err
	}
	if _, err := s.sessions.Create(token, user.ID); err != nil {
		return UserView{}, "", err
	}
	s.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return NewUserView(user), token, nil
}

// Logout invalidates every session the user holds.
func (s *AuthService) Logout(userID uint) (int64, error) {
	count, err := s.sessions.InvalidateAllForUser(userID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("user logged out", "user_id", userID, "sessions_invalidated", count)
	return count, nil
}

// ChangePassword rotates the credential for the caller's own account.
// actorID/actorUsername come from the authenticated identity, passed
// explicitly rather than read from ambient request state.
func (s *AuthService) ChangePassword(actorID uint, actorUsername, username, currentPassword, newPassword string) (UserView, error) {
	if username != actorUsername {
		return UserView{}, apperror.Unauthorized("Sorry you cannot change someone else password")
	}

	user, err := s.users.FindByID(actorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserView{}, apperror.NotFound("User Not found")
		}
		return UserView{}, err
	}
	if !security.VerifyPassword(user.Password, currentPassword) {
		return UserView{}, apperror.BadRequest("Username or password wrong")
	}

	hashed, err := security.HashPassword(newPassword)
	if err != nil {
		return UserView{}, err
	}
	if err := s.users.UpdatePassword(user.ID, hashed); err != nil {
		return UserView{}, err
	}

	updated, err := s.users.FindByID(user.ID)
	if err != nil {
		return UserView{}, err
	}
	s.logger.Info("password updated", "user_id", user.ID)
	return NewUserView(updated), nil
}

// Authenticate resolves a verified cookie token to a live session and
// its owner. Every failure collapses to ErrSessionNotFound; callers
// treat all of them as a uniform unauthorized outcome.
func (s *AuthService) Authenticate(token string) (*domain.Session, error) {
	session, err := s.sessions.FindByID(security.SessionIDFromToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, err
		}
		s.logger.Error("session lookup failed", "error", err)
		return nil, repository.ErrSessionNotFound
	}
	return session, nil
}
