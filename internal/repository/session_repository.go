package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/enyelsequeira/gym-be/internal/domain"
	"github.com/enyelsequeira/gym-be/internal/security"
)

var ErrSessionNotFound = errors.New("session not found")

// userPublicColumns is what FindByID joins in for the owner. The
// password column is deliberately absent.
var userPublicColumns = []string{"id", "username", "name", "last_name", "email", "type", "first_login"}

type SessionRepository interface {
	Create(token string, userID uint) (*domain.Session, error)
	FindByID(id string) (*domain.Session, error)
	InvalidateAllForUser(userID uint) (int64, error)
	DeleteExpired() (int64, error)
}

type GormSessionRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewSessionRepository(db *gorm.DB, ttl time.Duration) SessionRepository {
	return &GormSessionRepository{db: db, ttl: ttl}
}

// Create derives the storage id from the token and inserts exactly one
// record. Each login gets its own record; sessions are never shared
// across devices.
func (r *GormSessionRepository) Create(token string, userID uint) (*domain.Session, error) {
	s := &domain.Session{
		ID:        security.SessionIDFromToken(token),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(r.ttl),
	}
	if err := r.db.Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// FindByID looks up a session with its owner's public profile joined.
// A record past its expiry is reported as absent; physical cleanup is
// left to DeleteExpired.
func (r *GormSessionRepository) FindByID(id string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select(userPublicColumns)
	}).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.Expired(time.Now().UTC()) {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

// InvalidateAllForUser is the "log out everywhere" primitive. Calling it
// for a user with no sessions is a no-op returning 0.
func (r *GormSessionRepository) InvalidateAllForUser(userID uint) (int64, error) {
	res := r.db.Where("user_id = ?", userID).Delete(&domain.Session{})
	return res.RowsAffected, res.Error
}

func (r *GormSessionRepository) DeleteExpired() (int64, error) {
	res := r.db.Where("expires_at < ?", time.Now().UTC()).Delete(&domain.Session{})
	return res.RowsAffected, res.Error
}
