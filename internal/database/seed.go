package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/enyelsequeira/gym-be/internal/domain"
	"github.com/enyelsequeira/gym-be/internal/security"
)

// SeedReport says what EnsureAdminUser actually did, so startup logs can
// distinguish a fresh install from a normal boot.
type SeedReport struct {
	CreatedAdmin bool
	Skipped      bool
	AdminID      uint
}

// EnsureAdminUser creates the bootstrap ADMIN account when no admin
// exists yet. With no bootstrap password configured the seed is skipped
// rather than failing the boot.
func EnsureAdminUser(db *gorm.DB, username, email, password string) (SeedReport, error) {
	var existing domain.User
	err := db.Where("type = ?", domain.UserTypeAdmin).First(&existing).Error
	if err == nil {
		return SeedReport{AdminID: existing.ID}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return SeedReport{}, fmt.Errorf("look up admin user: %w", err)
	}

	if password == "" {
		return SeedReport{Skipped: true}, nil
	}
	hashed, err := security.HashPassword(password)
	if err != nil {
		return SeedReport{}, fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		Username:   username,
		Name:       "Admin",
		LastName:   "User",
		Password:   hashed,
		Email:      email,
		Type:       domain.UserTypeAdmin,
		FirstLogin: true,
	}
	if err := db.Create(admin).Error; err != nil {
		return SeedReport{}, fmt.Errorf("create admin user: %w", err)
	}
	return SeedReport{CreatedAdmin: true, AdminID: admin.ID}, nil
}
