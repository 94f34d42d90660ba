package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/enyelsequeira/gym-be/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepositoryDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Exercise{},
		&domain.WorkoutPlan{},
		&domain.WorkoutDay{},
		&domain.WorkoutExercise{},
	); err != nil {
		t.Fatalf("migrate db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		Username: username,
		Name:     "Test",
		LastName: "User",
		Password: "deadbeef:deadbeef",
		Email:    username + "@example.com",
		Type:     domain.UserTypeUser,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}
