package database

import (
	"gorm.io/gorm"

	"github.com/enyelsequeira/gym-be/internal/domain"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Exercise{},
		&domain.WorkoutPlan{},
		&domain.WorkoutDay{},
		&domain.WorkoutExercise{},
	)
}
