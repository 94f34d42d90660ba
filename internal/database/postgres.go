package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/enyelsequeira/gym-be/internal/config"
)

// Open connects with dialect error translation enabled so unique
// constraint violations surface as gorm.ErrDuplicatedKey.
func Open(cfg *config.Config) (*gorm.DB, error) {
	mode := logger.Warn
	if cfg.IsDevelopment() {
		mode = logger.Info
	}
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(mode),
		TranslateError: true,
	})
}
