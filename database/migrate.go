package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/config"
	"github.com/trapham24065/api-contact-book/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm initializes GORM with the configured URL. TranslateError is
// on so unique violations surface as gorm.ErrDuplicatedKey on every driver.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserApiKey{},
		&models.PasswordReset{},
		&models.UserDailyUsage{},
		&models.RequestLog{},
		&models.AuditLog{},
		&models.Contact{},
		&models.ContactAttribute{},
	)
}
