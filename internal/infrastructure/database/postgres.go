package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/config"
	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Msg("connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("running database migrations")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.PasswordResetToken{},

		&entity.Product{},
		&entity.Sale{},
		&entity.Invoice{},
		&entity.InvoiceLine{},

		&entity.IdempotencyKey{},
		&entity.Setting{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// SeedDefaultData ensures the single settings row exists and, when
// configured through ADMIN_EMAIL and ADMIN_PASSWORD, the first user.
func SeedDefaultData(db *gorm.DB) error {
	var settings entity.Setting
	if err := db.Order("created_at ASC").First(&settings).Error; err != nil {
		settings = entity.Setting{}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed settings row: %w", err)
		}
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Warn().Err(err).Msg("failed to hash admin password")
			} else {
				if adminName == "" {
					adminName = "Merci Bizhub"
				}
				firstName := adminName
				lastName := ""
				for i, c := range adminName {
					if c == ' ' {
						firstName = adminName[:i]
						lastName = adminName[i+1:]
						break
					}
				}
				adminUser := entity.User{
					ID:        uuid.New(),
					FirstName: firstName,
					LastName:  lastName,
					Email:     adminEmail,
					Password:  string(hashedPassword),
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Warn().Err(err).Msg("failed to create admin user")
				} else {
					log.Info().Str("email", adminEmail).Msg("admin user created")
				}
			}
		}
	}

	return nil
}
