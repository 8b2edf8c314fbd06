package repository

import (
	"context"
	"errors"

	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the single settings row, creating it with defaults when
// the table is still empty.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Setting, error) {
	var settings entity.Setting
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = entity.Setting{}
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update persists the settings row
func (r *settingsRepository) Update(ctx context.Context, settings *entity.Setting) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
