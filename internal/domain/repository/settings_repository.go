package repository

import (
	"context"

	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the single-row business
// settings data access
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Setting, error)
	Update(ctx context.Context, settings *entity.Setting) error
}
