package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"github.com/mercibizhub/bizhub-api/internal/events"
	"github.com/mercibizhub/bizhub-api/pkg/apperror"
)

// SettingsService manages the single-row business settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	notifier     events.Notifier
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, notifier events.Notifier) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		notifier:     notifier,
	}
}

// GetSettings returns the business settings
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.Setting, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	UserID       uuid.UUID
	BusinessName *string
	GeneratorOn  *bool
}

// UpdateSettings applies a partial update to the settings row. Flipping
// GeneratorOn changes the effective price of every product with an
// alternate price, immediately.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Setting, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.BusinessName != nil {
		name := strings.TrimSpace(*input.BusinessName)
		if name == "" {
			return nil, apperror.NewBadRequestError("Business name cannot be empty")
		}
		settings.BusinessName = name
	}
	if input.GeneratorOn != nil {
		settings.GeneratorOn = *input.GeneratorOn
	}
	settings.UpdatedBy = input.UserID

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	s.notifier.NotifyChanged(events.CollectionSettings, events.ActionUpdated, settings.ID)
	return settings, nil
}
