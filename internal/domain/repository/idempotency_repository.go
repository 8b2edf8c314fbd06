package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for the cached write
// responses keyed by Idempotency-Key, scoped per user so one client's
// keys cannot replay another's responses
type IdempotencyRepository interface {
	// GetByKey returns the live cached response for the key, or nil when
	// none exists or the cache entry has aged out.
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	// Create stores the response of a completed write. Storing the same
	// key twice is a no-op, so two racing retries cannot both fail.
	Create(ctx context.Context, record *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
