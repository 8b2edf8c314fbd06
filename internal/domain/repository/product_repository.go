package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"github.com/mercibizhub/bizhub-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateFields applies a partial update; only the given columns change.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteMany removes the given products in a single transaction.
	// IDs that no longer exist are skipped, not treated as errors.
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination    *pagination.Params
	Search        string
	Category      *enum.ProductCategory
	FavoritesOnly bool
}
