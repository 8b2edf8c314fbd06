package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"github.com/mercibizhub/bizhub-api/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Sale, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ListAll returns every matching sale without pagination, newest first.
	// Used by the spreadsheet export.
	ListAll(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, error)
	Totals(ctx context.Context) (*RecordTotals, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.PaymentStatus
}

// RecordTotals aggregates a bookkeeping collection for the dashboard.
// Amounts are in kobo.
type RecordTotals struct {
	Count       int64 `json:"count"`
	TotalCost   int64 `json:"total_cost"`
	TotalPaid   int64 `json:"total_paid"`
	Outstanding int64 `json:"outstanding"`
}
