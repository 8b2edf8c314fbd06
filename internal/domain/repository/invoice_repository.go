package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"github.com/mercibizhub/bizhub-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Create stores the invoice together with its lines in one transaction.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	ListAll(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, error)
	Totals(ctx context.Context) (*RecordTotals, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.PaymentStatus
}
