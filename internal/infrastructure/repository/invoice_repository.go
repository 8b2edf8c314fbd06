package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	domainRepo "github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create stores the invoice and its lines in one transaction. gorm
// cascades the Lines association on create.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(invoice).Error
	})
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Invoice, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&entity.Invoice{}).
			Where("id = ?", id).
			Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}
	return r.GetByID(ctx, id)
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.InvoiceLine{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Invoice{}, "id = ?", id).Error
	})
}

func (r *invoiceRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.InvoiceLine{}, "invoice_id IN ?", ids).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Invoice{}, "id IN ?", ids).Error
	})
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(
			SearchScope(params.Search, "customer_name"),
			StatusScope(params.Status),
		)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) ListAll(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(
			SearchScope(params.Search, "customer_name"),
			StatusScope(params.Status),
		).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) Totals(ctx context.Context) (*domainRepo.RecordTotals, error) {
	var totals domainRepo.RecordTotals
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_cost), 0) AS total_cost, COALESCE(SUM(total_paid), 0) AS total_paid, COALESCE(SUM(outstanding_balance), 0) AS outstanding").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
