package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	domainRepo "github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

func (r *saleRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Sale, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&entity.Sale{}).
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

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sale{}, "id = ?", id).Error
}

func (r *saleRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&entity.Sale{}, "id IN ?", ids).Error
	})
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Scopes(
			SearchScope(params.Search, "product_name", "customer_name"),
			StatusScope(params.Status),
		)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListAll(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Scopes(
			SearchScope(params.Search, "product_name", "customer_name"),
			StatusScope(params.Status),
		).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) Totals(ctx context.Context) (*domainRepo.RecordTotals, error) {
	var totals domainRepo.RecordTotals
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_cost), 0) AS total_cost, COALESCE(SUM(paid), 0) AS total_paid, COALESCE(SUM(outstanding_balance), 0) AS outstanding").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
