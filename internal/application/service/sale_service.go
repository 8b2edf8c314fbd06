package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"github.com/mercibizhub/bizhub-api/internal/events"
	"github.com/mercibizhub/bizhub-api/pkg/apperror"
	"github.com/mercibizhub/bizhub-api/pkg/format"
	"github.com/mercibizhub/bizhub-api/pkg/pagination"
)

// SaleService handles point-of-sale records
type SaleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	notifier     events.Notifier
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	notifier events.Notifier,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
	}
}

// CreateSaleInput represents the create sale input. When ProductID is set
// the unit cost is resolved from the catalog, honoring the generator
// toggle; CustomUnitCost overrides it either way.
type CreateSaleInput struct {
	UserID         uuid.UUID
	ProductID      *uuid.UUID
	ProductName    string
	Quantity       int
	CustomUnitCost *int64 // kobo
	Paid           int64  // kobo
	PaymentMethod  enum.PaymentMethod
	CustomerName   string
}

// CreateSale creates a sale record with its derived fields computed
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if input.Quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	productName := strings.TrimSpace(input.ProductName)
	var unitCost int64

	if input.ProductID != nil {
		product, err := s.productRepo.GetByID(ctx, *input.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}

		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return nil, err
		}

		unitCost = product.EffectiveUnitPrice(settings.GeneratorOn, input.CustomUnitCost)
		if productName == "" {
			productName = product.Name
		}
	} else {
		if input.CustomUnitCost == nil {
			return nil, apperror.NewBadRequestError("Unit cost is required for an ad-hoc sale")
		}
		unitCost = *input.CustomUnitCost
	}

	if productName == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if unitCost < 0 {
		return nil, apperror.NewBadRequestError("Unit cost cannot be negative")
	}
	if input.Paid < 0 {
		return nil, apperror.NewBadRequestError("Paid amount cannot be negative")
	}

	sale := &entity.Sale{
		ProductName:   productName,
		Quantity:      input.Quantity,
		UnitCost:      unitCost,
		Paid:          input.Paid,
		PaymentMethod: input.PaymentMethod,
		CustomerName:  format.CapitalizeEveryWord(strings.TrimSpace(input.CustomerName)),
		CreatedBy:     input.UserID,
		UpdatedBy:     input.UserID,
	}
	sale.Recalculate()

	// An unpaid balance must be attributable to someone.
	if sale.PaymentStatus == enum.PaymentStatusPending && sale.CustomerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required for an unpaid sale")
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.notifier.NotifyChanged(events.CollectionSales, events.ActionCreated, sale.ID)
	return sale, nil
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.Result[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(sales, pag), nil
}

// UpdateSaleInput represents the update sale input. Nil fields are left
// unchanged.
type UpdateSaleInput struct {
	UserID        uuid.UUID
	ProductName   *string
	Quantity      *int
	UnitCost      *int64
	Paid          *int64
	PaymentMethod *enum.PaymentMethod
	CustomerName  *string
}

// UpdateSale applies a partial update, then restores the derived-field
// invariants on the merged record. Clients never send totals or status;
// those are always recomputed here.
func (s *SaleService) UpdateSale(ctx context.Context, id uuid.UUID, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	if input.ProductName != nil {
		name := strings.TrimSpace(*input.ProductName)
		if name == "" {
			return nil, apperror.NewBadRequestError("Product name cannot be empty")
		}
		sale.ProductName = name
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Quantity must be at least 1")
		}
		sale.Quantity = *input.Quantity
	}
	if input.UnitCost != nil {
		if *input.UnitCost < 0 {
			return nil, apperror.NewBadRequestError("Unit cost cannot be negative")
		}
		sale.UnitCost = *input.UnitCost
	}
	if input.Paid != nil {
		if *input.Paid < 0 {
			return nil, apperror.NewBadRequestError("Paid amount cannot be negative")
		}
		sale.Paid = *input.Paid
	}
	if input.PaymentMethod != nil {
		sale.PaymentMethod = *input.PaymentMethod
	}
	if input.CustomerName != nil {
		sale.CustomerName = format.CapitalizeEveryWord(strings.TrimSpace(*input.CustomerName))
	}

	sale.UpdatedBy = input.UserID
	sale.Recalculate()

	if sale.PaymentStatus == enum.PaymentStatusPending && sale.CustomerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required for an unpaid sale")
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	s.notifier.NotifyChanged(events.CollectionSales, events.ActionUpdated, id)
	return sale, nil
}

// DeleteSale deletes a sale
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	if err := s.saleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.NotifyChanged(events.CollectionSales, events.ActionDeleted, id)
	return nil
}

// DeleteSales deletes a batch of sales in one transaction
func (s *SaleService) DeleteSales(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return apperror.NewBadRequestError("No sale ids given")
	}

	if err := s.saleRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}

	s.notifier.NotifyChanged(events.CollectionSales, events.ActionDeleted, ids...)
	return nil
}
