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

// InvoiceService handles multi-line invoices
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	notifier     events.Notifier
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	notifier events.Notifier,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
	}
}

// InvoiceLineInput is one basket line of a new invoice
type InvoiceLineInput struct {
	ProductID      *uuid.UUID
	ProductName    string
	Quantity       int
	CustomUnitCost *int64 // kobo
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	UserID        uuid.UUID
	CustomerName  string
	Paid          int64 // kobo
	PaymentMethod enum.PaymentMethod
	Lines         []InvoiceLineInput
}

// CreateInvoice prices the basket and stores the invoice with a totals
// snapshot. Totals are never recomputed after creation; the invoice is a
// record of what was actually charged.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("An invoice needs at least one line")
	}
	if input.Paid < 0 {
		return nil, apperror.NewBadRequestError("Paid amount cannot be negative")
	}

	customerName := format.CapitalizeEveryWord(strings.TrimSpace(input.CustomerName))
	if customerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]entity.InvoiceLine, 0, len(input.Lines))
	for i, in := range input.Lines {
		if in.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Line quantity must be at least 1")
		}

		name := strings.TrimSpace(in.ProductName)
		var unitCost int64

		if in.ProductID != nil {
			product, err := s.productRepo.GetByID(ctx, *in.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, apperror.NewNotFoundError("Product")
			}
			unitCost = product.EffectiveUnitPrice(settings.GeneratorOn, in.CustomUnitCost)
			if name == "" {
				name = product.Name
			}
		} else {
			if in.CustomUnitCost == nil {
				return nil, apperror.NewBadRequestError("Unit cost is required for an ad-hoc line")
			}
			unitCost = *in.CustomUnitCost
		}

		if name == "" {
			return nil, apperror.NewBadRequestError("Line product name is required")
		}
		if unitCost < 0 {
			return nil, apperror.NewBadRequestError("Unit cost cannot be negative")
		}

		lines = append(lines, entity.InvoiceLine{
			Position:    i,
			ProductName: name,
			Quantity:    in.Quantity,
			UnitCost:    unitCost,
		})
	}

	invoice := &entity.Invoice{
		CustomerName:  customerName,
		TotalPaid:     input.Paid,
		PaymentMethod: input.PaymentMethod,
		CreatedBy:     input.UserID,
		UpdatedBy:     input.UserID,
		Lines:         lines,
	}
	invoice.SnapshotTotals()

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.notifier.NotifyChanged(events.CollectionInvoices, events.ActionCreated, invoice.ID)
	return invoice, nil
}

// GetInvoice retrieves an invoice with its lines
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.Result[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(invoices, pag), nil
}

// UpdateInvoiceInput represents the update invoice input. Lines and
// TotalCost are immutable after creation; only the payment side moves.
type UpdateInvoiceInput struct {
	UserID        uuid.UUID
	CustomerName  *string
	TotalPaid     *int64
	PaymentMethod *enum.PaymentMethod
}

// UpdateInvoice applies a partial update to an invoice's mutable fields
// and rederives the outstanding balance and status from the snapshot.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	fields := map[string]interface{}{
		"updated_by": input.UserID,
	}
	if input.CustomerName != nil {
		name := format.CapitalizeEveryWord(strings.TrimSpace(*input.CustomerName))
		if name == "" {
			return nil, apperror.NewBadRequestError("Customer name cannot be empty")
		}
		fields["customer_name"] = name
	}
	if input.TotalPaid != nil {
		if *input.TotalPaid < 0 {
			return nil, apperror.NewBadRequestError("Paid amount cannot be negative")
		}
		outstanding := invoice.TotalCost - *input.TotalPaid
		fields["total_paid"] = *input.TotalPaid
		fields["outstanding_balance"] = outstanding
		fields["payment_status"] = enum.StatusFor(outstanding)
	}
	if input.PaymentMethod != nil {
		fields["payment_method"] = *input.PaymentMethod
	}

	invoice, err = s.invoiceRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	s.notifier.NotifyChanged(events.CollectionInvoices, events.ActionUpdated, id)
	return invoice, nil
}

// DeleteInvoice deletes an invoice and its lines
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.NotifyChanged(events.CollectionInvoices, events.ActionDeleted, id)
	return nil
}

// DeleteInvoices deletes a batch of invoices in one transaction
func (s *InvoiceService) DeleteInvoices(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return apperror.NewBadRequestError("No invoice ids given")
	}

	if err := s.invoiceRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}

	s.notifier.NotifyChanged(events.CollectionInvoices, events.ActionDeleted, ids...)
	return nil
}
