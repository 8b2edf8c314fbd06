package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"github.com/mercibizhub/bizhub-api/internal/events"
	"github.com/mercibizhub/bizhub-api/pkg/apperror"
)

type fakeSaleRepo struct {
	sales map[uuid.UUID]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	copied := *sale
	r.sales[sale.ID] = &copied
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	copied := *sale
	return &copied, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	copied := *sale
	r.sales[sale.ID] = &copied
	return nil
}

func (r *fakeSaleRepo) UpdateFields(_ context.Context, id uuid.UUID, _ map[string]interface{}) (*entity.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	copied := *sale
	return &copied, nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) DeleteMany(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(r.sales, id)
	}
	return nil
}

func (r *fakeSaleRepo) List(_ context.Context, _ *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	out := make([]entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) ListAll(_ context.Context, _ *repository.SaleFilterParams) ([]entity.Sale, error) {
	out := make([]entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSaleRepo) Totals(_ context.Context) (*repository.RecordTotals, error) {
	totals := &repository.RecordTotals{}
	for _, s := range r.sales {
		totals.Count++
		totals.TotalCost += s.TotalCost
		totals.TotalPaid += s.Paid
		totals.Outstanding += s.OutstandingBalance
	}
	return totals, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) UpdateFields(_ context.Context, id uuid.UUID, _ map[string]interface{}) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DeleteMany(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(r.products, id)
	}
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type fakeSettingsRepo struct {
	settings entity.Setting
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.Setting, error) {
	copied := r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, settings *entity.Setting) error {
	r.settings = *settings
	return nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateSaleCatalogGeneratorPricing(t *testing.T) {
	genPrice := int64(30000) // 300.00
	product := &entity.Product{Name: "Photocopy", Price: 10000, GenPrice: &genPrice}
	productRepo := newFakeProductRepo(product)
	settingsRepo := &fakeSettingsRepo{settings: entity.Setting{GeneratorOn: true}}
	svc := NewSaleService(newFakeSaleRepo(), productRepo, settingsRepo, &events.NopNotifier{})

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		ProductID:     &product.ID,
		Quantity:      3,
		Paid:          50000,
		PaymentMethod: enum.PaymentMethodCash,
		CustomerName:  "jane doe",
	})
	require.NoError(t, err)

	// Generator toggle on and the product prices it, so the gen price wins.
	assert.Equal(t, "Photocopy", sale.ProductName)
	assert.Equal(t, int64(30000), sale.UnitCost)
	assert.Equal(t, int64(90000), sale.TotalCost)
	assert.Equal(t, int64(40000), sale.OutstandingBalance)
	assert.Equal(t, enum.PaymentStatusPending, sale.PaymentStatus)
	assert.Equal(t, "Jane Doe", sale.CustomerName)
}

func TestCreateSaleCustomPriceOverridesCatalog(t *testing.T) {
	product := &entity.Product{Name: "Binding", Price: 10000}
	productRepo := newFakeProductRepo(product)
	settingsRepo := &fakeSettingsRepo{}
	svc := NewSaleService(newFakeSaleRepo(), productRepo, settingsRepo, &events.NopNotifier{})

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:         uuid.New(),
		ProductID:      &product.ID,
		Quantity:       1,
		CustomUnitCost: int64Ptr(7500),
		Paid:           7500,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7500), sale.UnitCost)
	assert.Equal(t, int64(0), sale.OutstandingBalance)
	assert.Equal(t, enum.PaymentStatusPaid, sale.PaymentStatus)
}

func TestCreateSaleAdHocRequiresUnitCost(t *testing.T) {
	svc := NewSaleService(newFakeSaleRepo(), newFakeProductRepo(), &fakeSettingsRepo{}, &events.NopNotifier{})

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:      uuid.New(),
		ProductName: "Typing",
		Quantity:    2,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestCreateSalePendingNeedsCustomerName(t *testing.T) {
	svc := NewSaleService(newFakeSaleRepo(), newFakeProductRepo(), &fakeSettingsRepo{}, &events.NopNotifier{})

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:         uuid.New(),
		ProductName:    "Typing",
		Quantity:       1,
		CustomUnitCost: int64Ptr(5000),
		Paid:           2000,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "Customer name")
}

func TestCreateSaleUnknownProduct(t *testing.T) {
	svc := NewSaleService(newFakeSaleRepo(), newFakeProductRepo(), &fakeSettingsRepo{}, &events.NopNotifier{})

	missing := uuid.New()
	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:    uuid.New(),
		ProductID: &missing,
		Quantity:  1,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestUpdateSaleRecomputesDerivedFields(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	svc := NewSaleService(saleRepo, newFakeProductRepo(), &fakeSettingsRepo{}, &events.NopNotifier{})

	sale := &entity.Sale{
		ProductName: "Lamination",
		Quantity:    2,
		UnitCost:    5000,
		Paid:        4000,
	}
	sale.Recalculate()
	require.NoError(t, saleRepo.Create(context.Background(), sale))

	paid := int64(10000)
	updated, err := svc.UpdateSale(context.Background(), sale.ID, &UpdateSaleInput{
		UserID: uuid.New(),
		Paid:   &paid,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10000), updated.TotalCost)
	assert.Equal(t, int64(0), updated.OutstandingBalance)
	assert.Equal(t, enum.PaymentStatusPaid, updated.PaymentStatus)
}

func TestDeleteSalesRequiresIDs(t *testing.T) {
	svc := NewSaleService(newFakeSaleRepo(), newFakeProductRepo(), &fakeSettingsRepo{}, &events.NopNotifier{})

	err := svc.DeleteSales(context.Background(), nil)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestDeleteSalesIdempotent(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	svc := NewSaleService(saleRepo, newFakeProductRepo(), &fakeSettingsRepo{}, &events.NopNotifier{})

	sale := &entity.Sale{ProductName: "Photocopy", Quantity: 1, UnitCost: 100}
	sale.Recalculate()
	require.NoError(t, saleRepo.Create(context.Background(), sale))

	ids := []uuid.UUID{sale.ID, uuid.New()}
	require.NoError(t, svc.DeleteSales(context.Background(), ids))
	// Retrying with already-deleted ids still succeeds.
	require.NoError(t, svc.DeleteSales(context.Background(), ids))
}
