package service

import (
	"context"
	"sort"
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

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
	notifier    events.Notifier
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, notifier events.Notifier) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		notifier:    notifier,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID   uuid.UUID
	Name     string
	Category enum.ProductCategory
	Price    int64 // kobo
	GenPrice *int64
	Stock    *int
	Favorite bool
}

// CreateProduct creates a new product. Names are title-cased on the way
// in so "hp laptop" and "HP Laptop" are the same product.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := format.CapitalizeEveryWord(strings.TrimSpace(input.Name))
	if name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	existing, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this name already exists")
	}

	product := &entity.Product{
		Name:      name,
		Category:  input.Category,
		Price:     input.Price,
		GenPrice:  input.GenPrice,
		Stock:     input.Stock,
		Favorite:  input.Favorite,
		CreatedBy: input.UserID,
		UpdatedBy: input.UserID,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.notifier.NotifyChanged(events.CollectionProducts, events.ActionCreated, product.ID)
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.Result[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(products, pag), nil
}

// UpdateProductInput represents the update product input. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	UserID   uuid.UUID
	Name     *string
	Category *enum.ProductCategory
	Price    *int64
	GenPrice *int64
	Stock    *int
	Favorite *bool
}

// UpdateProduct applies a partial update to a product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	fields := map[string]interface{}{
		"updated_by": input.UserID,
	}
	if input.Name != nil {
		name := format.CapitalizeEveryWord(strings.TrimSpace(*input.Name))
		if name == "" {
			return nil, apperror.NewBadRequestError("Product name cannot be empty")
		}
		fields["name"] = name
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		fields["price"] = *input.Price
	}
	if input.GenPrice != nil {
		fields["gen_price"] = *input.GenPrice
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}
	if input.Favorite != nil {
		fields["favorite"] = *input.Favorite
	}

	product, err := s.productRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.notifier.NotifyChanged(events.CollectionProducts, events.ActionUpdated, id)
	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.NotifyChanged(events.CollectionProducts, events.ActionDeleted, id)
	return nil
}

// DeleteProducts deletes a batch of products in one transaction. IDs that
// are already gone are not an error, so retries stay safe.
func (s *ProductService) DeleteProducts(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return apperror.NewBadRequestError("No product ids given")
	}

	if err := s.productRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}

	s.notifier.NotifyChanged(events.CollectionProducts, events.ActionDeleted, ids...)
	return nil
}

// FilterProducts narrows an in-memory product list by a case-insensitive
// name match and orders favorites before the rest. Relative order within
// each group is preserved.
func FilterProducts(products []entity.Product, search string) []entity.Product {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if search == "" || strings.Contains(strings.ToLower(p.Name), search) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Favorite && !filtered[j].Favorite
	})
	return filtered
}
