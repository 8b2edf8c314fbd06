package request

import "github.com/mercibizhub/bizhub-api/internal/domain/enum"

// CreateProductRequest represents a create product request. Prices are
// decimal amounts; they are converted to kobo at the boundary.
type CreateProductRequest struct {
	Name     string               `json:"product_name" binding:"required,max=255"`
	Category enum.ProductCategory `json:"category"`
	Price    float64              `json:"price" binding:"required,gte=0"`
	GenPrice *float64             `json:"gen_price" binding:"omitempty,gte=0"`
	Stock    *int                 `json:"stock" binding:"omitempty,gte=0"`
	Favorite bool                 `json:"favorite"`
}

// UpdateProductRequest represents a partial product update. Absent fields
// are left unchanged.
type UpdateProductRequest struct {
	Name     *string               `json:"product_name" binding:"omitempty,max=255"`
	Category *enum.ProductCategory `json:"category"`
	Price    *float64              `json:"price" binding:"omitempty,gte=0"`
	GenPrice *float64              `json:"gen_price" binding:"omitempty,gte=0"`
	Stock    *int                  `json:"stock" binding:"omitempty,gte=0"`
	Favorite *bool                 `json:"favorite"`
}

// ToKobo converts a decimal amount to kobo
func ToKobo(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

// ToKoboPtr converts an optional decimal amount to kobo
func ToKoboPtr(amount *float64) *int64 {
	if amount == nil {
		return nil
	}
	v := ToKobo(*amount)
	return &v
}
