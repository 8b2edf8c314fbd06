package request

import (
	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
)

// CreateSaleRequest represents a create sale request
type CreateSaleRequest struct {
	ProductID     *uuid.UUID         `json:"product_id"`
	ProductName   string             `json:"product_name" binding:"max=255"`
	Quantity      int                `json:"quantity" binding:"required,gte=1"`
	UnitCost      *float64           `json:"unit_cost" binding:"omitempty,gte=0"`
	Paid          float64            `json:"paid" binding:"gte=0"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	CustomerName  string             `json:"customer_name" binding:"max=255"`
}

// UpdateSaleRequest represents a partial sale update. Totals and status
// are derived server-side and cannot be submitted.
type UpdateSaleRequest struct {
	ProductName   *string             `json:"product_name" binding:"omitempty,max=255"`
	Quantity      *int                `json:"quantity" binding:"omitempty,gte=1"`
	UnitCost      *float64            `json:"unit_cost" binding:"omitempty,gte=0"`
	Paid          *float64            `json:"paid" binding:"omitempty,gte=0"`
	PaymentMethod *enum.PaymentMethod `json:"payment_method"`
	CustomerName  *string             `json:"customer_name" binding:"omitempty,max=255"`
}

// DeleteManyRequest represents a batch delete request
type DeleteManyRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}
