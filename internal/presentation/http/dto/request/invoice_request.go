package request

import (
	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
)

// InvoiceLineRequest is one basket line of a new invoice
type InvoiceLineRequest struct {
	ProductID   *uuid.UUID `json:"product_id"`
	ProductName string     `json:"product_name" binding:"max=255"`
	Quantity    int        `json:"quantity" binding:"required,gte=1"`
	UnitCost    *float64   `json:"unit_cost" binding:"omitempty,gte=0"`
}

// CreateInvoiceRequest represents a create invoice request
type CreateInvoiceRequest struct {
	CustomerName  string               `json:"customer_name" binding:"required,max=255"`
	Paid          float64              `json:"paid" binding:"gte=0"`
	PaymentMethod enum.PaymentMethod   `json:"payment_method"`
	Lines         []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents a partial invoice update. Lines are a
// creation-time snapshot and cannot be edited afterwards.
type UpdateInvoiceRequest struct {
	CustomerName  *string             `json:"customer_name" binding:"omitempty,max=255"`
	Paid          *float64            `json:"paid" binding:"omitempty,gte=0"`
	PaymentMethod *enum.PaymentMethod `json:"payment_method"`
}
