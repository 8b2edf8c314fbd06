package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice groups an ordered collection of sale line items for one
// customer. Aggregate totals are a snapshot taken at creation time and
// are never recomputed on read.
type Invoice struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName       string             `gorm:"size:255;not null" json:"customer_name"`
	TotalCost          int64              `gorm:"not null" json:"-"`
	TotalPaid          int64              `gorm:"default:0" json:"-"`
	OutstandingBalance int64              `gorm:"default:0" json:"-"`
	PaymentMethod      enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	PaymentStatus      enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	CreatedBy          uuid.UUID          `gorm:"type:uuid" json:"created_by"`
	UpdatedBy          uuid.UUID          `gorm:"type:uuid" json:"updated_by"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Lines []InvoiceLine `gorm:"foreignKey:InvoiceID" json:"lines,omitempty"`
}

// MarshalJSON converts kobo amounts to decimal for API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		TotalCost          float64 `json:"total_cost"`
		TotalPaid          float64 `json:"total_paid"`
		OutstandingBalance float64 `json:"outstanding_balance"`
	}{
		Alias:              Alias(i),
		TotalCost:          float64(i.TotalCost) / 100,
		TotalPaid:          float64(i.TotalPaid) / 100,
		OutstandingBalance: float64(i.OutstandingBalance) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// SnapshotTotals recomputes the aggregate fields from the line items.
// Call it exactly once, at creation time.
func (i *Invoice) SnapshotTotals() {
	var total int64
	for idx := range i.Lines {
		i.Lines[idx].TotalCost = int64(i.Lines[idx].Quantity) * i.Lines[idx].UnitCost
		total += i.Lines[idx].TotalCost
	}
	i.TotalCost = total
	i.OutstandingBalance = i.TotalCost - i.TotalPaid
	i.PaymentStatus = enum.StatusFor(i.OutstandingBalance)
}

// InvoiceLine is a single product line on an invoice. Position preserves
// the order the lines were added in.
type InvoiceLine struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Position    int            `gorm:"not null" json:"position"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitCost    int64          `gorm:"not null" json:"-"`
	TotalCost   int64          `gorm:"not null" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON converts kobo amounts to decimal for API responses
func (l InvoiceLine) MarshalJSON() ([]byte, error) {
	type Alias InvoiceLine
	return json.Marshal(&struct {
		Alias
		UnitCost  float64 `json:"unit_cost"`
		TotalCost float64 `json:"total_cost"`
	}{
		Alias:     Alias(l),
		UnitCost:  float64(l.UnitCost) / 100,
		TotalCost: float64(l.TotalCost) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new invoice line
func (l *InvoiceLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceLine model
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}
