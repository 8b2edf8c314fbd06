package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale is a point-of-sale record. The product name is denormalized on
// purpose: a sale is a snapshot, not a foreign key into products.
// Amounts are stored in kobo. TotalCost, OutstandingBalance and
// PaymentStatus are derived and must stay mutually consistent; call
// Recalculate after changing any of their inputs.
type Sale struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ProductName        string             `gorm:"size:255;not null" json:"product_name"`
	Quantity           int                `gorm:"not null" json:"quantity"`
	UnitCost           int64              `gorm:"not null" json:"-"`
	TotalCost          int64              `gorm:"not null" json:"-"`
	Paid               int64              `gorm:"default:0" json:"-"`
	OutstandingBalance int64              `gorm:"default:0" json:"-"` // negative means overpaid
	PaymentMethod      enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	PaymentStatus      enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	CustomerName       string             `gorm:"size:255" json:"customer_name"`
	CreatedBy          uuid.UUID          `gorm:"type:uuid" json:"created_by"`
	UpdatedBy          uuid.UUID          `gorm:"type:uuid" json:"updated_by"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`
}

// MarshalJSON converts kobo amounts to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		UnitCost           float64 `json:"unit_cost"`
		TotalCost          float64 `json:"total_cost"`
		Paid               float64 `json:"paid"`
		OutstandingBalance float64 `json:"outstanding_balance"`
	}{
		Alias:              Alias(s),
		UnitCost:           float64(s.UnitCost) / 100,
		TotalCost:          float64(s.TotalCost) / 100,
		Paid:               float64(s.Paid) / 100,
		OutstandingBalance: float64(s.OutstandingBalance) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// Recalculate restores the derived-field invariants:
// totalCost = quantity x unitCost, outstandingBalance = totalCost - paid,
// paymentStatus = Paid iff outstandingBalance == 0.
func (s *Sale) Recalculate() {
	s.TotalCost = int64(s.Quantity) * s.UnitCost
	s.OutstandingBalance = s.TotalCost - s.Paid
	s.PaymentStatus = enum.StatusFor(s.OutstandingBalance)
}
