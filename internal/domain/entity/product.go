package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Product is an item or service the shop sells. Prices are stored in kobo
// (minor units). GenPrice is the alternate price charged while the shop is
// running on generator power; it is optional per product.
type Product struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name      string               `gorm:"size:255;not null;index" json:"product_name"`
	Category  enum.ProductCategory `gorm:"default:0" json:"category"`
	Price     int64                `gorm:"not null" json:"-"` // kobo, decimal in JSON
	GenPrice  *int64               `json:"-"`                 // kobo, decimal in JSON
	Stock     *int                 `json:"stock,omitempty"`
	Favorite  bool                 `gorm:"default:false" json:"favorite"`
	CreatedBy uuid.UUID            `gorm:"type:uuid" json:"created_by"`
	UpdatedBy uuid.UUID            `gorm:"type:uuid" json:"updated_by"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	DeletedAt gorm.DeletedAt       `gorm:"index" json:"-"`
}

// MarshalJSON converts kobo prices to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	var genPrice *float64
	if p.GenPrice != nil {
		v := float64(*p.GenPrice) / 100
		genPrice = &v
	}
	return json.Marshal(&struct {
		Alias
		Price    float64  `json:"price"`
		GenPrice *float64 `json:"gen_price,omitempty"`
	}{
		Alias:    Alias(p),
		Price:    float64(p.Price) / 100,
		GenPrice: genPrice,
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// EffectiveUnitPrice resolves the price a basket line should be charged:
// a custom override wins, then the generator price when the global toggle
// is on and the product defines one, then the base price.
func (p *Product) EffectiveUnitPrice(generatorOn bool, customPrice *int64) int64 {
	if customPrice != nil {
		return *customPrice
	}
	if generatorOn && p.GenPrice != nil && *p.GenPrice > 0 {
		return *p.GenPrice
	}
	return p.Price
}
