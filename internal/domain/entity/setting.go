package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting is the single-row business configuration. GeneratorOn is the
// site-wide "running on generator power" toggle that switches products to
// their alternate price.
type Setting struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BusinessName string    `gorm:"size:255;default:'Merci Bizhub'" json:"business_name"`
	GeneratorOn  bool      `gorm:"default:false" json:"generator_on"`
	UpdatedBy    uuid.UUID `gorm:"type:uuid" json:"updated_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
