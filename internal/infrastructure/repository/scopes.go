package repository

import (
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// SearchScope returns a GORM scope that matches the term against any of
// the given columns, case-insensitively. An empty term leaves the query
// unfiltered.
func SearchScope(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + term + "%"
		cond := db.Session(&gorm.Session{NewDB: true})
		for _, col := range columns {
			cond = cond.Or(col+" ILIKE ?", pattern)
		}
		return db.Where(cond)
	}
}

// StatusScope returns a GORM scope that filters by payment status when
// one is given.
func StatusScope(status *enum.PaymentStatus) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == nil {
			return db
		}
		return db.Where("payment_status = ?", *status)
	}
}
