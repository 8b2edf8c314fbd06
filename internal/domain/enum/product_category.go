package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ProductCategory distinguishes physical goods from services
type ProductCategory int

const (
	ProductCategoryProduct ProductCategory = 0
	ProductCategoryService ProductCategory = 1
)

var productCategoryNames = [...]string{"Product", "Service"}

// Valid reports whether the value is one of the declared categories.
func (c ProductCategory) Valid() bool {
	return c == ProductCategoryProduct || c == ProductCategoryService
}

func (c ProductCategory) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return productCategoryNames[c]
}

func (c ProductCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts either the name or the numeric value and rejects
// anything outside the declared set.
func (c *ProductCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		v := ProductCategory(i)
		if !v.Valid() {
			return fmt.Errorf("invalid product category: %d", i)
		}
		*c = v
		return nil
	}
	switch str {
	case "Product":
		*c = ProductCategoryProduct
	case "Service":
		*c = ProductCategoryService
	default:
		return fmt.Errorf("invalid product category: %q", str)
	}
	return nil
}

func (c ProductCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ProductCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ProductCategoryProduct
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ProductCategory(v)
	case int:
		*c = ProductCategory(v)
	}
	if !c.Valid() {
		*c = ProductCategoryProduct
	}
	return nil
}
