package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// The reserved default category: every orphaned product falls back to it,
// and it can never be renamed or deleted.
const (
	DefaultCategoryID   = "cat_0"
	DefaultCategoryName = "Default"
)

// Length of each of the two caller-supplied barcode prefix codes.
const CodeLength = 4

// Product represents a catalog entry, keyed by barcode in the products
// collection.
type Product struct {
	Name        string          `json:"name"`
	CategoryID  string          `json:"category_id"`
	DefaultCost decimal.Decimal `json:"default_cost"`
}

// Category is the API shape of one entry of the id -> name categories
// collection.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SynthesizeBarcode derives a barcode from the two 4-character codes and the
// current product count. The sequence suffix repeats after deletions, so the
// caller must treat an existing barcode as a collision, never an overwrite.
func SynthesizeBarcode(principalCode, typeCode string, productCount int) string {
	return fmt.Sprintf("%s%s%04d", principalCode, typeCode, productCount+1)
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	All() (map[string]Product, error)
	SaveAll(products map[string]Product) error
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	All() (map[string]string, error)
	SaveAll(categories map[string]string) error
}
