package models

import "github.com/shopspring/decimal"

// Product represents a product entity in the inventory system.
// Category and Unit carry the resolved names of CategoryID and UnitID.
type Product struct {
	ID            int
	Article       int
	Name          string
	PurchasePrice decimal.NullDecimal
	SellPrice     decimal.NullDecimal
	IsActive      bool
	CategoryID    *int
	Category      *string
	UnitID        *int
	Unit          *string
}
