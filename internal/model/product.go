package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices and totals are emitted as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog entry. Products are immutable once created.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description" gorm:"type:text"`
	Image       string          `json:"image" gorm:"size:1024"`
	Category    string          `json:"category" gorm:"size:100;index"`
}

// ProductFilter narrows a catalog listing. An empty Category matches every product.
type ProductFilter struct {
	Category string
	Skip     int
	Limit    int
}
