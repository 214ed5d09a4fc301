package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductDTO is the read shape of a product.
type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateUpdateProductDTO is the write shape shared by create and update.
// ID and CreatedAt are always server owned.
type CreateUpdateProductDTO struct {
	Name        string          `json:"name" validate:"required,notblank,min=2"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gte=0,decimal=18:2"`
}
