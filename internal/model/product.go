package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prices are stored as NUMERIC(PricePrecision, PriceScale).
const (
	PricePrecision = 18
	PriceScale     = 2
)

// Product is the persisted catalog entry. ID and CreatedAt are assigned by the store.
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal
	CreatedAt   time.Time
}
