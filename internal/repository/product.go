package repository

import (
	"context"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
)

// ProductRepository persists products. Store failures are returned wrapping
// apperr.StoreUnavailableErr.
type ProductRepository interface {
	// ListAllProducts returns every product, newest first.
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	// GetProductByID reports false when no product has the given id.
	GetProductByID(ctx context.Context, id int64) (model.Product, bool, error)
	// CreateProduct stores the product and returns it with ID and CreatedAt assigned.
	CreateProduct(ctx context.Context, product model.Product) (model.Product, error)
	// UpdateProduct overwrites name, description and price of the product matched by ID.
	UpdateProduct(ctx context.Context, product model.Product) error
	DeleteProduct(ctx context.Context, product model.Product) error
	CountProducts(ctx context.Context) (int64, error)
}
