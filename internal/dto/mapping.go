package dto

import (
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

// FromProduct maps a persisted product to its read shape.
func FromProduct(p model.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: ptr.Clone(p.Description),
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}

// FromProducts maps products preserving order. The result is never nil.
func FromProducts(products []model.Product) []ProductDTO {
	res := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		res = append(res, FromProduct(p))
	}
	return res
}

// ToProduct builds a new, not yet persisted product from the write shape.
func ToProduct(in CreateUpdateProductDTO) model.Product {
	var p model.Product
	ApplyTo(in, &p)
	return p
}

// ApplyTo overwrites the mutable fields of p. ID and CreatedAt are left untouched.
func ApplyTo(in CreateUpdateProductDTO, p *model.Product) {
	p.Name = in.Name
	p.Description = ptr.Clone(in.Description)
	p.Price = in.Price
}
