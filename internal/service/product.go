package service

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/product-catalog/internal/dto"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]dto.ProductDTO, error)
	// GetProduct reports false when the product does not exist.
	GetProduct(ctx context.Context, id int64) (dto.ProductDTO, bool, error)
	CreateProduct(ctx context.Context, input dto.CreateUpdateProductDTO) (dto.ProductDTO, error)
	// UpdateProduct reports false, without writing, when the product does not exist.
	UpdateProduct(ctx context.Context, id int64, input dto.CreateUpdateProductDTO) (bool, error)
	// DeleteProduct reports false, without deleting, when the product does not exist.
	DeleteProduct(ctx context.Context, id int64) (bool, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all products: %w", err)
	}

	return dto.FromProducts(products), nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (dto.ProductDTO, bool, error) {
	product, ok, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return dto.ProductDTO{}, false, fmt.Errorf("product repository get product by id: %w", err)
	}
	if !ok {
		return dto.ProductDTO{}, false, nil
	}

	return dto.FromProduct(product), true, nil
}

func (s *productService) CreateProduct(ctx context.Context, input dto.CreateUpdateProductDTO) (dto.ProductDTO, error) {
	product, err := s.productRepo.CreateProduct(ctx, dto.ToProduct(input))
	if err != nil {
		return dto.ProductDTO{}, fmt.Errorf("product repository create product: %w", err)
	}

	return dto.FromProduct(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, input dto.CreateUpdateProductDTO) (bool, error) {
	product, ok, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("product repository get product by id: %w", err)
	}
	if !ok {
		return false, nil
	}

	dto.ApplyTo(input, &product)

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return false, fmt.Errorf("product repository update product: %w", err)
	}

	return true, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	product, ok, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("product repository get product by id: %w", err)
	}
	if !ok {
		return false, nil
	}

	if err := s.productRepo.DeleteProduct(ctx, product); err != nil {
		return false, fmt.Errorf("product repository delete product: %w", err)
	}

	return true, nil
}
