package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/dto"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

const (
	productsPath = "/api/products"

	maxBodyBytes = 1 << 20 // 1 MB
)

type productHandler struct {
	productSvc service.ProductService
	validator  validator.Validator
}

func newProductHandler(productSvc service.ProductService, v validator.Validator) *productHandler {
	return &productHandler{
		productSvc: productSvc,
		validator:  v,
	}
}

func (h *productHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	products, err := h.productSvc.ListProducts(r.Context())
	if err != nil {
		return fmt.Errorf("product service list products: %w", err)
	}

	return writeJSON(w, http.StatusOK, products)
}

func (h *productHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDParam(r)
	if err != nil {
		return err
	}

	product, ok, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		return fmt.Errorf("product service get product: %w", err)
	}
	if !ok {
		return apperr.ProductNotFoundErr
	}

	return writeJSON(w, http.StatusOK, product)
}

func (h *productHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	input, err := h.decodeProductInput(w, r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.CreateProduct(r.Context(), input)
	if err != nil {
		return fmt.Errorf("product service create product: %w", err)
	}

	w.Header().Set("Location", fmt.Sprintf("%s/%d", productsPath, product.ID))
	return writeJSON(w, http.StatusCreated, product)
}

func (h *productHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDParam(r)
	if err != nil {
		return err
	}

	input, err := h.decodeProductInput(w, r)
	if err != nil {
		return err
	}

	ok, err := h.productSvc.UpdateProduct(r.Context(), id, input)
	if err != nil {
		return fmt.Errorf("product service update product: %w", err)
	}
	if !ok {
		return apperr.ProductNotFoundErr
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *productHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productIDParam(r)
	if err != nil {
		return err
	}

	ok, err := h.productSvc.DeleteProduct(r.Context(), id)
	if err != nil {
		return fmt.Errorf("product service delete product: %w", err)
	}
	if !ok {
		return apperr.ProductNotFoundErr
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *productHandler) decodeProductInput(w http.ResponseWriter, r *http.Request) (dto.CreateUpdateProductDTO, error) {
	var input dto.CreateUpdateProductDTO
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		return dto.CreateUpdateProductDTO{}, apperr.ValidationErr.WrapParent(fmt.Errorf("decode request body: %w", err))
	}

	if err := h.validator.Validate(input); err != nil {
		return dto.CreateUpdateProductDTO{}, apperr.ValidationErr.WrapParent(err)
	}

	return input, nil
}

func productIDParam(r *http.Request) (int64, error) {
	var id int64
	if err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	}); err != nil {
		// a non integer id can never address a product
		return 0, apperr.ProductNotFoundErr.WrapParent(fmt.Errorf("invalid format for parameter id: %w", err))
	}

	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	return nil
}
