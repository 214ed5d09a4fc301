package apperr

import "github.com/tuanvumaihuynh/product-catalog/pkg/zerror"

const (
	ValidationErrorCode       = "VALIDATION_FAILED"
	ProductNotFoundErrorCode  = "PRODUCT_NOT_FOUND"
	StoreUnavailableErrorCode = "STORE_UNAVAILABLE"
)

var (
	ValidationErr       = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr  = zerror.NewNotFound(ProductNotFoundErrorCode, "product not found")
	StoreUnavailableErr = zerror.NewInternalServerError(StoreUnavailableErrorCode, "product store unavailable")
)
