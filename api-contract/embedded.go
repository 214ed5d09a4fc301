// Package apicontract holds the OpenAPI document of the product catalog API.
package apicontract

import _ "embed"

//go:embed openapi.yml
var openAPI []byte

// OpenAPI returns the raw YAML contract. Callers must not modify the slice.
func OpenAPI() []byte {
	return openAPI
}
