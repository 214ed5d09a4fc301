package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/pkg/zerror"
)

func TestZError(t *testing.T) {
	notFound := zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")

	t.Run("Should format without parent", func(t *testing.T) {
		assert.Equal(t, "Code=PRODUCT_NOT_FOUND, Msg=product not found", notFound.Error())
	})

	t.Run("Should unwrap to parent", func(t *testing.T) {
		parent := errors.New("connection refused")
		err := fmt.Errorf("list products: %w", notFound.WrapParent(parent))

		assert.ErrorIs(t, err, parent)
		assert.ErrorIs(t, err, notFound)

		var zErr zerror.ZError
		assert.True(t, errors.As(err, &zErr))
		assert.Equal(t, zerror.StatusNotFound, zErr.Status())
		assert.Equal(t, parent, zErr.Parent())
	})

	t.Run("Should keep predefined error untouched on nil parent", func(t *testing.T) {
		assert.Nil(t, notFound.WrapParent(nil).Parent())
	})

	t.Run("Should not match a different code", func(t *testing.T) {
		other := zerror.NewNotFound("OTHER", "other")
		assert.NotErrorIs(t, notFound, other)
	})
}
