package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/seed"
)

func TestApply(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Should seed an empty store once", func(t *testing.T) {
		repo := repository.NewMemoryProductRepository()

		require.NoError(t, seed.Apply(ctx, repo, logger))
		require.NoError(t, seed.Apply(ctx, repo, logger))

		products, err := repo.ListAllProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)

		names := make([]string, 0, len(products))
		for _, p := range products {
			names = append(names, p.Name)
		}
		assert.ElementsMatch(t, []string{"Keyboard", "Mouse", "Monitor"}, names)
	})

	t.Run("Should leave a non empty store alone", func(t *testing.T) {
		repo := repository.NewMemoryProductRepository()
		_, err := repo.CreateProduct(ctx, model.Product{Name: "Existing", Price: decimal.Zero})
		require.NoError(t, err)

		require.NoError(t, seed.Apply(ctx, repo, logger))

		count, err := repo.CountProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
