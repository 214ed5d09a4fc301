package repository_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

// runProductRepositoryTests exercises behaviour every backend must share.
// newRepo must return an empty repository.
func runProductRepositoryTests(t *testing.T, newRepo func(t *testing.T) repository.ProductRepository) {
	ctx := context.Background()

	t.Run("Should assign id and created at on create", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.CreateProduct(ctx, model.Product{
			Name:  "Keyboard",
			Price: decimal.RequireFromString("99.99"),
		})
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Nil(t, created.Description)

		got, ok, err := repo.GetProductByID(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Keyboard", got.Name)
		assert.True(t, created.Price.Equal(got.Price))
		assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("Should report absence without error", func(t *testing.T) {
		repo := newRepo(t)

		_, ok, err := repo.GetProductByID(ctx, 4242)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Should list newest first", func(t *testing.T) {
		repo := newRepo(t)

		var ids []int64
		for _, name := range []string{"First", "Second", "Third"} {
			p, err := repo.CreateProduct(ctx, model.Product{Name: name, Price: decimal.NewFromInt(1)})
			require.NoError(t, err)
			ids = append(ids, p.ID)
		}

		products, err := repo.ListAllProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, []int64{ids[2], ids[1], ids[0]}, []int64{products[0].ID, products[1].ID, products[2].ID})

		count, err := repo.CountProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Should return empty list for empty store", func(t *testing.T) {
		repo := newRepo(t)

		products, err := repo.ListAllProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Should overwrite mutable fields on update", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.CreateProduct(ctx, model.Product{
			Name:        "Mouse",
			Description: ptr.New("Wireless"),
			Price:       decimal.RequireFromString("49.99"),
		})
		require.NoError(t, err)

		updated := created
		updated.Name = "Mouse Pro"
		updated.Description = nil
		updated.Price = decimal.RequireFromString("59.50")
		require.NoError(t, repo.UpdateProduct(ctx, updated))

		got, ok, err := repo.GetProductByID(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Mouse Pro", got.Name)
		assert.Nil(t, got.Description)
		assert.True(t, decimal.RequireFromString("59.50").Equal(got.Price))
		assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("Should delete", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.CreateProduct(ctx, model.Product{Name: "Monitor", Price: decimal.NewFromInt(229)})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteProduct(ctx, created))

		_, ok, err := repo.GetProductByID(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Should return the stored price on create", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.CreateProduct(ctx, model.Product{
			Name:  "Cable",
			Price: decimal.RequireFromString("99.995"),
		})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("100.00").Equal(created.Price), created.Price.String())

		got, ok, err := repo.GetProductByID(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, created.Price.Equal(got.Price))
	})

	t.Run("Should reject prices that overflow the column", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.CreateProduct(ctx, model.Product{
			Name:  "Yacht",
			Price: decimal.RequireFromString("1e20"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ValidationErr)
		assert.NotErrorIs(t, err, apperr.StoreUnavailableErr)

		created, err := repo.CreateProduct(ctx, model.Product{Name: "Boat", Price: decimal.NewFromInt(1)})
		require.NoError(t, err)

		created.Price = decimal.RequireFromString("1e20")
		err = repo.UpdateProduct(ctx, created)
		assert.ErrorIs(t, err, apperr.ValidationErr)

		got, _, err := repo.GetProductByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1).Equal(got.Price))

		count, err := repo.CountProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
