package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

func TestMemoryProductRepository(t *testing.T) {
	runProductRepositoryTests(t, func(t *testing.T) repository.ProductRepository {
		return repository.NewMemoryProductRepository()
	})
}

func TestMemoryProductRepository_OrderByCreatedAt(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base.Add(2 * time.Hour), base, base.Add(time.Hour)}
	i := 0
	repo := repository.NewMemoryProductRepository(repository.WithClock(func() time.Time {
		t := times[i]
		i++
		return t
	}))

	ctx := context.Background()
	for _, name := range []string{"Late", "Early", "Middle"} {
		_, err := repo.CreateProduct(ctx, model.Product{Name: name, Price: decimal.Zero})
		require.NoError(t, err)
	}

	products, err := repo.ListAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Late", products[0].Name)
	assert.Equal(t, "Middle", products[1].Name)
	assert.Equal(t, "Early", products[2].Name)
}

func TestMemoryProductRepository_NoAliasing(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()

	desc := ptr.New("Mechanical")
	created, err := repo.CreateProduct(ctx, model.Product{Name: "Keyboard", Description: desc, Price: decimal.Zero})
	require.NoError(t, err)

	*desc = "changed by caller"
	*created.Description = "changed through result"

	got, _, err := repo.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mechanical", *got.Description)
}

func TestMemoryProductRepository_IDsNotReused(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()

	first, err := repo.CreateProduct(ctx, model.Product{Name: "One", Price: decimal.Zero})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteProduct(ctx, first))

	second, err := repo.CreateProduct(ctx, model.Product{Name: "Two", Price: decimal.Zero})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestMemoryProductRepository_UpdateMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()

	require.NoError(t, repo.UpdateProduct(ctx, model.Product{ID: 99, Name: "Ghost"}))

	count, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryProductRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := repository.NewMemoryProductRepository()
	_, err := repo.ListAllProducts(ctx)
	assert.ErrorIs(t, err, apperr.StoreUnavailableErr)
	assert.ErrorIs(t, err, context.Canceled)
}
