package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/dto"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

func newService(t *testing.T) service.ProductService {
	t.Helper()
	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := repository.NewMemoryProductRepository(repository.WithClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}))
	return service.NewProductService(repo)
}

func TestProductService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateProduct(ctx, dto.CreateUpdateProductDTO{
		Name:        "Keyboard",
		Description: ptr.New("Mechanical"),
		Price:       decimal.RequireFromString("99.99"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, ok, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestProductService_MissingIDs(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	for _, id := range []int64{0, -1, 1, 999} {
		t.Run(fmt.Sprintf("id %d", id), func(t *testing.T) {
			_, ok, err := svc.GetProduct(ctx, id)
			require.NoError(t, err)
			assert.False(t, ok)

			ok, err = svc.UpdateProduct(ctx, id, dto.CreateUpdateProductDTO{Name: "Ghost", Price: decimal.Zero})
			require.NoError(t, err)
			assert.False(t, ok)

			ok, err = svc.DeleteProduct(ctx, id)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	const n = 5
	for i := range n {
		_, err := svc.CreateProduct(ctx, dto.CreateUpdateProductDTO{
			Name:  fmt.Sprintf("Product %d", i),
			Price: decimal.NewFromInt(int64(i)),
		})
		require.NoError(t, err)
	}

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, n)
	for i := 1; i < n; i++ {
		assert.True(t, products[i-1].CreatedAt.After(products[i].CreatedAt))
	}
	assert.Equal(t, "Product 4", products[0].Name)
}

func TestProductService_UpdateKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateProduct(ctx, dto.CreateUpdateProductDTO{
		Name:        "Keyboard",
		Description: ptr.New("Mechanical"),
		Price:       decimal.RequireFromString("99.99"),
	})
	require.NoError(t, err)

	ok, err := svc.UpdateProduct(ctx, created.ID, dto.CreateUpdateProductDTO{
		Name:  "Keyboard Pro",
		Price: decimal.RequireFromString("109.99"),
	})
	require.NoError(t, err)
	require.True(t, ok)

	got, ok, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.Equal(t, "Keyboard Pro", got.Name)
	assert.Nil(t, got.Description)
	assert.Equal(t, "109.99", got.Price.String())
}

func TestProductService_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateProduct(ctx, dto.CreateUpdateProductDTO{Name: "Mouse", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	ok, err := svc.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) GetProductByID(ctx context.Context, id int64) (model.Product, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Bool(1), args.Error(2)
}

func (m *mockProductRepository) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, product model.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, product model.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestProductService_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	storeErr := apperr.StoreUnavailableErr.WrapParent(errors.New("connection refused"))

	repo := new(mockProductRepository)
	repo.On("ListAllProducts", ctx).Return(nil, storeErr)
	repo.On("CreateProduct", ctx, mock.Anything).Return(model.Product{}, storeErr)

	svc := service.NewProductService(repo)

	_, err := svc.ListProducts(ctx)
	assert.ErrorIs(t, err, apperr.StoreUnavailableErr)

	_, err = svc.CreateProduct(ctx, dto.CreateUpdateProductDTO{Name: "Keyboard", Price: decimal.Zero})
	assert.ErrorIs(t, err, apperr.StoreUnavailableErr)

	repo.AssertExpectations(t)
}

func TestProductService_UpdateMissingDoesNotWrite(t *testing.T) {
	ctx := context.Background()

	repo := new(mockProductRepository)
	repo.On("GetProductByID", ctx, int64(3)).Return(model.Product{}, false, nil)

	svc := service.NewProductService(repo)

	ok, err := svc.UpdateProduct(ctx, 3, dto.CreateUpdateProductDTO{Name: "Keyboard", Price: decimal.Zero})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.DeleteProduct(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	repo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
}
