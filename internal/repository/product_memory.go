package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

// MemoryOption configures the in-memory product repository.
type MemoryOption func(*memoryProductRepository)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) MemoryOption {
	return func(r *memoryProductRepository) {
		r.now = now
	}
}

type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[int64]model.Product
	lastID   int64
	now      func() time.Time
}

// NewMemoryProductRepository returns an ephemeral repository. Contents are lost on restart.
func NewMemoryProductRepository(opts ...MemoryOption) ProductRepository {
	r := &memoryProductRepository{
		products: make(map[int64]model.Product),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *memoryProductRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("list all products", err)
	}

	r.mu.RLock()
	products := make([]model.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, cloneProduct(product))
	}
	r.mu.RUnlock()

	slices.SortFunc(products, func(a, b model.Product) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return products, nil
}

func (r *memoryProductRepository) GetProductByID(ctx context.Context, id int64) (model.Product, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Product{}, false, storeErr("get product by id", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return model.Product{}, false, nil
	}

	return cloneProduct(product), true, nil
}

func (r *memoryProductRepository) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	if err := ctx.Err(); err != nil {
		return model.Product{}, storeErr("create product", err)
	}

	price, err := fitPrice(product.Price)
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}
	product.Price = price

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	product.ID = r.lastID
	product.CreatedAt = r.now().UTC()
	r.products[product.ID] = cloneProduct(product)

	return cloneProduct(product), nil
}

func (r *memoryProductRepository) UpdateProduct(ctx context.Context, product model.Product) error {
	if err := ctx.Err(); err != nil {
		return storeErr("update product", err)
	}

	price, err := fitPrice(product.Price)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return nil
	}

	existing.Name = product.Name
	existing.Description = ptr.Clone(product.Description)
	existing.Price = price
	r.products[product.ID] = existing

	return nil
}

func (r *memoryProductRepository) DeleteProduct(ctx context.Context, product model.Product) error {
	if err := ctx.Err(); err != nil {
		return storeErr("delete product", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, product.ID)

	return nil
}

func (r *memoryProductRepository) CountProducts(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeErr("count products", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}

// maxPrice is the first value that no longer fits NUMERIC(18,2).
var maxPrice = decimal.New(1, model.PricePrecision-model.PriceScale)

// fitPrice stores prices the way a NUMERIC(18,2) column does: rounded half away
// from zero to two places, rejected when the integer part is too wide.
func fitPrice(d decimal.Decimal) (decimal.Decimal, error) {
	rounded := d.Round(model.PriceScale)
	if rounded.Abs().GreaterThanOrEqual(maxPrice) {
		return decimal.Decimal{}, apperr.ValidationErr.WrapParent(
			fmt.Errorf("price %s overflows numeric(%d,%d)", d, model.PricePrecision, model.PriceScale))
	}
	return rounded, nil
}

func cloneProduct(p model.Product) model.Product {
	p.Description = ptr.Clone(p.Description)
	return p
}
