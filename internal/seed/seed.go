package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{Name: "Keyboard", Description: ptr.New("Mechanical"), Price: decimal.RequireFromString("99.99")},
		{Name: "Mouse", Description: ptr.New("Wireless"), Price: decimal.RequireFromString("49.99")},
		{Name: "Monitor", Description: ptr.New("27in"), Price: decimal.RequireFromString("229.90")},
	}
}

// Apply inserts the sample products when the store is empty. It is a no-op otherwise,
// so it is safe to run on every startup.
func Apply(ctx context.Context, repo repository.ProductRepository, logger *slog.Logger) error {
	count, err := repo.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		logger.DebugContext(ctx, "store not empty, skipping seed", slog.Int64("count", count))
		return nil
	}

	for _, p := range sampleProducts() {
		created, err := repo.CreateProduct(ctx, p)
		if err != nil {
			return fmt.Errorf("create product %s: %w", p.Name, err)
		}
		logger.DebugContext(ctx, "seeded product",
			slog.Int64("id", created.ID),
			slog.String("name", created.Name))
	}

	logger.InfoContext(ctx, "seeded sample products")

	return nil
}
