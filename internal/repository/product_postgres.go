package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

const (
	productListAllQuery = `
SELECT id, name, description, price, created_at
FROM products
ORDER BY created_at DESC, id DESC`

	productGetByIDQuery = `
SELECT id, name, description, price, created_at
FROM products
WHERE id = $1`

	productCreateQuery = `
INSERT INTO products (name, description, price)
VALUES ($1, $2, $3)
RETURNING id, price, created_at`

	productUpdateQuery = `
UPDATE products
SET name = $2, description = $3, price = $4
WHERE id = $1`

	productDeleteQuery = `DELETE FROM products WHERE id = $1`

	productCountQuery = `SELECT count(*) FROM products`
)

type postgresProductRepository struct {
	db db.DB
}

func NewPostgresProductRepository(db db.DB) ProductRepository {
	return &postgresProductRepository{
		db: db,
	}
}

func (r postgresProductRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, productListAllQuery)
	if err != nil {
		return nil, storeErr("list all products", err)
	}

	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, storeErr("collect products", err)
	}

	return products, nil
}

func (r postgresProductRepository) GetProductByID(ctx context.Context, id int64) (model.Product, bool, error) {
	rows, err := r.db.Query(ctx, productGetByIDQuery, id)
	if err != nil {
		return model.Product{}, false, storeErr("get product by id", err)
	}

	product, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, false, nil
		}
		return model.Product{}, false, storeErr("collect product", err)
	}

	return product, true, nil
}

func (r postgresProductRepository) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	price, err := decimalToNumeric(product.Price)
	if err != nil {
		return model.Product{}, err
	}

	var stored pgtype.Numeric
	if err := r.db.QueryRow(ctx, productCreateQuery,
		product.Name,
		product.Description,
		price,
	).Scan(&product.ID, &stored, &product.CreatedAt); err != nil {
		return model.Product{}, writeErr("create product", err)
	}

	// the column may have rounded the price
	if product.Price, err = numericToDecimal(stored); err != nil {
		return model.Product{}, fmt.Errorf("scan created product %d: %w", product.ID, err)
	}

	return product, nil
}

func (r postgresProductRepository) UpdateProduct(ctx context.Context, product model.Product) error {
	price, err := decimalToNumeric(product.Price)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, productUpdateQuery,
		product.ID,
		product.Name,
		product.Description,
		price,
	); err != nil {
		return writeErr("update product", err)
	}

	return nil
}

func (r postgresProductRepository) DeleteProduct(ctx context.Context, product model.Product) error {
	if _, err := r.db.Exec(ctx, productDeleteQuery, product.ID); err != nil {
		return storeErr("delete product", err)
	}

	return nil
}

func (r postgresProductRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, productCountQuery).Scan(&count); err != nil {
		return 0, storeErr("count products", err)
	}

	return count, nil
}

func scanProduct(row pgx.CollectableRow) (model.Product, error) {
	var (
		product model.Product
		price   pgtype.Numeric
	)
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&price,
		&product.CreatedAt,
	); err != nil {
		return model.Product{}, fmt.Errorf("scan product: %w", err)
	}

	p, err := numericToDecimal(price)
	if err != nil {
		return model.Product{}, fmt.Errorf("scan product %d: %w", product.ID, err)
	}
	product.Price = p

	return product, nil
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.Int == nil || n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Decimal{}, errors.New("price is not a finite number")
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

func decimalToNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var price pgtype.Numeric
	if err := price.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("scan price: %w", err)
	}
	return price, nil
}

// numericValueOutOfRange is raised when a price does not fit NUMERIC(18,2).
const numericValueOutOfRange = "22003"

// writeErr reports values the column rejects as validation errors and
// everything else as store failures.
func writeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == numericValueOutOfRange {
		return fmt.Errorf("%s: %w", op, apperr.ValidationErr.WrapParent(err))
	}
	return storeErr(op, err)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, apperr.StoreUnavailableErr.WrapParent(err))
}
