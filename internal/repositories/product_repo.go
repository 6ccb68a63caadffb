package repositories

import (
	"context"
	"errors"

	"shopmart/internal/common"
	"shopmart/internal/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository interface {
	ListWithCount(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Product, error)
	ListPopular(ctx context.Context, limit int) ([]*models.Product, error)
	AdjustStock(ctx context.Context, id int64, delta int) (*models.Product, error)
}

type productRepo struct {
	db Database
}

func NewProductRepo(db Database) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) ListWithCount(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT p.id, p.name, p.price, p.stock, COUNT(oi.id) AS order_item_count, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN order_items oi ON oi.product_id = p.id
		GROUP BY p.id
		ORDER BY p.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Stock, &product.OrderItemCount, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT p.id, p.name, p.price, p.stock, COUNT(oi.id) AS order_item_count, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN order_items oi ON oi.product_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&product.ID, &product.Name, &product.Price, &product.Stock, &product.OrderItemCount, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &common.NotFoundError{Resource: "Product", ID: id}
		}
		return nil, err
	}
	return product, nil
}

// GetByIDForUpdate locks the product row for the duration of the enclosing
// transaction, so concurrent orders against the same product serialize on the
// stock check instead of both passing it.
func (r *productRepo) GetByIDForUpdate(ctx context.Context, id int64) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM products
		WHERE id = $1
		FOR UPDATE
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&product.ID, &product.Name, &product.Price, &product.Stock, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &common.NotFoundError{Resource: "Product", ID: id}
		}
		return nil, err
	}
	return product, nil
}

// ListPopular returns up to limit products by descending order-line-item
// count. Ties come back in whatever order Postgres produces them.
func (r *productRepo) ListPopular(ctx context.Context, limit int) ([]*models.Product, error) {
	query := `
		SELECT p.id, p.name, p.price, p.stock, COUNT(oi.id) AS order_item_count, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN order_items oi ON oi.product_id = p.id
		GROUP BY p.id
		ORDER BY COUNT(oi.id) DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Stock, &product.OrderItemCount, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// AdjustStock applies delta to the product's stock in one atomic statement.
// The WHERE guard keeps stock from ever going negative.
func (r *productRepo) AdjustStock(ctx context.Context, id int64, delta int) (*models.Product, error) {
	product := &models.Product{}
	query := `
		UPDATE products
		SET stock = stock + $2, updated_at = NOW()
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING id, name, price, stock, (SELECT COUNT(*) FROM order_items WHERE product_id = products.id), created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, id, delta).Scan(&product.ID, &product.Name, &product.Price, &product.Stock, &product.OrderItemCount, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, lookupErr := r.GetByID(ctx, id); lookupErr != nil {
				return nil, lookupErr
			}
			return nil, &common.InvalidArgumentError{Field: "stock", Message: "resulting stock cannot be negative"}
		}
		return nil, err
	}
	return product, nil
}
