package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cozastore-backend/internal/domains/product/model"
	"cozastore-backend/pkg/cache"
	"cozastore-backend/pkg/logger"
)

const (
	cacheKeyActiveProducts  = "products:active"
	cacheKeyCategoryPattern = "products:category:*"
	cacheTTL                = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: c}
}

const productColumns = `id, name, description, price, stock_quantity, image_url, category_id, is_active, created_at, updated_at`

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
		&p.ImageURL, &p.CategoryID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *postgresRepository) GetAllActive(ctx context.Context) ([]model.Product, error) {
	if r.cache != nil {
		var cached []model.Product
		if found, err := r.cache.Get(ctx, cacheKeyActiveProducts, &cached); err == nil && found {
			return cached, nil
		}
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE is_active
		ORDER BY name
	`, productColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKeyActiveProducts, products, cacheTTL); err != nil {
			logger.Error("failed to cache product list", err)
		}
	}

	return products, nil
}

func (r *postgresRepository) GetByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Product, error) {
	cacheKey := fmt.Sprintf("products:category:%s", categoryID)

	if r.cache != nil {
		var cached []model.Product
		if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE category_id = $1 AND is_active
		ORDER BY name
	`, productColumns)

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by category: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, products, cacheTTL); err != nil {
			logger.Error("failed to cache category product list", err)
		}
	}

	return products, nil
}

// GetByID always reads the database. Cart pricing depends on this being
// the current row, never a cached copy.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = $1
	`, productColumns)

	var p model.Product
	if err := scanProduct(r.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock_quantity, image_url, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_active, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price,
		product.StockQuantity, product.ImageURL, product.CategoryID,
	).Scan(&product.ID, &product.IsActive, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.invalidateListCaches(ctx)
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock_quantity = $5,
		    image_url = $6, category_id = $7, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.StockQuantity, product.ImageURL, product.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	r.invalidateListCaches(ctx)
	return nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE products
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	r.invalidateListCaches(ctx)
	return nil
}

func (r *postgresRepository) invalidateListCaches(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, cacheKeyActiveProducts); err != nil {
		logger.Error("failed to invalidate product list cache", err)
	}
	if err := r.cache.DeletePattern(ctx, cacheKeyCategoryPattern); err != nil {
		logger.Error("failed to invalidate category list caches", err)
	}
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}
