package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cozastore-backend/internal/domains/cart/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID string) ([]model.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

func (r *postgresRepository) FindByUserAndProduct(ctx context.Context, userID string, productID uuid.UUID) (*model.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1 AND product_id = $2
	`

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, userID, productID).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}

	return &item, nil
}

// IncrementQuantity relies on the UNIQUE (user_id, product_id) constraint.
// The upsert reads and writes the quantity in a single statement, so two
// concurrent adds both land even when they race on the same line.
func (r *postgresRepository) IncrementQuantity(ctx context.Context, userID string, productID uuid.UUID, delta int) (*model.CartItem, error) {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, userID, productID, delta).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return &item, nil
}

func (r *postgresRepository) SetQuantity(ctx context.Context, id uuid.UUID, userID string, quantity int) (*model.CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, id, userID, quantity).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLineNotFound
		}
		return nil, fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	return &item, nil
}

func (r *postgresRepository) Remove(ctx context.Context, id uuid.UUID, userID string) error {
	query := `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrLineNotFound
	}

	return nil
}

func (r *postgresRepository) ClearByUser(ctx context.Context, userID string) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	return result.RowsAffected(), nil
}
