package repository

import (
	"context"

	"github.com/google/uuid"

	"cozastore-backend/internal/domains/cart/model"
)

type RepositoryInterface interface {
	// ListByUser returns the user's lines ordered by creation time.
	ListByUser(ctx context.Context, userID string) ([]model.CartItem, error)

	// FindByUserAndProduct returns nil when the user has no line for the product.
	FindByUserAndProduct(ctx context.Context, userID string, productID uuid.UUID) (*model.CartItem, error)

	// IncrementQuantity adds delta to the user's line for the product,
	// creating the line when absent. The whole operation is atomic:
	// concurrent calls for the same (user, product) never lose an update.
	IncrementQuantity(ctx context.Context, userID string, productID uuid.UUID, delta int) (*model.CartItem, error)

	// SetQuantity replaces the quantity of an existing line.
	SetQuantity(ctx context.Context, id uuid.UUID, userID string, quantity int) (*model.CartItem, error)

	Remove(ctx context.Context, id uuid.UUID, userID string) error
	ClearByUser(ctx context.Context, userID string) (int64, error)
}
