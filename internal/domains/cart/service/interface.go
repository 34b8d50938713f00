package service

import (
	"context"

	"github.com/google/uuid"

	"cozastore-backend/internal/domains/cart/model"
	productmodel "cozastore-backend/internal/domains/product/model"
)

// ProductReader is the slice of the catalog the cart needs: resolving a
// product id to its current row for pricing and availability checks.
type ProductReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*productmodel.Product, error)
}

type ServiceInterface interface {
	GetCart(ctx context.Context, userID string) (*model.CartSnapshot, error)
	AddToCart(ctx context.Context, userID string, req model.AddToCartRequest) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, userID string, itemID uuid.UUID, req model.UpdateQuantityRequest) (*model.CartItem, error)
	Remove(ctx context.Context, userID string, itemID uuid.UUID) error
	Clear(ctx context.Context, userID string) error
}
