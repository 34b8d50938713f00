package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cozastore-backend/internal/domains/cart/model"
	repo "cozastore-backend/internal/domains/cart/repository"
	productmodel "cozastore-backend/internal/domains/product/model"
	"cozastore-backend/pkg/logger"
)

type CartService struct {
	repository repo.RepositoryInterface
	products   ProductReader
}

func NewCartService(r repo.RepositoryInterface, products ProductReader) ServiceInterface {
	return &CartService{repository: r, products: products}
}

// GetCart prices every line against the current catalog. Lines whose
// product has vanished or been deactivated are omitted from the view,
// not deleted; they reappear if the product comes back.
func (s *CartService) GetCart(ctx context.Context, userID string) (*model.CartSnapshot, error) {
	items, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}

	snapshot := &model.CartSnapshot{
		Items: []model.CartLine{},
		Total: decimal.Zero,
	}

	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			// An unresolvable line is left out of the view instead of
			// failing the whole snapshot; it resurfaces once the
			// catalog answers for it again.
			logger.Debug("skipping unresolvable cart line", map[string]interface{}{
				"user_id":    userID,
				"product_id": item.ProductID.String(),
				"reason":     err.Error(),
			})
			continue
		}
		if !product.IsActive {
			logger.Debug("skipping cart line for inactive product", map[string]interface{}{
				"user_id":    userID,
				"product_id": item.ProductID.String(),
			})
			continue
		}

		subTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		snapshot.Items = append(snapshot.Items, model.CartLine{
			ID:              item.ID,
			ProductID:       product.ID,
			ProductName:     product.Name,
			ProductPrice:    product.Price,
			ProductImageURL: product.ImageURL,
			Quantity:        item.Quantity,
			SubTotal:        subTotal,
		})
		snapshot.Total = snapshot.Total.Add(subTotal)
	}

	return snapshot, nil
}

// AddToCart is cumulative: adding a product already in the cart grows
// the existing line by the requested quantity.
func (s *CartService) AddToCart(ctx context.Context, userID string, req model.AddToCartRequest) (*model.CartItem, error) {
	if req.Quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productmodel.ErrProductNotFound) {
			return nil, model.ErrProductNotFound
		}
		return nil, storeError(err)
	}
	if !product.IsActive {
		return nil, model.ErrProductNotFound
	}

	item, err := s.repository.IncrementQuantity(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, storeError(err)
	}

	return item, nil
}

// UpdateQuantity replaces the line's quantity outright.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, itemID uuid.UUID, req model.UpdateQuantityRequest) (*model.CartItem, error) {
	if req.Quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.repository.SetQuantity(ctx, itemID, userID, req.Quantity)
	if err != nil {
		if errors.Is(err, model.ErrLineNotFound) {
			return nil, model.ErrLineNotFound
		}
		return nil, storeError(err)
	}

	return item, nil
}

func (s *CartService) Remove(ctx context.Context, userID string, itemID uuid.UUID) error {
	if err := s.repository.Remove(ctx, itemID, userID); err != nil {
		if errors.Is(err, model.ErrLineNotFound) {
			return model.ErrLineNotFound
		}
		return storeError(err)
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	if _, err := s.repository.ClearByUser(ctx, userID); err != nil {
		return storeError(err)
	}
	return nil
}

func storeError(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
}
