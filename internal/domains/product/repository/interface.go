package repository

import (
	"context"

	"github.com/google/uuid"

	"cozastore-backend/internal/domains/product/model"
)

type RepositoryInterface interface {
	GetAllActive(ctx context.Context) ([]model.Product, error)
	GetByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
