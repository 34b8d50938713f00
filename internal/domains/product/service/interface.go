package service

import (
	"context"

	"github.com/google/uuid"

	"cozastore-backend/internal/domains/product/model"
)

type ServiceInterface interface {
	GetAll(ctx context.Context) ([]model.Product, error)
	GetByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
