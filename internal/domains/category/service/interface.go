package service

import (
	"context"

	"github.com/google/uuid"

	"cozastore-backend/internal/domains/category/model"
)

type ServiceInterface interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
