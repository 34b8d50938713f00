package repository

import (
	"context"

	"github.com/google/uuid"

	"cozastore-backend/internal/domains/category/model"
)

type RepositoryInterface interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
