package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cozastore-backend/internal/domains/category/model"
	repo "cozastore-backend/internal/domains/category/repository"
)

type CategoryService struct {
	repository repo.RepositoryInterface
}

func NewCategoryService(r repo.RepositoryInterface) ServiceInterface {
	return &CategoryService{repository: r}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	return s.repository.GetAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repository.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req model.UpdateCategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.repository.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repository.SoftDelete(ctx, id)
}
