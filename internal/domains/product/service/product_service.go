package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	categorymodel "cozastore-backend/internal/domains/category/model"
	categoryrepo "cozastore-backend/internal/domains/category/repository"
	"cozastore-backend/internal/domains/product/model"
	repo "cozastore-backend/internal/domains/product/repository"
)

type ProductService struct {
	repository   repo.RepositoryInterface
	categoryRepo categoryrepo.RepositoryInterface
}

func NewProductService(r repo.RepositoryInterface, cr categoryrepo.RepositoryInterface) ServiceInterface {
	return &ProductService{repository: r, categoryRepo: cr}
}

func (s *ProductService) GetAll(ctx context.Context) ([]model.Product, error) {
	return s.repository.GetAllActive(ctx)
}

func (s *ProductService) GetByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Product, error) {
	return s.repository.GetByCategory(ctx, categoryID)
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		if err == categorymodel.ErrCategoryNotFound {
			return nil, categorymodel.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	product := &model.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
		CategoryID:    req.CategoryID,
	}

	if err := s.repository.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req model.UpdateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	product.ImageURL = req.ImageURL
	product.CategoryID = req.CategoryID

	if err := s.repository.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repository.SoftDelete(ctx, id)
}
