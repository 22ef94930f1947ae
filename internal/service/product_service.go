package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/saad710/shop-api/internal/model"
	"github.com/saad710/shop-api/internal/repository"
)

type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	Size        *string
	Color       *string
	Categories  []uuid.UUID
	Images      []string
}

type UpdateProductInput struct {
	Title       string
	Description string
	Price       float64
	Size        *string
	Color       *string
	Categories  []uuid.UUID
	// Images replace the stored set only when non-empty.
	Images []string
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*model.Product, error) {
	product := &model.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Size:        input.Size,
		Color:       input.Color,
		Categories:  input.Categories,
		Images:      input.Images,
	}

	newID, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	return s.productRepo.FindByID(ctx, newID)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*model.Product, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	upd := repository.ProductUpdate{
		Title:       &input.Title,
		Description: &input.Description,
		Price:       &input.Price,
		Size:        input.Size,
		Color:       input.Color,
		Categories:  input.Categories,
	}
	if len(input.Images) > 0 {
		upd.Images = input.Images
	}

	if err := s.productRepo.Update(ctx, id, upd); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}
