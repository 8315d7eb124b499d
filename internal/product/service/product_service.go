package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fjod/go_shop/internal/product/domain"
	"github.com/fjod/go_shop/internal/product/repository"
)

type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductServiceImpl struct {
	repo repository.ProductRepository
	log  *slog.Logger
}

func NewProductService(repo repository.ProductRepository, log *slog.Logger) *ProductServiceImpl {
	return &ProductServiceImpl{repo: repo, log: log}
}

func validate(p *domain.Product) error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

func (s *ProductServiceImpl) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := validate(product); err != nil {
		return nil, err
	}

	product.ID = uuid.NewString()
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("product created", "product_id", product.ID)
	return product, nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductServiceImpl) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.GetAllProducts(ctx)
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := validate(product); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	err := s.repo.DeleteProduct(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return err
}
