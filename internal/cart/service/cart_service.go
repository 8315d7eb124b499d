package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fjod/go_shop/internal/cart/domain"
	"github.com/fjod/go_shop/internal/cart/repository"
)

type CartService interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	UpsertCart(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	DeleteCart(ctx context.Context, userID string) error
}

type CartServiceImpl struct {
	repo repository.CartRepository
	log  *slog.Logger
}

func NewCartService(repo repository.CartRepository, log *slog.Logger) *CartServiceImpl {
	return &CartServiceImpl{repo: repo, log: log}
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

// UpsertCart replaces the whole item list; there is no per-item merge and
// no stock check against the product catalog.
func (s *CartServiceImpl) UpsertCart(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	for _, item := range cart.Items {
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: product_id is required", ErrInvalidItem)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidItem)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidItem)
		}
	}

	if err := s.repo.UpsertCart(ctx, cart); err != nil {
		return nil, err
	}

	stored, err := s.repo.GetCart(ctx, cart.UserID)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// DeleteCart is idempotent: a missing cart is not an error. The order
// service relies on this when it clears a cart after checkout.
func (s *CartServiceImpl) DeleteCart(ctx context.Context, userID string) error {
	err := s.repo.DeleteCart(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return err
	}
	if errors.Is(err, repository.ErrCartNotFound) {
		s.log.Debug("delete of absent cart", "user_id", userID)
	}
	return nil
}
