package repository

import (
	"context"
	"errors"

	"github.com/fjod/go_shop/internal/cart/domain"
)

var ErrCartNotFound = errors.New("cart not found")

type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	UpsertCart(ctx context.Context, cart *domain.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}
