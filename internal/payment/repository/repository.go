package repository

import (
	"context"
	"errors"

	"github.com/fjod/go_shop/internal/payment/domain"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) error
	GetPaymentByID(ctx context.Context, id string) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]*domain.Payment, error)
	ListPaymentsByOrderID(ctx context.Context, orderID string) ([]*domain.Payment, error)
	ListPaymentsByUserID(ctx context.Context, userID string) ([]*domain.Payment, error)
	ListPaymentsByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}
