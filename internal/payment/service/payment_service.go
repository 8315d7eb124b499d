package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fjod/go_shop/internal/payment/domain"
	"github.com/fjod/go_shop/internal/payment/repository"
)

// OrderGateway is the payment service's view of the order service.
type OrderGateway interface {
	SetOrderStatus(ctx context.Context, orderID, status string) error
}

type PaymentService interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	RefundPayment(ctx context.Context, id string) (*domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]*domain.Payment, error)
	ListPaymentsByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID string) ([]*domain.Payment, error)
	ListPaymentsByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error)
}

type PaymentServiceImpl struct {
	repo    repository.PaymentRepository
	orders  OrderGateway
	outcome Outcome
	log     *slog.Logger
}

func NewPaymentService(repo repository.PaymentRepository, orders OrderGateway, outcome Outcome, log *slog.Logger) *PaymentServiceImpl {
	return &PaymentServiceImpl{repo: repo, orders: orders, outcome: outcome, log: log}
}

// CreatePayment persists the attempt as Pending, runs the simulated
// processor, records the final status and, when the charge completed,
// moves the referenced order to Processing. The amount is taken as given;
// it is not reconciled against the order's total.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	payment.ID = uuid.NewString()
	payment.Status = domain.PaymentStatusPending
	payment.TransactionRef = fmt.Sprintf("TXN-%s", uuid.NewString())

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	status := s.outcome.Process(payment)
	if err := s.repo.UpdatePaymentStatus(ctx, payment.ID, status); err != nil {
		return nil, fmt.Errorf("record payment outcome: %w", err)
	}
	payment.Status = status

	if status == domain.PaymentStatusCompleted {
		if err := s.orders.SetOrderStatus(ctx, payment.OrderID, "Processing"); err != nil {
			return nil, fmt.Errorf("update order status: %w", err)
		}
	}

	s.log.Info("payment processed", "payment_id", payment.ID,
		"order_id", payment.OrderID, "status", payment.Status)
	return payment, nil
}

// RefundPayment requires the payment to be Completed. It does not touch
// the order's status and does not restock anything.
func (s *PaymentServiceImpl) RefundPayment(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if payment.Status != domain.PaymentStatusCompleted {
		return nil, ErrCannotRefund
	}

	if err := s.repo.UpdatePaymentStatus(ctx, id, domain.PaymentStatusRefunded); err != nil {
		return nil, err
	}
	payment.Status = domain.PaymentStatusRefunded

	s.log.Info("payment refunded", "payment_id", id, "order_id", payment.OrderID)
	return payment, nil
}

func (s *PaymentServiceImpl) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (s *PaymentServiceImpl) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	return s.repo.ListPayments(ctx)
}

func (s *PaymentServiceImpl) ListPaymentsByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error) {
	return s.repo.ListPaymentsByOrderID(ctx, orderID)
}

func (s *PaymentServiceImpl) ListPaymentsByUser(ctx context.Context, userID string) ([]*domain.Payment, error) {
	return s.repo.ListPaymentsByUserID(ctx, userID)
}

func (s *PaymentServiceImpl) ListPaymentsByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error) {
	return s.repo.ListPaymentsByStatus(ctx, status)
}
