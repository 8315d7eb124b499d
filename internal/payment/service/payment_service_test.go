package service

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/payment/domain"
	"github.com/fjod/go_shop/internal/payment/repository"
)

type mockRepository struct {
	payments map[string]*domain.Payment
}

func newMockRepository() *mockRepository {
	return &mockRepository{payments: map[string]*domain.Payment{}}
}

func (m *mockRepository) CreatePayment(_ context.Context, p *domain.Payment) error {
	cp := *p
	m.payments[p.ID] = &cp
	return nil
}

func (m *mockRepository) GetPaymentByID(_ context.Context, id string) (*domain.Payment, error) {
	p, ok := m.payments[id]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepository) ListPayments(context.Context) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range m.payments {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepository) ListPaymentsByOrderID(_ context.Context, orderID string) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range m.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepository) ListPaymentsByUserID(_ context.Context, userID string) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range m.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepository) ListPaymentsByStatus(_ context.Context, status domain.PaymentStatus) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range m.payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepository) UpdatePaymentStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	p, ok := m.payments[id]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	p.Status = status
	return nil
}

type mockOrderGateway struct {
	calls  []string
	setErr error
}

func (m *mockOrderGateway) SetOrderStatus(_ context.Context, orderID, status string) error {
	m.calls = append(m.calls, fmt.Sprintf("%s=%s", orderID, status))
	return m.setErr
}

type alwaysFail struct{}

func (alwaysFail) Process(*domain.Payment) domain.PaymentStatus {
	return domain.PaymentStatusFailed
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCreatePayment_Completed_MovesOrderToProcessing(t *testing.T) {
	repo := newMockRepository()
	orders := &mockOrderGateway{}

	sut := NewPaymentService(repo, orders, AlwaysApprove{}, testLogger())
	payment, err := sut.CreatePayment(context.Background(), &domain.Payment{
		OrderID: "order-1",
		UserID:  "user-1",
		Amount:  99.90,
		Method:  domain.MethodCreditCard,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	assert.NotEmpty(t, payment.ID)
	assert.Contains(t, payment.TransactionRef, "TXN-")
	require.Len(t, orders.calls, 1)
	assert.Equal(t, "order-1=Processing", orders.calls[0])
}

func TestCreatePayment_Failed_OrderUntouched(t *testing.T) {
	repo := newMockRepository()
	orders := &mockOrderGateway{}

	sut := NewPaymentService(repo, orders, alwaysFail{}, testLogger())
	payment, err := sut.CreatePayment(context.Background(), &domain.Payment{
		OrderID: "order-1",
		UserID:  "user-1",
		Amount:  10,
		Method:  domain.MethodPayPal,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
	assert.Empty(t, orders.calls)
}

func TestCreatePayment_InvalidAmount(t *testing.T) {
	sut := NewPaymentService(newMockRepository(), &mockOrderGateway{}, AlwaysApprove{}, testLogger())

	_, err := sut.CreatePayment(context.Background(), &domain.Payment{
		OrderID: "order-1",
		Amount:  0,
		Method:  domain.MethodDebitCard,
	})
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreatePayment_OrderServiceDown(t *testing.T) {
	repo := newMockRepository()
	orders := &mockOrderGateway{setErr: fmt.Errorf("order service unavailable")}

	sut := NewPaymentService(repo, orders, AlwaysApprove{}, testLogger())
	_, err := sut.CreatePayment(context.Background(), &domain.Payment{
		OrderID: "order-1",
		Amount:  25,
		Method:  domain.MethodBankTransfer,
	})

	// The downstream failure surfaces; the payment record itself stays
	// Completed in the store.
	require.ErrorContains(t, err, "update order status")
	completed, listErr := repo.ListPaymentsByStatus(context.Background(), domain.PaymentStatusCompleted)
	require.NoError(t, listErr)
	assert.Len(t, completed, 1)
}

func TestRefundPayment_Completed(t *testing.T) {
	repo := newMockRepository()
	repo.payments["pay-1"] = &domain.Payment{
		ID:      "pay-1",
		OrderID: "order-1",
		Status:  domain.PaymentStatusCompleted,
	}
	orders := &mockOrderGateway{}

	sut := NewPaymentService(repo, orders, AlwaysApprove{}, testLogger())
	payment, err := sut.RefundPayment(context.Background(), "pay-1")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusRefunded, payment.Status)
	// Refund never reaches back into the order service.
	assert.Empty(t, orders.calls)
}

func TestRefundPayment_NotCompleted(t *testing.T) {
	for _, status := range []domain.PaymentStatus{
		domain.PaymentStatusPending,
		domain.PaymentStatusFailed,
		domain.PaymentStatusRefunded,
	} {
		t.Run(status.String(), func(t *testing.T) {
			repo := newMockRepository()
			repo.payments["pay-1"] = &domain.Payment{ID: "pay-1", Status: status}

			sut := NewPaymentService(repo, &mockOrderGateway{}, AlwaysApprove{}, testLogger())
			_, err := sut.RefundPayment(context.Background(), "pay-1")

			require.ErrorIs(t, err, ErrCannotRefund)
			assert.Equal(t, status, repo.payments["pay-1"].Status)
		})
	}
}

func TestRefundPayment_NotFound(t *testing.T) {
	sut := NewPaymentService(newMockRepository(), &mockOrderGateway{}, AlwaysApprove{}, testLogger())
	_, err := sut.RefundPayment(context.Background(), "missing")
	require.ErrorIs(t, err, ErrPaymentNotFound)
}
