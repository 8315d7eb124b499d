package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/payment/domain"
	"github.com/fjod/go_shop/internal/payment/service"
)

type serviceMock struct {
	payment  *domain.Payment
	payments []*domain.Payment
	err      error
}

func (s serviceMock) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	return s.payment, s.err
}

func (s serviceMock) RefundPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return s.payment, s.err
}

func (s serviceMock) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return s.payment, s.err
}

func (s serviceMock) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	return s.payments, s.err
}

func (s serviceMock) ListPaymentsByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error) {
	return s.payments, s.err
}

func (s serviceMock) ListPaymentsByUser(ctx context.Context, userID string) ([]*domain.Payment, error) {
	return s.payments, s.err
}

func (s serviceMock) ListPaymentsByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error) {
	return s.payments, s.err
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreatePayment_Success(t *testing.T) {
	mock := serviceMock{payment: &domain.Payment{
		ID:      "payment-1",
		OrderID: "order-1",
		Amount:  26.0,
		Status:  domain.PaymentStatusCompleted,
	}}
	handler := NewPaymentHandler(mock, 5*time.Second)

	body := `{"order_id":"order-1","user_id":"user-1","amount":26.0,"method":"Credit Card"}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/payments", bytes.NewBufferString(body))

	handler.CreatePayment(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}

	var response domain.Payment
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != domain.PaymentStatusCompleted {
		t.Errorf("Expected status Completed, got %q", response.Status)
	}
}

func TestCreatePayment_InvalidMethod(t *testing.T) {
	handler := NewPaymentHandler(serviceMock{}, 5*time.Second)

	body := `{"order_id":"order-1","amount":26.0,"method":"Bitcoin"}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/payments", bytes.NewBufferString(body))

	handler.CreatePayment(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestCreatePayment_MissingOrderID(t *testing.T) {
	handler := NewPaymentHandler(serviceMock{}, 5*time.Second)

	body := `{"amount":26.0,"method":"PayPal"}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/payments", bytes.NewBufferString(body))

	handler.CreatePayment(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestCreatePayment_InvalidAmount(t *testing.T) {
	handler := NewPaymentHandler(serviceMock{err: service.ErrInvalidAmount}, 5*time.Second)

	body := `{"order_id":"order-1","amount":-5,"method":"PayPal"}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/payments", bytes.NewBufferString(body))

	handler.CreatePayment(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response httpx.ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Code != "invalid_amount" {
		t.Errorf("Expected code invalid_amount, got %q", response.Code)
	}
}

func TestRefundPayment_Success(t *testing.T) {
	mock := serviceMock{payment: &domain.Payment{ID: "payment-1", Status: domain.PaymentStatusRefunded}}
	handler := NewPaymentHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("PUT", "/payments/payment-1/refund", nil)
	request = withURLParam(request, "id", "payment-1")

	handler.RefundPayment(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
}

func TestRefundPayment_NotCompleted(t *testing.T) {
	handler := NewPaymentHandler(serviceMock{err: service.ErrCannotRefund}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("PUT", "/payments/payment-1/refund", nil)
	request = withURLParam(request, "id", "payment-1")

	handler.RefundPayment(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response httpx.ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Code != "cannot_refund" {
		t.Errorf("Expected code cannot_refund, got %q", response.Code)
	}
}

func TestRefundPayment_NotFound(t *testing.T) {
	handler := NewPaymentHandler(serviceMock{err: service.ErrPaymentNotFound}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("PUT", "/payments/missing/refund", nil)
	request = withURLParam(request, "id", "missing")

	handler.RefundPayment(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestListPayments_EmptyIsJSONArray(t *testing.T) {
	handler := NewPaymentHandler(serviceMock{payments: nil}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/payments", nil)

	handler.ListPayments(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if body := bytes.TrimSpace(recorder.Body.Bytes()); string(body) != "[]" {
		t.Errorf("Expected empty JSON array, got %s", body)
	}
}

func TestListPaymentsByStatus_InvalidStatus(t *testing.T) {
	handler := NewPaymentHandler(serviceMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/payments/status/Declined", nil)
	request = withURLParam(request, "status", "Declined")

	handler.ListPaymentsByStatus(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}
