package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/payment/domain"
	"github.com/fjod/go_shop/internal/payment/service"
)

type PaymentHandler struct {
	payments service.PaymentService
	timeout  time.Duration
}

func NewPaymentHandler(payments service.PaymentService, timeout time.Duration) *PaymentHandler {
	return &PaymentHandler{payments: payments, timeout: timeout}
}

type CreatePaymentRequestDTO struct {
	OrderID string  `json:"order_id"`
	UserID  string  `json:"user_id"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
}

// POST /payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.OrderID == "" {
		httpx.RespondError(w, http.StatusBadRequest, "missing_order_id", "order_id is required")
		return
	}

	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_method", err.Error())
		return
	}

	payment, err := h.payments.CreatePayment(ctx, &domain.Payment{
		OrderID: req.OrderID,
		UserID:  req.UserID,
		Amount:  req.Amount,
		Method:  method,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			httpx.RespondError(w, http.StatusBadRequest, "invalid_amount", "amount must be positive")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, payment)
}

// PUT /payments/{id}/refund
func (h *PaymentHandler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	payment, err := h.payments.RefundPayment(ctx, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			httpx.RespondError(w, http.StatusNotFound, "not_found", "payment not found")
		case errors.Is(err, service.ErrCannotRefund):
			httpx.RespondError(w, http.StatusBadRequest, "cannot_refund", "cannot refund")
		default:
			httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}

	httpx.RespondJSON(w, http.StatusOK, payment)
}

// GET /payments
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	payments, err := h.payments.ListPayments(ctx)
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, nonNil(payments))
}

// GET /payments/{id}
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	payment, err := h.payments.GetPayment(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "not_found", "payment not found")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, payment)
}

// GET /payments/order/{orderId}
func (h *PaymentHandler) ListPaymentsByOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	payments, err := h.payments.ListPaymentsByOrder(ctx, chi.URLParam(r, "orderId"))
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, nonNil(payments))
}

// GET /payments/user/{userId}
func (h *PaymentHandler) ListPaymentsByUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	payments, err := h.payments.ListPaymentsByUser(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, nonNil(payments))
}

// GET /payments/status/{status}
func (h *PaymentHandler) ListPaymentsByStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status, err := domain.ParsePaymentStatus(chi.URLParam(r, "status"))
	if err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_status", err.Error())
		return
	}

	payments, err := h.payments.ListPaymentsByStatus(ctx, status)
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, nonNil(payments))
}

func nonNil(payments []*domain.Payment) []*domain.Payment {
	if payments == nil {
		return []*domain.Payment{}
	}
	return payments
}
