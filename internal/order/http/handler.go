package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/order/domain"
	"github.com/fjod/go_shop/internal/order/service"
)

type OrderHandler struct {
	orders  service.OrderService
	timeout time.Duration
}

func NewOrderHandler(orders service.OrderService, timeout time.Duration) *OrderHandler {
	return &OrderHandler{orders: orders, timeout: timeout}
}

type CreateOrderRequestDTO struct {
	UserID string `json:"user_id"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

// POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.UserID == "" {
		httpx.RespondError(w, http.StatusBadRequest, "missing_user_id", "user_id is required")
		return
	}

	order, err := h.orders.CreateOrder(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			httpx.RespondError(w, http.StatusBadRequest, "cart_empty", "cart empty")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, order)
}

// GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orders, err := h.orders.ListOrders(ctx)
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, nonNil(orders))
}

// GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	order, err := h.orders.GetOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, order)
}

// GET /orders/user/{userId}
func (h *OrderHandler) ListOrdersByUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orders, err := h.orders.ListOrdersByUser(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, nonNil(orders))
}

// GET /orders/status/{status}
func (h *OrderHandler) ListOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status, err := domain.ParseOrderStatus(chi.URLParam(r, "status"))
	if err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_status", err.Error())
		return
	}

	orders, err := h.orders.ListOrdersByStatus(ctx, status)
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, nonNil(orders))
}

// PUT /orders/{id}/status
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_status", err.Error())
		return
	}

	order, err := h.orders.UpdateOrderStatus(ctx, chi.URLParam(r, "id"), status)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, order)
}

// DELETE /orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.orders.DeleteOrder(ctx, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// nonNil keeps empty lists serializing as [], not null.
func nonNil(orders []*domain.Order) []*domain.Order {
	if orders == nil {
		return []*domain.Order{}
	}
	return orders
}
