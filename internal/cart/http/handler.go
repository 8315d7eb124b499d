package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_shop/internal/cart/domain"
	"github.com/fjod/go_shop/internal/cart/service"
	"github.com/fjod/go_shop/internal/httpx"
)

type CartHandler struct {
	carts   service.CartService
	timeout time.Duration
}

func NewCartHandler(carts service.CartService, timeout time.Duration) *CartHandler {
	return &CartHandler{carts: carts, timeout: timeout}
}

type CartItemDTO struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type UpsertCartRequestDTO struct {
	UserID string        `json:"user_id"`
	Items  []CartItemDTO `json:"items"`
}

// GET /cart/{userId}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := chi.URLParam(r, "userId")
	cart, err := h.carts.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "not_found", "cart not found")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, cart)
}

// POST /cart
func (h *CartHandler) UpsertCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req UpsertCartRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.UserID == "" {
		httpx.RespondError(w, http.StatusBadRequest, "missing_user_id", "user_id is required")
		return
	}

	items := make([]domain.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	cart, err := h.carts.UpsertCart(ctx, &domain.Cart{UserID: req.UserID, Items: items})
	if err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			httpx.RespondError(w, http.StatusBadRequest, "invalid_item", err.Error())
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, cart)
}

// DELETE /cart/{userId}
func (h *CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.carts.DeleteCart(ctx, chi.URLParam(r, "userId")); err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
