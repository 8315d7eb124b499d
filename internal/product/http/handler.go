package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/product/domain"
	"github.com/fjod/go_shop/internal/product/service"
)

type ProductHandler struct {
	products service.ProductService
	timeout  time.Duration
}

func NewProductHandler(products service.ProductService, timeout time.Duration) *ProductHandler {
	return &ProductHandler{products: products, timeout: timeout}
}

type ProductRequestDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
}

func mapValidationError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		httpx.RespondError(w, http.StatusBadRequest, "name_required", "name is required")
	case errors.Is(err, service.ErrNegativePrice):
		httpx.RespondError(w, http.StatusBadRequest, "invalid_price", "price must not be negative")
	case errors.Is(err, service.ErrNegativeStock):
		httpx.RespondError(w, http.StatusBadRequest, "invalid_stock", "stock must not be negative")
	default:
		return false
	}
	return true
}

// POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, err := h.products.CreateProduct(ctx, &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		if mapValidationError(w, err) {
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, product)
}

// GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}

	httpx.RespondJSON(w, http.StatusOK, products)
}

// GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	product, err := h.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, product)
}

// PUT /products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, err := h.products.UpdateProduct(ctx, &domain.Product{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		if mapValidationError(w, err) {
			return
		}
		if errors.Is(err, service.ErrProductNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, product)
}

// DELETE /products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.products.DeleteProduct(ctx, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
