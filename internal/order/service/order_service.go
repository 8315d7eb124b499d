package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fjod/go_shop/internal/order/client"
	"github.com/fjod/go_shop/internal/order/domain"
	"github.com/fjod/go_shop/internal/order/repository"
)

// CartGateway is the order service's view of the cart service.
type CartGateway interface {
	GetCart(ctx context.Context, userID string) (*domain.CartSnapshot, error)
	DeleteCart(ctx context.Context, userID string) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID string) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type OrderServiceImpl struct {
	repo  repository.OrderRepository
	carts CartGateway
	log   *slog.Logger
}

func NewOrderService(repo repository.OrderRepository, carts CartGateway, log *slog.Logger) *OrderServiceImpl {
	return &OrderServiceImpl{repo: repo, carts: carts, log: log}
}

// CreateOrder consumes the user's cart: read it, persist the order,
// then delete the cart. The three steps are independent calls with no
// transaction around them. A cart-deletion failure after the order
// commit is logged and swallowed, which can leave a stale cart behind
// alongside the committed order.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, userID string) (*domain.Order, error) {
	snapshot, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, client.ErrCartNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(snapshot.Items))
	for _, it := range snapshot.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Items:       items,
		TotalAmount: snapshot.Total(),
		Status:      domain.OrderStatusPending,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		// Order is already committed; deleting the cart is best-effort.
		s.log.Warn("cart deletion failed after order creation",
			"order_id", order.ID, "user_id", userID, "error", err)
	}

	s.log.Info("order created", "order_id", order.ID, "user_id", userID,
		"total_amount", order.TotalAmount)
	return order, nil
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *OrderServiceImpl) ListOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.repo.ListOrdersByUserID(ctx, userID)
}

func (s *OrderServiceImpl) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	return s.repo.ListOrdersByStatus(ctx, status)
}

// UpdateOrderStatus accepts any parsed status; transitions are not
// guarded, so Pending can jump straight to Delivered.
func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if err := s.repo.UpdateOrderStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.GetOrder(ctx, id)
}

func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, id string) error {
	err := s.repo.DeleteOrder(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return ErrOrderNotFound
	}
	return err
}
