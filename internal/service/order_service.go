package service

import (
	"context"

	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/repository"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/validation"
)

// OrderService owns the order aggregate: the order row and its item set are
// always mutated and read as one unit.
type OrderService struct {
	orders *repository.OrderRepository
	gate   *AuthzGate
}

// NewOrderService returns the order service
func NewOrderService(orders *repository.OrderRepository, gate *AuthzGate) *OrderService {
	return &OrderService{orders: orders, gate: gate}
}

// CreateOrder creates a storefront order with its items. The caller is
// anonymous; only the store has to exist.
func (s *OrderService) CreateOrder(ctx context.Context, storeID uint, in *validation.OrderInput) (*model.Order, error) {
	if _, err := s.gate.StoreExists(ctx, storeID); err != nil {
		return nil, err
	}

	order := &model.Order{
		StoreID:       storeID,
		Phone:         in.Phone,
		Address:       in.Address,
		CustomerEmail: in.CustomerEmail,
		IsPaid:        in.IsPaid,
	}
	if err := s.orders.Create(ctx, order, toOrderItems(in.Items)); err != nil {
		return nil, err
	}
	return s.orders.Get(ctx, storeID, order.ID)
}

// UpdateOrder applies the payment flag flip and/or the full item replacement
// atomically and returns the re-read aggregate. Supplying an empty item list
// is the valid "clear items" state. An item referencing a nonexistent product
// aborts the whole update.
func (s *OrderService) UpdateOrder(ctx context.Context, storeID, orderID uint, in *validation.OrderUpdateInput) (*model.Order, error) {
	if _, err := s.gate.StoreExists(ctx, storeID); err != nil {
		return nil, err
	}

	var items *[]model.OrderItem
	if in.Items != nil {
		converted := toOrderItems(*in.Items)
		items = &converted
	}
	return s.orders.UpdateAggregate(ctx, storeID, orderID, in.IsPaid, items)
}

func toOrderItems(inputs []validation.OrderItemInput) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, model.OrderItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		})
	}
	return items
}
