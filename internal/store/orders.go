package store

import (
	"context"

	"shopzone/internal/model"
)

// Orders exposes the order collection. Orders are append-only apart
// from status changes and item attachment; they are never deleted.
type Orders struct {
	store *Store
}

func (o *Orders) readAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if _, err := o.store.readBlob(ctx, keyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Create appends a new order with a generated id, timestamp and an
// empty item sequence. TotalAmount and status come from the caller
// unverified.
func (o *Orders) Create(ctx context.Context, params model.OrderParams) (*model.Order, error) {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()

	orders, err := o.readAll(ctx)
	if err != nil {
		return nil, err
	}

	order := model.Order{
		ID:              generateID(),
		UserID:          params.UserID,
		TotalAmount:     params.TotalAmount,
		Status:          params.Status,
		ShippingAddress: params.ShippingAddress,
		CreatedAt:       now(),
		OrderItems:      []model.OrderItem{},
	}

	orders = append(orders, order)
	if err := o.store.writeBlob(ctx, keyOrders, orders); err != nil {
		return nil, err
	}

	o.store.logger.Debug().Str("order_id", order.ID).Msg("order created")
	return &order, nil
}

// AddItems replaces the order's item sequence wholesale with freshly
// id'd, timestamped copies of the given items. Calling it twice
// discards the first set. Fails with ErrOrderNotFound when the order
// id does not resolve.
func (o *Orders) AddItems(ctx context.Context, orderID string, items []model.OrderItemParams) ([]model.OrderItem, error) {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()

	orders, err := o.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}

		orderItems := make([]model.OrderItem, len(items))
		for j, item := range items {
			orderItems[j] = model.OrderItem{
				ID:        generateID(),
				OrderID:   orderID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
				CreatedAt: now(),
			}
		}
		orders[i].OrderItems = orderItems

		if err := o.store.writeBlob(ctx, keyOrders, orders); err != nil {
			return nil, err
		}
		return orderItems, nil
	}

	return nil, model.ErrOrderNotFound
}

// All returns every order in storage order.
func (o *Orders) All(ctx context.Context) ([]model.Order, error) {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()

	return o.readAll(ctx)
}

// ByID returns the order with the given id, or nil if absent.
func (o *Orders) ByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := o.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

// ByUser returns the user's orders in storage order.
func (o *Orders) ByUser(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := o.All(ctx)
	if err != nil {
		return nil, err
	}

	out := []model.Order{}
	for _, order := range orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

// UpdateStatus sets the order's status in place. Any status string is
// accepted; no transition is validated. An unknown order id is a
// silent no-op.
func (o *Orders) UpdateStatus(ctx context.Context, orderID, status string) error {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()

	orders, err := o.readAll(ctx)
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			return o.store.writeBlob(ctx, keyOrders, orders)
		}
	}
	return nil
}
