// internal/ports/repository/order_store.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
)

type OrderStore interface {
	CreateOrder(ctx context.Context, o *order.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	// ListOrders returns the page plus the total match count for
	// pagination headers.
	ListOrders(ctx context.Context, f order.Filter) ([]*order.Order, int64, error)
	// UpdateOrder persists the whole order including any tracking log
	// entries appended since the last read.
	UpdateOrder(ctx context.Context, o *order.Order) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
