// internal/infra/memory/order_store.memory.go
package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
)

func cloneOrder(o *order.Order) *order.Order {
	c := *o
	c.TrackingLogs = append([]order.TrackingEntry(nil), o.TrackingLogs...)
	return &c
}

func (s *Store) CreateOrder(ctx context.Context, o *order.Order) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = cloneOrder(o)
	return nil
}

func (s *Store) GetOrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErr.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (s *Store) ListOrders(ctx context.Context, f order.Filter) ([]*order.Order, int64, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	own := ownership{accounts: s.accounts}
	var result []*order.Order
	for _, o := range s.orders {
		if f.Matches(o, own) {
			result = append(result, cloneOrder(o))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	total := int64(len(result))
	start, end := paginate(f.Page, f.Limit, len(result))
	return result[start:end], total, nil
}

func (s *Store) UpdateOrder(ctx context.Context, o *order.Order) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; !ok {
		return domainErr.ErrOrderNotFound
	}
	s.orders[o.ID] = cloneOrder(o)
	return nil
}

func (s *Store) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return domainErr.ErrOrderNotFound
	}
	delete(s.orders, id)
	return nil
}
