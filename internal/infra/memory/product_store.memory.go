// internal/infra/memory/product_store.memory.go
package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
)

func cloneProduct(p *product.Product) *product.Product {
	c := *p
	c.Images = append([]product.ImageRef(nil), p.Images...)
	if p.OfferPrice != nil {
		op := *p.OfferPrice
		c.OfferPrice = &op
	}
	return &c
}

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.products {
		if existing.Slug == p.Slug {
			return domainErr.ErrConflict
		}
	}
	s.products[p.ID] = cloneProduct(p)
	return nil
}

func (s *Store) GetProductByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, domainErr.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (s *Store) GetProductBySlug(ctx context.Context, slug string) (*product.Product, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Slug == slug {
			return cloneProduct(p), nil
		}
	}
	return nil, domainErr.ErrProductNotFound
}

func (s *Store) ListProducts(ctx context.Context, f product.Filter) ([]*product.Product, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*product.Product
	for _, p := range s.products {
		if f.Matches(p) {
			result = append(result, cloneProduct(p))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	start, end := paginate(f.Page, f.Limit, len(result))
	return result[start:end], nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *product.Product) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; !ok {
		return domainErr.ErrProductNotFound
	}
	for _, existing := range s.products {
		if existing.ID != p.ID && existing.Slug == p.Slug {
			return domainErr.ErrConflict
		}
	}
	s.products[p.ID] = cloneProduct(p)
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return domainErr.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}
