// internal/ports/repository/product_store.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
)

type ProductStore interface {
	CreateProduct(ctx context.Context, p *product.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*product.Product, error)
	ListProducts(ctx context.Context, f product.Filter) ([]*product.Product, error)
	UpdateProduct(ctx context.Context, p *product.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
