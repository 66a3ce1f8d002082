// internal/app/commands/get_product.commands.go
package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type GetProductCmd struct {
	products repository.ProductStore
}

func NewGetProductCmd(products repository.ProductStore) *GetProductCmd {
	return &GetProductCmd{products: products}
}

type GetProductParams struct {
	Caller    policy.Caller
	ProductID uuid.UUID
	// Slug fetches by slug when ProductID is zero.
	Slug string
}

func (cmd *GetProductCmd) Handle(ctx context.Context, p GetProductParams) (*product.Product, error) {
	if err := policy.Authorize(p.Caller, role.EntityProduct, role.OpGet); err != nil {
		return nil, err
	}
	if p.ProductID != uuid.Nil {
		return cmd.products.GetProductByID(ctx, p.ProductID)
	}
	return cmd.products.GetProductBySlug(ctx, p.Slug)
}
