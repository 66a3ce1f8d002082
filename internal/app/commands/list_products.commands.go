// internal/app/commands/list_products.commands.go
package commands

import (
	"context"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type ListProductsCmd struct {
	products repository.ProductStore
}

func NewListProductsCmd(products repository.ProductStore) *ListProductsCmd {
	return &ListProductsCmd{products: products}
}

type ListProductsParams struct {
	Caller policy.Caller
	Filter product.Filter
}

// Handle lists catalog items. The catalog is visible to every operating
// role, so the filter passes through unchanged.
func (cmd *ListProductsCmd) Handle(ctx context.Context, p ListProductsParams) ([]*product.Product, error) {
	if err := policy.Authorize(p.Caller, role.EntityProduct, role.OpList); err != nil {
		return nil, err
	}
	f, err := policy.ResolveProductListScope(p.Caller, p.Filter)
	if err != nil {
		return nil, err
	}
	return cmd.products.ListProducts(ctx, f)
}
