// internal/app/commands/create_product.commands.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type CreateProductCmd struct {
	products repository.ProductStore
	recorder *Recorder
}

func NewCreateProductCmd(products repository.ProductStore, recorder *Recorder) *CreateProductCmd {
	return &CreateProductCmd{products: products, recorder: recorder}
}

type CreateProductParams struct {
	Caller policy.Caller
	product.NewParams
}

// Handle adds a catalog item. Admin only. The slug is derived from the
// name and must not collide with an existing product.
func (cmd *CreateProductCmd) Handle(ctx context.Context, p CreateProductParams) (*product.Product, error) {
	if err := policy.Authorize(p.Caller, role.EntityProduct, role.OpCreate); err != nil {
		return nil, err
	}

	existing, err := cmd.products.GetProductBySlug(ctx, slug.Make(p.Name))
	if err != nil && !errors.Is(err, domainErr.ErrProductNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainErr.ErrConflict
	}

	prod, err := product.New(p.NewParams, p.Caller.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := cmd.products.CreateProduct(ctx, prod); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	actor := p.Caller.ID
	if err := cmd.recorder.Record(ctx, audit.New(&actor, audit.ActionProductCreated, &prod.ID, map[string]any{
		"slug":     prod.Slug,
		"category": prod.Category,
	})); err != nil {
		return nil, err
	}
	return prod, nil
}
