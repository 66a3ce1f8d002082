// internal/app/commands/delete_product.commands.go
package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/assets"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type DeleteProductCmd struct {
	products repository.ProductStore
	assets   assets.AssetStore
	recorder *Recorder
}

func NewDeleteProductCmd(products repository.ProductStore, assets assets.AssetStore, recorder *Recorder) *DeleteProductCmd {
	return &DeleteProductCmd{products: products, assets: assets, recorder: recorder}
}

type DeleteProductParams struct {
	Caller    policy.Caller
	ProductID uuid.UUID
}

// Handle removes a catalog item and releases its own image assets.
// Admin only. The shared default image is never released. Existing
// orders keep their price snapshot and dangling product reference.
func (cmd *DeleteProductCmd) Handle(ctx context.Context, p DeleteProductParams) error {
	if err := policy.Authorize(p.Caller, role.EntityProduct, role.OpDelete); err != nil {
		return err
	}
	prod, err := cmd.products.GetProductByID(ctx, p.ProductID)
	if err != nil {
		return err
	}
	if err := cmd.products.DeleteProduct(ctx, prod.ID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if cmd.assets != nil {
		for _, id := range prod.ReleasableAssets() {
			if err := cmd.assets.Release(ctx, id); err != nil {
				log.Printf("asset release failed for %s: %v", id, err)
			}
		}
	}

	actor := p.Caller.ID
	return cmd.recorder.Record(ctx, audit.New(&actor, audit.ActionProductDeleted, &prod.ID, map[string]any{
		"slug": prod.Slug,
	}))
}
