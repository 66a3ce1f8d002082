// internal/app/commands/update_product.commands.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/assets"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type UpdateProductCmd struct {
	products repository.ProductStore
	assets   assets.AssetStore
	recorder *Recorder
}

func NewUpdateProductCmd(products repository.ProductStore, assets assets.AssetStore, recorder *Recorder) *UpdateProductCmd {
	return &UpdateProductCmd{products: products, assets: assets, recorder: recorder}
}

// UpdateProductParams is a partial update; nil fields stay untouched.
type UpdateProductParams struct {
	Caller      policy.Caller
	ProductID   uuid.UUID
	Name        *string
	Description *string
	Price       *decimal.Decimal
	OfferPrice  *decimal.Decimal
	// ClearOfferPrice removes the offer; wins over OfferPrice.
	ClearOfferPrice bool
	// Images, when non-nil, replaces the whole set. Assets dropped from
	// the set are released after the catalog row is saved.
	Images   []product.ImageRef
	Category *string
	Stock    *int
	Status   *product.Status
}

// Handle edits a catalog item. Admin and subadmin. Renames recompute
// the slug, and the offer-price ceiling is checked against the final
// price so a combined edit cannot slip an invalid pair through.
func (cmd *UpdateProductCmd) Handle(ctx context.Context, p UpdateProductParams) (*product.Product, error) {
	if err := policy.Authorize(p.Caller, role.EntityProduct, role.OpUpdate); err != nil {
		return nil, err
	}
	if p.Status != nil && !product.ValidStatus(*p.Status) {
		return nil, domainErr.Validation("invalid product status %q", *p.Status)
	}

	prod, err := cmd.products.GetProductByID(ctx, p.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var replaced []string
	if p.Name != nil && strings.TrimSpace(*p.Name) != prod.Name {
		oldSlug := prod.Slug
		if err := prod.Rename(*p.Name, now); err != nil {
			return nil, err
		}
		if prod.Slug != oldSlug {
			other, err := cmd.products.GetProductBySlug(ctx, prod.Slug)
			if err != nil && !errors.Is(err, domainErr.ErrProductNotFound) {
				return nil, err
			}
			if other != nil && other.ID != prod.ID {
				return nil, domainErr.ErrConflict
			}
		}
	}
	if p.Description != nil {
		desc := strings.TrimSpace(*p.Description)
		if desc == "" {
			return nil, domainErr.Validation("description is required")
		}
		prod.Description = desc
	}
	if p.Price != nil {
		if p.Price.IsNegative() {
			return nil, domainErr.Validation("price cannot be negative")
		}
		prod.Price = *p.Price
	}
	switch {
	case p.ClearOfferPrice:
		prod.OfferPrice = nil
	case p.OfferPrice != nil:
		prod.OfferPrice = p.OfferPrice
	}
	if err := product.ValidateOfferPrice(prod.Price, prod.OfferPrice); err != nil {
		return nil, err
	}
	if p.Images != nil {
		images := p.Images
		if len(images) == 0 {
			images = []product.ImageRef{product.DefaultImage}
		}
		// Only assets dropped from the set are released; anything the
		// caller retains must survive in the asset store.
		kept := make(map[string]bool, len(images))
		for _, img := range images {
			kept[img.PublicID] = true
		}
		for _, id := range prod.ReleasableAssets() {
			if !kept[id] {
				replaced = append(replaced, id)
			}
		}
		prod.Images = images
	}
	if p.Category != nil {
		category := strings.TrimSpace(*p.Category)
		if category == "" {
			return nil, domainErr.Validation("category is required")
		}
		prod.Category = category
	}
	if p.Stock != nil {
		if *p.Stock < 0 {
			return nil, domainErr.Validation("stock cannot be negative")
		}
		prod.Stock = *p.Stock
	}
	if p.Status != nil {
		prod.Status = *p.Status
	}
	prod.UpdatedAt = now

	if err := cmd.products.UpdateProduct(ctx, prod); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	// Old assets are released only after the row is safely saved; a
	// failed release leaves an orphan in the asset store, never a
	// catalog row pointing at a missing image.
	cmd.releaseAssets(ctx, replaced)

	actor := p.Caller.ID
	if err := cmd.recorder.Record(ctx, audit.New(&actor, audit.ActionProductUpdated, &prod.ID, map[string]any{
		"slug":   prod.Slug,
		"status": prod.Status,
	})); err != nil {
		return nil, err
	}
	return prod, nil
}

func (cmd *UpdateProductCmd) releaseAssets(ctx context.Context, publicIDs []string) {
	if cmd.assets == nil {
		return
	}
	for _, id := range publicIDs {
		if err := cmd.assets.Release(ctx, id); err != nil {
			log.Printf("asset release failed for %s: %v", id, err)
		}
	}
}
