// internal/app/commands/product_commands_test.go
package commands

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

func TestCreateProduct(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, admin := env.seedAccount(t, role.RoleAdmin, account.StatusActive, nil)

	cmd := NewCreateProductCmd(env.store, env.recorder)

	prod, err := cmd.Handle(ctx, CreateProductParams{
		Caller: admin,
		NewParams: product.NewParams{
			Name:        "Vitamin C 500mg",
			Description: "Chewable tablets",
			Price:       decimal.NewFromInt(250),
			Category:    "supplements",
			Stock:       100,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "vitamin-c-500mg", prod.Slug)
	assert.Equal(t, product.StatusActive, prod.Status)
	require.Len(t, prod.Images, 1)
	assert.Equal(t, product.DefaultImage, prod.Images[0])
	assert.Equal(t, audit.ActionProductCreated, env.lastEvent(t).Action)

	// A name that slugs to the same value collides.
	_, err = cmd.Handle(ctx, CreateProductParams{
		Caller: admin,
		NewParams: product.NewParams{
			Name:        "Vitamin C 500MG",
			Description: "Duplicate",
			Price:       decimal.NewFromInt(300),
			Category:    "supplements",
		},
	})
	assert.ErrorIs(t, err, domainErr.ErrConflict)

	_, sub := env.seedAccount(t, role.RoleSubAdmin, account.StatusActive, nil)
	_, err = cmd.Handle(ctx, CreateProductParams{
		Caller: sub,
		NewParams: product.NewParams{
			Name:        "Zinc Tablets",
			Description: "60 count",
			Price:       decimal.NewFromInt(150),
			Category:    "supplements",
		},
	})
	assert.ErrorIs(t, err, domainErr.ErrForbidden, "only admin creates catalog items")
}

func TestUpdateProductRenameAndOffer(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, admin := env.seedAccount(t, role.RoleAdmin, account.StatusActive, nil)
	_, sub := env.seedAccount(t, role.RoleSubAdmin, account.StatusActive, nil)

	create := NewCreateProductCmd(env.store, env.recorder)
	prod, err := create.Handle(ctx, CreateProductParams{
		Caller: admin,
		NewParams: product.NewParams{
			Name:        "Vitamin C",
			Description: "Tablets",
			Price:       decimal.NewFromInt(250),
			Category:    "supplements",
		},
	})
	require.NoError(t, err)
	other, err := create.Handle(ctx, CreateProductParams{
		Caller: admin,
		NewParams: product.NewParams{
			Name:        "Vitamin D",
			Description: "Capsules",
			Price:       decimal.NewFromInt(300),
			Category:    "supplements",
		},
	})
	require.NoError(t, err)

	upd := NewUpdateProductCmd(env.store, nil, env.recorder)

	// Subadmin may edit; rename recomputes the slug.
	name := "Vitamin C Plus"
	updated, err := upd.Handle(ctx, UpdateProductParams{Caller: sub, ProductID: prod.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "vitamin-c-plus", updated.Slug)

	// Renaming onto another product's slug is a conflict.
	clash := other.Name
	_, err = upd.Handle(ctx, UpdateProductParams{Caller: sub, ProductID: prod.ID, Name: &clash})
	assert.ErrorIs(t, err, domainErr.ErrConflict)

	// Offer ceiling is checked against the final price of the same edit.
	offer := decimal.NewFromInt(400)
	_, err = upd.Handle(ctx, UpdateProductParams{Caller: sub, ProductID: prod.ID, OfferPrice: &offer})
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	price := decimal.NewFromInt(500)
	updated, err = upd.Handle(ctx, UpdateProductParams{
		Caller: sub, ProductID: prod.ID, Price: &price, OfferPrice: &offer,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.OfferPrice)
	assert.True(t, updated.EffectivePrice().Equal(offer))

	updated, err = upd.Handle(ctx, UpdateProductParams{
		Caller: sub, ProductID: prod.ID, ClearOfferPrice: true,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.OfferPrice)
	assert.True(t, updated.EffectivePrice().Equal(price))
}

func TestUpdateProductImageReplacementReleasesAssets(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, admin := env.seedAccount(t, role.RoleAdmin, account.StatusActive, nil)
	released := &fakeAssetStore{}

	create := NewCreateProductCmd(env.store, env.recorder)
	prod, err := create.Handle(ctx, CreateProductParams{
		Caller: admin,
		NewParams: product.NewParams{
			Name:        "Omega 3",
			Description: "Fish oil",
			Price:       decimal.NewFromInt(600),
			Category:    "supplements",
			Images: []product.ImageRef{
				{URL: "https://cdn.test/a.jpg", PublicID: "asset-a"},
				{URL: "https://cdn.test/b.jpg", PublicID: "asset-b"},
			},
		},
	})
	require.NoError(t, err)

	upd := NewUpdateProductCmd(env.store, released, env.recorder)

	// A partial swap releases only the dropped asset; the retained one
	// must stay alive because the saved row still points at it.
	updated, err := upd.Handle(ctx, UpdateProductParams{
		Caller:    admin,
		ProductID: prod.ID,
		Images: []product.ImageRef{
			{URL: "https://cdn.test/a.jpg", PublicID: "asset-a"},
			{URL: "https://cdn.test/c.jpg", PublicID: "asset-c"},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Images, 2)
	assert.Equal(t, []string{"asset-b"}, released.released)

	released.released = nil
	updated, err = upd.Handle(ctx, UpdateProductParams{
		Caller:    admin,
		ProductID: prod.ID,
		Images:    []product.ImageRef{{URL: "https://cdn.test/c.jpg", PublicID: "asset-c"}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, []string{"asset-a"}, released.released)

	// Emptying the set falls back to the default image, which is shared
	// and never released.
	released.released = nil
	updated, err = upd.Handle(ctx, UpdateProductParams{
		Caller:    admin,
		ProductID: prod.ID,
		Images:    []product.ImageRef{},
	})
	require.NoError(t, err)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, product.DefaultImage, updated.Images[0])
	assert.Equal(t, []string{"asset-c"}, released.released)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, admin := env.seedAccount(t, role.RoleAdmin, account.StatusActive, nil)
	_, sub := env.seedAccount(t, role.RoleSubAdmin, account.StatusActive, nil)
	released := &fakeAssetStore{}

	create := NewCreateProductCmd(env.store, env.recorder)
	prod, err := create.Handle(ctx, CreateProductParams{
		Caller: admin,
		NewParams: product.NewParams{
			Name:        "Calcium",
			Description: "Tablets",
			Price:       decimal.NewFromInt(180),
			Category:    "supplements",
			Images:      []product.ImageRef{{URL: "https://cdn.test/cal.jpg", PublicID: "asset-cal"}},
		},
	})
	require.NoError(t, err)

	del := NewDeleteProductCmd(env.store, released, env.recorder)

	err = del.Handle(ctx, DeleteProductParams{Caller: sub, ProductID: prod.ID})
	assert.ErrorIs(t, err, domainErr.ErrForbidden)

	require.NoError(t, del.Handle(ctx, DeleteProductParams{Caller: admin, ProductID: prod.ID}))
	assert.Equal(t, []string{"asset-cal"}, released.released)
	_, err = env.store.GetProductByID(ctx, prod.ID)
	assert.ErrorIs(t, err, domainErr.ErrProductNotFound)
}

func TestListAndGetProduct(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, admin := env.seedAccount(t, role.RoleAdmin, account.StatusActive, nil)
	headAcc, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agent := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)

	create := NewCreateProductCmd(env.store, env.recorder)
	prod, err := create.Handle(ctx, CreateProductParams{
		Caller: admin,
		NewParams: product.NewParams{
			Name:        "Iron Folic",
			Description: "Tablets",
			Price:       decimal.NewFromInt(90),
			Category:    "supplements",
		},
	})
	require.NoError(t, err)

	// The catalog is visible to every operating role.
	list := NewListProductsCmd(env.store)
	visible, err := list.Handle(ctx, ListProductsParams{Caller: agent})
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	get := NewGetProductCmd(env.store)
	bySlug, err := get.Handle(ctx, GetProductParams{Caller: agent, Slug: "iron-folic"})
	require.NoError(t, err)
	assert.Equal(t, prod.ID, bySlug.ID)
}
