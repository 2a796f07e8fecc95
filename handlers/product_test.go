/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/storagemodels"
)

func createProduct(t *testing.T, env *testEnv, shopUUID string) *storagemodels.ProductBase {
	t.Helper()
	product, err := env.svc.CreateProduct(context.Background(), owner, shopUUID, CreateProductRequest{
		Title:         "Букет",
		CategoryUUIDs: []string{"cat-1"},
		Image:         upload("bouquet.png"),
	})
	require.NoError(t, err)
	return product
}

func priceOf(t *testing.T, env *testEnv, shopUUID, productUUID string) float64 {
	t.Helper()
	product, err := env.svc.GetProduct(context.Background(), shopUUID, productUUID)
	require.NoError(t, err)
	require.NotNil(t, product.Price)
	return *product.Price
}

func TestCreateProductRequiresImage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateProduct(context.Background(), owner, "shop-1", CreateProductRequest{
		Title:         "Букет",
		CategoryUUIDs: []string{"cat-1"},
	})
	require.Error(t, err)
}

func TestListProductsSkipsVariantRecords(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := createProduct(t, env, "shop-1")

	_, err := env.svc.CreateVariant(ctx, owner, "shop-1", product.UUID, CreateVariantRequest{
		Title:   "Стандарт",
		Options: []storagemodels.VariantOption{{Title: "M", Price: 500}},
	})
	require.NoError(t, err)

	products, err := env.svc.ListProducts(ctx, "shop-1")
	require.NoError(t, err)
	require.Len(t, products, 1, "variants share the partition but must not list as products")
	assert.Equal(t, product.UUID, products[0].UUID)
}

func TestVariantsDriveMinimalPrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := createProduct(t, env, "shop-1")

	first, err := env.svc.CreateVariant(ctx, owner, "shop-1", product.UUID, CreateVariantRequest{
		Title: "Стандарт",
		Options: []storagemodels.VariantOption{
			{Title: "M", Price: 300},
			{Title: "L", Price: 450},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 300.0, priceOf(t, env, "shop-1", product.UUID))

	second, err := env.svc.CreateVariant(ctx, owner, "shop-1", product.UUID, CreateVariantRequest{
		Title:   "Мини",
		Options: []storagemodels.VariantOption{{Title: "S", Price: 150}},
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, priceOf(t, env, "shop-1", product.UUID))

	require.NoError(t, env.svc.DeleteVariant(ctx, owner, "shop-1", product.UUID, second.UUID))
	assert.Equal(t, 300.0, priceOf(t, env, "shop-1", product.UUID))

	require.NoError(t, env.svc.DeleteVariant(ctx, owner, "shop-1", product.UUID, first.UUID))
	assert.Equal(t, 0.0, priceOf(t, env, "shop-1", product.UUID),
		"no active variants means no derived price")
}

func TestUpdateVariantRewritesImageSet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := createProduct(t, env, "shop-1")
	variant, err := env.svc.CreateVariant(ctx, owner, "shop-1", product.UUID, CreateVariantRequest{
		Title:   "Стандарт",
		Options: []storagemodels.VariantOption{{Title: "M", Price: 300}},
		Images:  []*Upload{upload("a.png"), upload("b.png")},
	})
	require.NoError(t, err)
	require.Len(t, variant.ImageURLs, 2)

	kept := []string{variant.ImageURLs[0]}
	updated, err := env.svc.UpdateVariant(ctx, owner, "shop-1", product.UUID, variant.UUID, UpdateVariantRequest{
		ImageURLs: &kept,
		Images:    []*Upload{upload("c.png")},
	})
	require.NoError(t, err)

	require.Len(t, updated.ImageURLs, 2)
	assert.Equal(t, kept[0], updated.ImageURLs[0])
	assert.NotContains(t, updated.ImageURLs, variant.ImageURLs[1])
	assert.Len(t, env.objects.deleted(), 1, "the dropped image is removed from storage")
}

func TestDeleteProductCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := createProduct(t, env, "shop-1")
	variant, err := env.svc.CreateVariant(ctx, owner, "shop-1", product.UUID, CreateVariantRequest{
		Title:   "Стандарт",
		Options: []storagemodels.VariantOption{{Title: "M", Price: 300}},
	})
	require.NoError(t, err)
	kit, err := env.svc.CreateExtraKit(ctx, owner, "shop-1", product.UUID, CreateExtraKitRequest{
		Title:  "Открытка",
		Price:  50,
		Addons: []string{"открытка"},
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteProduct(ctx, owner, "shop-1", product.UUID))

	products, err := env.svc.ListProducts(ctx, "shop-1")
	require.NoError(t, err)
	assert.Empty(t, products)

	gotVariant, err := env.svc.GetVariant(ctx, "shop-1", product.UUID, variant.UUID)
	require.NoError(t, err)
	assert.True(t, gotVariant.Inactive)

	gotKit, err := env.svc.GetExtraKit(ctx, "shop-1", product.UUID, kit.UUID)
	require.NoError(t, err)
	assert.True(t, gotKit.Inactive)

	// A second pass over an already-deactivated product is a no-op.
	require.NoError(t, env.svc.DeleteProduct(ctx, owner, "shop-1", product.UUID))
}

func TestUpdateProductEmptyRequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := createProduct(t, env, "shop-1")

	_, err := env.svc.UpdateProduct(ctx, owner, "shop-1", product.UUID, UpdateProductRequest{})
	assert.True(t, errors.IsNoUpdateData(err))
}
