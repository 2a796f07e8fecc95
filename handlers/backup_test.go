/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/storagemodels"
)

func TestExportShopBackup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop, err := env.svc.CreateShop(ctx, owner, CreateShopRequest{Title: "Коробка"})
	require.NoError(t, err)

	product := createProduct(t, env, shop.UUID)
	_, err = env.svc.CreateVariant(ctx, owner, shop.UUID, product.UUID, CreateVariantRequest{
		Title:   "Стандарт",
		Options: []storagemodels.VariantOption{{Title: "M", Price: 300}},
	})
	require.NoError(t, err)
	_, err = env.svc.CreateSelfPickup(ctx, owner, shop.UUID, CreateSelfPickupRequest{
		Title: "Самовывоз с Лиговского",
	})
	require.NoError(t, err)

	url, err := env.svc.ExportShopBackup(ctx, owner, shop.UUID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://storage.test/test-bucket/"))
	assert.Contains(t, url, shop.UUID+"/backups/")

	uploads := env.objects.uploaded()
	require.NotEmpty(t, uploads)
	assert.True(t, strings.HasSuffix(uploads[len(uploads)-1], ".json"))
}

func TestExportShopBackupMissingShop(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ExportShopBackup(context.Background(), owner, "no-such-shop")
	assert.True(t, errors.IsNotFound(err))
}
