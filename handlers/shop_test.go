/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/shopstore/errors"
)

var owner = Identity{UserUUID: "u-owner", OwnerUUID: "u-owner"}

func TestCreateShop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop, err := env.svc.CreateShop(ctx, owner, CreateShopRequest{
		Title:       "Коробка",
		Description: "Подарки и упаковка",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, shop.UUID)
	assert.Equal(t, owner.OwnerUUID, shop.OwnerUUID)
	assert.True(t, shop.Inactive, "new shops start hidden")
	assert.True(t, shop.SubscriptionActive)
	assert.NotEmpty(t, shop.SubscriptionExpireAt)

	got, err := env.svc.GetShop(ctx, shop.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Коробка", got.Title)
	assert.Equal(t, "Подарки и упаковка", got.Description)

	categories, err := env.svc.ListCategories(ctx, shop.UUID)
	require.NoError(t, err)
	require.Len(t, categories, 1, "a new shop gets its default category")
	assert.Equal(t, defaultCategoryTitle, categories[0].Title)
}

func TestCreateShopRequiresTitle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateShop(context.Background(), owner, CreateShopRequest{})
	require.Error(t, err)
}

func TestUpdateShopChangesOnlyGivenFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop, err := env.svc.CreateShop(ctx, owner, CreateShopRequest{
		Title:       "Коробка",
		Description: "Подарки и упаковка",
	})
	require.NoError(t, err)

	title := "Коробка 2.0"
	updated, err := env.svc.UpdateShop(ctx, owner, shop.UUID, UpdateShopRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	assert.Equal(t, shop.Description, updated.Description)
	assert.Equal(t, shop.DateCreate, updated.DateCreate)
	assert.NotEqual(t, shop.DateUpdate, updated.DateUpdate)
}

func TestUpdateShopEmptyRequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop, err := env.svc.CreateShop(ctx, owner, CreateShopRequest{Title: "Коробка"})
	require.NoError(t, err)

	_, err = env.svc.UpdateShop(ctx, owner, shop.UUID, UpdateShopRequest{})
	assert.True(t, errors.IsNoUpdateData(err))
	assert.Empty(t, env.objects.uploaded(), "a no-op update touches no objects")
}

func TestUpdateShopSwapsLogo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop, err := env.svc.CreateShop(ctx, owner, CreateShopRequest{
		Title: "Коробка",
		Logo:  upload("logo.png"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, shop.LogoURL)

	updated, err := env.svc.UpdateShop(ctx, owner, shop.UUID, UpdateShopRequest{
		Logo: upload("logo2.png"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, shop.LogoURL, updated.LogoURL)

	// Stale logo disposal is fire-and-forget.
	assert.Eventually(t, func() bool {
		return len(env.objects.deleted()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestDeleteShopSoftDeletes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop, err := env.svc.CreateShop(ctx, owner, CreateShopRequest{Title: "Коробка"})
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteShop(ctx, owner, shop.UUID))

	// The record stays readable; listings for the owner keep it too, so
	// the owner sees the full shop history.
	got, err := env.svc.GetShop(ctx, shop.UUID)
	require.NoError(t, err)
	assert.True(t, got.Inactive)
	assert.NotEqual(t, shop.DateUpdate, got.DateUpdate, "deactivation stamps the record")

	shops, err := env.svc.ListShops(ctx, owner)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.True(t, shops[0].Inactive)
}

func TestDeleteShopWrongOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop, err := env.svc.CreateShop(ctx, owner, CreateShopRequest{Title: "Коробка"})
	require.NoError(t, err)

	stranger := Identity{UserUUID: "u-stranger", OwnerUUID: "u-stranger"}
	err = env.svc.DeleteShop(ctx, stranger, shop.UUID)
	assert.True(t, errors.IsIncorrectOwner(err))

	got, err := env.svc.GetShop(ctx, shop.UUID)
	require.NoError(t, err)
	assert.Equal(t, shop.DateUpdate, got.DateUpdate, "foreign delete must not touch the record")
}

func TestDeleteShopMissing(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.DeleteShop(context.Background(), owner, "no-such-shop")
	assert.True(t, errors.IsNotFound(err))
}

func TestListShopsFiltersByOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateShop(ctx, owner, CreateShopRequest{Title: "Первый"})
	require.NoError(t, err)

	other := Identity{UserUUID: "u-other", OwnerUUID: "u-other"}
	_, err = env.svc.CreateShop(ctx, other, CreateShopRequest{Title: "Чужой"})
	require.NoError(t, err)

	shops, err := env.svc.ListShops(ctx, owner)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "Первый", shops[0].Title)
}
