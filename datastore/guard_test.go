/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/datastore/mock"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/storagemodels"
)

func seedRecord(s *mock.Store, key keys.Key, owner string) {
	s.Seed(key, storagemodels.Item{
		keys.PartKeyAttr: &types.AttributeValueMemberS{Value: key.Partition},
		keys.SortKeyAttr: &types.AttributeValueMemberS{Value: key.Sort},
		"owner_uuid":     &types.AttributeValueMemberS{Value: owner},
		"title":          &types.AttributeValueMemberS{Value: "original"},
		"inactive":       &types.AttributeValueMemberBOOL{Value: false},
	})
}

func isInactive(t *testing.T, s *mock.Store, key keys.Key) bool {
	t.Helper()
	item, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item["inactive"].(*types.AttributeValueMemberBOOL).Value
}

func TestDeactivate(t *testing.T) {
	key := keys.Key{Partition: "product_s1", Sort: "p1_variant_v1"}

	t.Run("FlipsInactiveAndStampsActor", func(t *testing.T) {
		store := mock.New()
		seedRecord(store, key, "u1")

		require.NoError(t, datastore.Deactivate(context.Background(), store, keys.KindProductVariant, key, "u2"))

		item, err := store.Get(context.Background(), key)
		require.NoError(t, err)
		assert.True(t, item["inactive"].(*types.AttributeValueMemberBOOL).Value)
		assert.Equal(t, "u2", item["user_uuid"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, "original", item["title"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("Idempotent", func(t *testing.T) {
		store := mock.New()
		seedRecord(store, key, "u1")

		require.NoError(t, datastore.Deactivate(context.Background(), store, keys.KindProductVariant, key, "u1"))
		require.NoError(t, datastore.Deactivate(context.Background(), store, keys.KindProductVariant, key, "u1"))
		assert.True(t, isInactive(t, store, key))
	})

	t.Run("MissingRecord", func(t *testing.T) {
		err := datastore.Deactivate(context.Background(), mock.New(), keys.KindProductVariant, key, "u1")
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestDeactivateOwned(t *testing.T) {
	key := keys.Key{Partition: "shop", Sort: "s1"}

	t.Run("OwnerMayDelete", func(t *testing.T) {
		store := mock.New()
		seedRecord(store, key, "u1")

		require.NoError(t, datastore.DeactivateOwned(context.Background(), store, keys.KindShop, key, "u1"))
		assert.True(t, isInactive(t, store, key))
	})

	t.Run("StrangerGetsIncorrectOwner", func(t *testing.T) {
		store := mock.New()
		seedRecord(store, key, "u1")

		err := datastore.DeactivateOwned(context.Background(), store, keys.KindShop, key, "intruder")
		require.True(t, errors.IsIncorrectOwner(err))

		// The record must be untouched.
		item, getErr := store.Get(context.Background(), key)
		require.NoError(t, getErr)
		assert.False(t, item["inactive"].(*types.AttributeValueMemberBOOL).Value)
		assert.Equal(t, "original", item["title"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("MissingRecordIsNotFoundNotOwnership", func(t *testing.T) {
		err := datastore.DeactivateOwned(context.Background(), mock.New(), keys.KindShop, key, "u1")
		assert.True(t, errors.IsNotFound(err))
		assert.False(t, errors.IsIncorrectOwner(err))
	})
}

func TestDeactivateChildren(t *testing.T) {
	parent := keys.Key{Partition: "product_s1", Sort: "p1"}
	children := []keys.Key{
		{Partition: "product_s1", Sort: "p1_variant_v1"},
		{Partition: "product_s1", Sort: "p1_variant_v2"},
		{Partition: "product_s1", Sort: "p1_extra_kit_e1"},
	}
	sibling := keys.Key{Partition: "product_s1", Sort: "p2_variant_v1"}

	t.Run("CascadeCoversThePrefixOnly", func(t *testing.T) {
		store := mock.New()
		seedRecord(store, parent, "u1")
		for _, key := range children {
			seedRecord(store, key, "u1")
		}
		seedRecord(store, sibling, "u1")

		q := &datastore.Query{Partition: "product_s1", SortPrefix: "p1"}
		n, err := datastore.DeactivateChildren(context.Background(), store, q, "u1")
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		assert.True(t, isInactive(t, store, parent))
		for _, key := range children {
			assert.True(t, isInactive(t, store, key))
		}
		assert.False(t, isInactive(t, store, sibling))
	})

	t.Run("RerunCompletesWithoutError", func(t *testing.T) {
		store := mock.New()
		seedRecord(store, parent, "u1")
		seedRecord(store, children[0], "u1")

		q := &datastore.Query{Partition: "product_s1", SortPrefix: "p1"}
		_, err := datastore.DeactivateChildren(context.Background(), store, q, "u1")
		require.NoError(t, err)

		n, err := datastore.DeactivateChildren(context.Background(), store, q, "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}
