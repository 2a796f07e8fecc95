/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"testing"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/storagemodels"
)

var testKey = keys.Key{Partition: "shop", Sort: "s1"}

func newTestStore(client *fakeClient) *TableStore {
	return New(client, "general", zap.NewNop())
}

func TestTableStoreGet(t *testing.T) {
	t.Run("AbsentRecordIsNotAnError", func(t *testing.T) {
		store := newTestStore(&fakeClient{})

		item, err := store.Get(context.Background(), testKey)
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("PresentRecord", func(t *testing.T) {
		store := newTestStore(&fakeClient{
			GetItemFn: func(ctx context.Context, params *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
				assert.Equal(t, "general", *params.TableName)
				assert.Equal(t, "shop", params.Key["partkey"].(*types.AttributeValueMemberS).Value)
				assert.Equal(t, "s1", params.Key["sortkey"].(*types.AttributeValueMemberS).Value)
				return &sdk.GetItemOutput{Item: map[string]types.AttributeValue{
					"title": &types.AttributeValueMemberS{Value: "Coffee"},
				}}, nil
			},
		})

		item, err := store.Get(context.Background(), testKey)
		require.NoError(t, err)
		assert.Equal(t, "Coffee", item["title"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("TransportFault", func(t *testing.T) {
		store := newTestStore(&fakeClient{
			GetItemFn: func(ctx context.Context, params *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
				return nil, stderrors.New("connection refused")
			},
		})

		_, err := store.Get(context.Background(), testKey)
		assert.True(t, errors.IsStorageUnavailable(err))
	})
}

func TestTableStorePut(t *testing.T) {
	t.Run("MustNotExistCondition", func(t *testing.T) {
		var seen *sdk.PutItemInput
		store := newTestStore(&fakeClient{
			PutItemFn: func(ctx context.Context, params *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
				seen = params
				return &sdk.PutItemOutput{}, nil
			},
		})

		item := storagemodels.Item{"partkey": &types.AttributeValueMemberS{Value: "shop"}}
		err := store.Put(context.Background(), testKey, item, &datastore.Condition{MustNotExist: true})
		require.NoError(t, err)

		require.NotNil(t, seen.ConditionExpression)
		assert.Equal(t, "attribute_not_exists(#c0)", *seen.ConditionExpression)
		assert.Equal(t, "partkey", seen.ExpressionAttributeNames["#c0"])
	})

	t.Run("ConditionFailure", func(t *testing.T) {
		store := newTestStore(&fakeClient{
			PutItemFn: func(ctx context.Context, params *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		})

		err := store.Put(context.Background(), testKey, storagemodels.Item{}, &datastore.Condition{MustNotExist: true})
		assert.True(t, errors.IsConditionFailed(err))
	})

	t.Run("UnconditionalHasNoExpression", func(t *testing.T) {
		var seen *sdk.PutItemInput
		store := newTestStore(&fakeClient{
			PutItemFn: func(ctx context.Context, params *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
				seen = params
				return &sdk.PutItemOutput{}, nil
			},
		})

		require.NoError(t, store.Put(context.Background(), testKey, storagemodels.Item{}, nil))
		assert.Nil(t, seen.ConditionExpression)
	})
}

func TestTableStoreUpdate(t *testing.T) {
	changed := storagemodels.Item{
		"title": &types.AttributeValueMemberS{Value: "New"},
	}

	t.Run("EmptyChangeSetNeverReachesEngine", func(t *testing.T) {
		called := false
		store := newTestStore(&fakeClient{
			UpdateItemFn: func(ctx context.Context, params *sdk.UpdateItemInput, _ ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error) {
				called = true
				return &sdk.UpdateItemOutput{}, nil
			},
		})

		_, err := store.Update(context.Background(), testKey, storagemodels.Item{}, nil, datastore.ReturnNone)
		assert.True(t, errors.IsNoUpdateData(err))
		assert.False(t, called)
	})

	t.Run("OwnerConditionMergesWithChangeSet", func(t *testing.T) {
		var seen *sdk.UpdateItemInput
		store := newTestStore(&fakeClient{
			UpdateItemFn: func(ctx context.Context, params *sdk.UpdateItemInput, _ ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error) {
				seen = params
				return &sdk.UpdateItemOutput{}, nil
			},
		})

		cond := &datastore.Condition{MustExist: true, OwnerUUID: "u1"}
		_, err := store.Update(context.Background(), testKey, changed, cond, datastore.ReturnNone)
		require.NoError(t, err)

		assert.Equal(t, "SET #f0 = :v0", *seen.UpdateExpression)
		assert.Equal(t, "attribute_exists(#c0) AND #c1 = :c1", *seen.ConditionExpression)
		assert.Equal(t, "title", seen.ExpressionAttributeNames["#f0"])
		assert.Equal(t, "owner_uuid", seen.ExpressionAttributeNames["#c1"])
		assert.Equal(t, "u1", seen.ExpressionAttributeValues[":c1"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, "New", seen.ExpressionAttributeValues[":v0"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("ReturnModes", func(t *testing.T) {
		var seen *sdk.UpdateItemInput
		store := newTestStore(&fakeClient{
			UpdateItemFn: func(ctx context.Context, params *sdk.UpdateItemInput, _ ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error) {
				seen = params
				return &sdk.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
					"title": &types.AttributeValueMemberS{Value: "Old"},
				}}, nil
			},
		})

		old, err := store.Update(context.Background(), testKey, changed, nil, datastore.ReturnOld)
		require.NoError(t, err)
		assert.Equal(t, types.ReturnValueAllOld, seen.ReturnValues)
		assert.Equal(t, "Old", old["title"].(*types.AttributeValueMemberS).Value)

		_, err = store.Update(context.Background(), testKey, changed, nil, datastore.ReturnNew)
		require.NoError(t, err)
		assert.Equal(t, types.ReturnValueAllNew, seen.ReturnValues)

		_, err = store.Update(context.Background(), testKey, changed, nil, datastore.ReturnNone)
		require.NoError(t, err)
		assert.Equal(t, types.ReturnValueNone, seen.ReturnValues)
	})

	t.Run("ConditionFailure", func(t *testing.T) {
		store := newTestStore(&fakeClient{
			UpdateItemFn: func(ctx context.Context, params *sdk.UpdateItemInput, _ ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		})

		_, err := store.Update(context.Background(), testKey, changed, &datastore.Condition{MustExist: true}, datastore.ReturnNone)
		assert.True(t, errors.IsConditionFailed(err))
	})
}

func TestTableStoreDelete(t *testing.T) {
	t.Run("ConditionFailure", func(t *testing.T) {
		store := newTestStore(&fakeClient{
			DeleteItemFn: func(ctx context.Context, params *sdk.DeleteItemInput, _ ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		})

		err := store.Delete(context.Background(), testKey, &datastore.Condition{MustExist: true})
		assert.True(t, errors.IsConditionFailed(err))
	})

	t.Run("TransportFaultIsNeverSwallowed", func(t *testing.T) {
		store := newTestStore(&fakeClient{
			DeleteItemFn: func(ctx context.Context, params *sdk.DeleteItemInput, _ ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
				return nil, stderrors.New("i/o timeout")
			},
		})

		err := store.Delete(context.Background(), testKey, nil)
		require.True(t, errors.IsStorageUnavailable(err))

		var unavailable *errors.StorageUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.EqualError(t, unavailable.Err, "i/o timeout")
	})
}
