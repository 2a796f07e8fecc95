/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"testing"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/shopstore/storagemodels"
)

func TestEnsureTable(t *testing.T) {
	t.Run("ExistingTableIsLeftAlone", func(t *testing.T) {
		created := false
		store := newTestStore(&fakeClient{
			CreateTableFn: func(ctx context.Context, params *sdk.CreateTableInput, _ ...func(*sdk.Options)) (*sdk.CreateTableOutput, error) {
				created = true
				return &sdk.CreateTableOutput{}, nil
			},
		})

		require.NoError(t, store.EnsureTable(context.Background()))
		assert.False(t, created)
	})

	t.Run("MissingTableIsCreatedWithCompositeKey", func(t *testing.T) {
		describeCalls := 0
		var seen *sdk.CreateTableInput
		store := newTestStore(&fakeClient{
			DescribeTableFn: func(ctx context.Context, params *sdk.DescribeTableInput, _ ...func(*sdk.Options)) (*sdk.DescribeTableOutput, error) {
				describeCalls++
				if describeCalls == 1 {
					return nil, &types.ResourceNotFoundException{}
				}
				return &sdk.DescribeTableOutput{Table: &types.TableDescription{
					TableStatus: types.TableStatusActive,
				}}, nil
			},
			CreateTableFn: func(ctx context.Context, params *sdk.CreateTableInput, _ ...func(*sdk.Options)) (*sdk.CreateTableOutput, error) {
				seen = params
				return &sdk.CreateTableOutput{}, nil
			},
		})

		require.NoError(t, store.EnsureTable(context.Background()))
		require.NotNil(t, seen)
		require.Len(t, seen.KeySchema, 2)
		assert.Equal(t, "partkey", *seen.KeySchema[0].AttributeName)
		assert.Equal(t, types.KeyTypeHash, seen.KeySchema[0].KeyType)
		assert.Equal(t, "sortkey", *seen.KeySchema[1].AttributeName)
		assert.Equal(t, types.KeyTypeRange, seen.KeySchema[1].KeyType)
	})
}

func TestPurge(t *testing.T) {
	keysOf := func(n int) []storagemodels.Item {
		items := make([]storagemodels.Item, n)
		for i := range items {
			items[i] = storagemodels.Item{
				"partkey": &types.AttributeValueMemberS{Value: "shop"},
				"sortkey": &types.AttributeValueMemberS{Value: fmt.Sprintf("s%d", i)},
			}
		}
		return items
	}

	t.Run("DeletesEveryRecordInBatches", func(t *testing.T) {
		deleted := 0
		var batchSizes []int
		store := newTestStore(&fakeClient{
			ScanFn: func(ctx context.Context, params *sdk.ScanInput, _ ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
				return &sdk.ScanOutput{Items: keysOf(60)}, nil
			},
			BatchWriteItemFn: func(ctx context.Context, params *sdk.BatchWriteItemInput, _ ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error) {
				batch := params.RequestItems["general"]
				batchSizes = append(batchSizes, len(batch))
				deleted += len(batch)
				return &sdk.BatchWriteItemOutput{}, nil
			},
		})

		require.NoError(t, store.Purge(context.Background()))
		assert.Equal(t, 60, deleted)
		assert.Equal(t, []int{25, 25, 10}, batchSizes)
	})

	t.Run("UnprocessedKeysAreResubmitted", func(t *testing.T) {
		attempts := 0
		store := newTestStore(&fakeClient{
			ScanFn: func(ctx context.Context, params *sdk.ScanInput, _ ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
				return &sdk.ScanOutput{Items: keysOf(2)}, nil
			},
			BatchWriteItemFn: func(ctx context.Context, params *sdk.BatchWriteItemInput, _ ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error) {
				attempts++
				if attempts == 1 {
					return &sdk.BatchWriteItemOutput{
						UnprocessedItems: map[string][]types.WriteRequest{
							"general": params.RequestItems["general"][:1],
						},
					}, nil
				}
				return &sdk.BatchWriteItemOutput{}, nil
			},
		})

		require.NoError(t, store.Purge(context.Background()))
		assert.Equal(t, 2, attempts)
	})
}
