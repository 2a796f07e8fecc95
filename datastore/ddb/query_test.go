/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/storagemodels"
)

// pagedFake serves fixed items in pages of pageLen, handing out a
// continuation key until the last page.
func pagedFake(t *testing.T, items []storagemodels.Item, pageLen int) *fakeClient {
	t.Helper()
	next := 0
	return &fakeClient{
		QueryFn: func(ctx context.Context, params *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
			if next > 0 {
				require.NotNil(t, params.ExclusiveStartKey, "follow-up page fetch must resume from the continuation key")
			}
			end := next + pageLen
			if end > len(items) {
				end = len(items)
			}
			out := &sdk.QueryOutput{Items: items[next:end]}
			if end < len(items) {
				out.LastEvaluatedKey = map[string]types.AttributeValue{
					"sortkey": items[end-1]["sortkey"],
				}
			}
			next = end
			return out, nil
		},
	}
}

func numberedItems(n int) []storagemodels.Item {
	items := make([]storagemodels.Item, n)
	for i := range items {
		items[i] = storagemodels.Item{
			"sortkey": &types.AttributeValueMemberS{Value: fmt.Sprintf("p1_variant_%03d", i)},
		}
	}
	return items
}

func TestQueryPaged(t *testing.T) {
	t.Run("DrainsAllPagesWithoutDuplicates", func(t *testing.T) {
		items := numberedItems(7)
		store := newTestStore(pagedFake(t, items, 3))

		got, err := store.QueryPaged(context.Background(), &datastore.Query{Partition: "product_s1"})
		require.NoError(t, err)
		require.Len(t, got, 7)

		seen := make(map[string]bool, len(got))
		for _, item := range got {
			sk := item["sortkey"].(*types.AttributeValueMemberS).Value
			assert.False(t, seen[sk], "duplicate item %s", sk)
			seen[sk] = true
		}
	})

	t.Run("SingleEmptyPage", func(t *testing.T) {
		store := newTestStore(pagedFake(t, nil, 3))

		got, err := store.QueryPaged(context.Background(), &datastore.Query{Partition: "product_s1"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("PrefixBecomesBeginsWith", func(t *testing.T) {
		var seen *sdk.QueryInput
		store := newTestStore(&fakeClient{
			QueryFn: func(ctx context.Context, params *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
				seen = params
				return &sdk.QueryOutput{}, nil
			},
		})

		_, err := store.QueryPaged(context.Background(), &datastore.Query{
			Partition:  "product_s1",
			SortPrefix: "p1_variant_",
		})
		require.NoError(t, err)

		require.NotNil(t, seen.KeyConditionExpression)
		assert.Contains(t, *seen.KeyConditionExpression, "begins_with")
		assert.Nil(t, seen.FilterExpression)
	})

	t.Run("FiltersRendered", func(t *testing.T) {
		var seen *sdk.QueryInput
		store := newTestStore(&fakeClient{
			QueryFn: func(ctx context.Context, params *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
				seen = params
				return &sdk.QueryOutput{}, nil
			},
		})

		_, err := store.QueryPaged(context.Background(), &datastore.Query{
			Partition:  "shop",
			RecordType: "shop",
			ActiveOnly: true,
			OwnerUUID:  "u1",
		})
		require.NoError(t, err)

		require.NotNil(t, seen.FilterExpression)
		names := make(map[string]bool, len(seen.ExpressionAttributeNames))
		for _, name := range seen.ExpressionAttributeNames {
			names[name] = true
		}
		assert.True(t, names["record_type"])
		assert.True(t, names["inactive"])
		assert.True(t, names["owner_uuid"])
	})

	t.Run("TransportFault", func(t *testing.T) {
		store := newTestStore(&fakeClient{
			QueryFn: func(ctx context.Context, params *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
				return nil, stderrors.New("connection reset")
			},
		})

		_, err := store.QueryPaged(context.Background(), &datastore.Query{Partition: "shop"})
		assert.True(t, errors.IsStorageUnavailable(err))
	})
}

func TestStream(t *testing.T) {
	t.Run("YieldsEveryItemThenCloses", func(t *testing.T) {
		items := numberedItems(5)
		store := newTestStore(pagedFake(t, items, 2))

		var got []storagemodels.Item
		for res := range store.Stream(context.Background(), &datastore.Query{Partition: "product_s1"}) {
			require.NoError(t, res.Err)
			got = append(got, res.Item)
		}
		assert.Len(t, got, 5)
	})

	t.Run("FailureSurfacesOnChannel", func(t *testing.T) {
		store := newTestStore(&fakeClient{
			QueryFn: func(ctx context.Context, params *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
				return nil, stderrors.New("connection reset")
			},
		})

		var errs []error
		for res := range store.Stream(context.Background(), &datastore.Query{Partition: "shop"}) {
			if res.Err != nil {
				errs = append(errs, res.Err)
			}
		}
		require.Len(t, errs, 1)
		assert.True(t, errors.IsStorageUnavailable(errs[0]))
	})

	t.Run("CancellationStopsTheWorker", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		store := newTestStore(pagedFake(t, numberedItems(10), 2))

		ch := store.Stream(ctx, &datastore.Query{Partition: "product_s1"})
		<-ch
		cancel()

		// The channel must close rather than block forever.
		for range ch {
		}
	})
}
