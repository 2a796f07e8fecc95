/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/shopstore/keys"
)

const batchDeleteSize = 25

// EnsureTable creates the table if it does not exist and waits until it is
// usable. Safe to call on every process start.
func (s *TableStore) EnsureTable(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &sdk.DescribeTableInput{TableName: &s.table})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !stderrors.As(err, &notFound) {
		return translate("describe-table", "", err)
	}

	s.log.Info("creating table")
	_, err = s.client.CreateTable(ctx, &sdk.CreateTableInput{
		TableName: &s.table,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(keys.PartKeyAttr), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(keys.SortKeyAttr), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(keys.PartKeyAttr), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String(keys.SortKeyAttr), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return translate("create-table", "", err)
	}

	waiter := sdk.NewTableExistsWaiter(s.client)
	if err := waiter.Wait(ctx, &sdk.DescribeTableInput{TableName: &s.table}, 2*time.Minute); err != nil {
		return translate("create-table", "", err)
	}
	return nil
}

// Purge hard-deletes every record in the table. Maintenance only; nothing
// in the request path calls it.
func (s *TableStore) Purge(ctx context.Context) error {
	projection := keys.PartKeyAttr + ", " + keys.SortKeyAttr
	input := &sdk.ScanInput{
		TableName:            &s.table,
		ProjectionExpression: &projection,
	}

	deleted := 0
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return translate("purge", "", err)
		}

		for start := 0; start < len(out.Items); start += batchDeleteSize {
			end := start + batchDeleteSize
			if end > len(out.Items) {
				end = len(out.Items)
			}
			if err := s.batchDelete(ctx, out.Items[start:end]); err != nil {
				return err
			}
			deleted += end - start
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	s.log.Info("table purged", zap.Int("records", deleted))
	return nil
}

func (s *TableStore) batchDelete(ctx context.Context, items []map[string]types.AttributeValue) error {
	requests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: item},
		})
	}

	pending := map[string][]types.WriteRequest{s.table: requests}
	for len(pending[s.table]) > 0 {
		out, err := s.client.BatchWriteItem(ctx, &sdk.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return translate("purge", "", err)
		}
		pending = out.UnprocessedItems
	}
	return nil
}
