/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/storagemodels"
)

// queryInput renders a datastore.Query into engine form. The partition and
// optional sort prefix become the key condition; record type, activity, and
// owner predicates become a filter expression.
func (s *TableStore) queryInput(q *datastore.Query) (*sdk.QueryInput, error) {
	keyCond := expression.Key(keys.PartKeyAttr).Equal(expression.Value(q.Partition))
	if q.SortPrefix != "" {
		keyCond = keyCond.And(expression.Key(keys.SortKeyAttr).BeginsWith(q.SortPrefix))
	}

	builder := expression.NewBuilder().WithKeyCondition(keyCond)

	var filters []expression.ConditionBuilder
	if q.RecordType != "" {
		filters = append(filters, expression.Name(keys.RecordTypeAttr).Equal(expression.Value(q.RecordType)))
	}
	if q.ActiveOnly {
		filters = append(filters, expression.Name("inactive").Equal(expression.Value(false)))
	}
	if q.OwnerUUID != "" {
		filters = append(filters, expression.Name("owner_uuid").Equal(expression.Value(q.OwnerUUID)))
	}
	if len(filters) > 0 {
		filter := filters[0]
		for _, f := range filters[1:] {
			filter = filter.And(f)
		}
		builder = builder.WithFilter(filter)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, err
	}

	input := &sdk.QueryInput{
		TableName:                 &s.table,
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if q.PageSize > 0 {
		input.Limit = aws.Int32(q.PageSize)
	}
	return input, nil
}

// QueryPaged runs q and follows continuation tokens until the result set is
// complete. The engine caps a single page at about 1MB, so a single call is
// never assumed to be the whole answer.
func (s *TableStore) QueryPaged(ctx context.Context, q *datastore.Query) ([]storagemodels.Item, error) {
	input, err := s.queryInput(q)
	if err != nil {
		return nil, translate("query", "", err)
	}

	var results []storagemodels.Item
	pages := 0
	for {
		out, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, translate("query", "", err)
		}
		pages++
		results = append(results, out.Items...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	if pages > 1 {
		s.log.Debug("query drained multiple pages",
			zap.String("partkey", q.Partition),
			zap.Int("pages", pages),
			zap.Int("items", len(results)),
		)
	}
	return results, nil
}
