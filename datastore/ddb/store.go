/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/storagemodels"
)

// TableStore implements datastore.Store over one DynamoDB-compatible table.
type TableStore struct {
	client Client
	table  string
	log    *zap.Logger
}

// New constructs a TableStore. The client is shared and reused across
// requests; TableStore itself holds no per-request state.
func New(client Client, table string, log *zap.Logger) *TableStore {
	return &TableStore{
		client: client,
		table:  table,
		log:    log.Named("ddb").With(zap.String("table", table)),
	}
}

func keyAttrs(key keys.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keys.PartKeyAttr: &types.AttributeValueMemberS{Value: key.Partition},
		keys.SortKeyAttr: &types.AttributeValueMemberS{Value: key.Sort},
	}
}

// conditionExpr renders a datastore.Condition into a condition expression
// with its own placeholder namespace (#c.../:c...), disjoint from the
// update builder's so the two merge without collisions.
func conditionExpr(cond *datastore.Condition) (expr string, names map[string]string, values map[string]types.AttributeValue) {
	if cond == nil {
		return "", nil, nil
	}
	switch {
	case cond.MustNotExist:
		names = map[string]string{"#c0": keys.PartKeyAttr}
		return "attribute_not_exists(#c0)", names, nil
	case cond.OwnerUUID != "":
		names = map[string]string{"#c0": keys.PartKeyAttr, "#c1": "owner_uuid"}
		values = map[string]types.AttributeValue{
			":c1": &types.AttributeValueMemberS{Value: cond.OwnerUUID},
		}
		return "attribute_exists(#c0) AND #c1 = :c1", names, values
	case cond.MustExist:
		names = map[string]string{"#c0": keys.PartKeyAttr}
		return "attribute_exists(#c0)", names, nil
	}
	return "", nil, nil
}

// translate maps engine failures onto the store's error kinds. Condition
// failures are business outcomes; everything else the caller could not
// have prevented is StorageUnavailable.
func translate(operation, condition string, err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if stderrors.As(err, &cfe) {
		return errors.NewConditionFailedError(operation, condition)
	}
	return errors.NewStorageUnavailableError(operation, err)
}

// Get performs a point read. An absent record is (nil, nil), not an error.
func (s *TableStore) Get(ctx context.Context, key keys.Key) (storagemodels.Item, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.table,
		Key:       keyAttrs(key),
	})
	if err != nil {
		return nil, translate("get", "", err)
	}
	if out.Item == nil {
		s.log.Debug("record not found",
			zap.String("partkey", key.Partition),
			zap.String("sortkey", key.Sort),
		)
		return nil, nil
	}
	return out.Item, nil
}

// Put writes the full record. With cond.MustNotExist the write fails with
// ConditionFailed if the key is already taken.
func (s *TableStore) Put(ctx context.Context, key keys.Key, item storagemodels.Item, cond *datastore.Condition) error {
	input := &sdk.PutItemInput{
		TableName: &s.table,
		Item:      item,
	}
	condExpr, names, values := conditionExpr(cond)
	if condExpr != "" {
		input.ConditionExpression = &condExpr
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	_, err := s.client.PutItem(ctx, input)
	return translate("put", condExpr, err)
}

// Delete physically removes the record. The standard flow never calls this
// on live entities; it serves hard-delete maintenance paths.
func (s *TableStore) Delete(ctx context.Context, key keys.Key, cond *datastore.Condition) error {
	input := &sdk.DeleteItemInput{
		TableName: &s.table,
		Key:       keyAttrs(key),
	}
	condExpr, names, values := conditionExpr(cond)
	if condExpr != "" {
		input.ConditionExpression = &condExpr
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	_, err := s.client.DeleteItem(ctx, input)
	return translate("delete", condExpr, err)
}

// Update applies a sparse change set. mode selects whether the pre- or
// post-update image comes back; callers use the old image to find stale
// file URLs after swapping in new ones.
func (s *TableStore) Update(ctx context.Context, key keys.Key, fields storagemodels.Item, cond *datastore.Condition, mode datastore.ReturnMode) (storagemodels.Item, error) {
	updateExpr, names, values, err := BuildUpdate(fields)
	if err != nil {
		return nil, err
	}

	input := &sdk.UpdateItemInput{
		TableName:                 &s.table,
		Key:                       keyAttrs(key),
		UpdateExpression:          &updateExpr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              returnValues(mode),
	}
	condExpr, condNames, condValues := conditionExpr(cond)
	if condExpr != "" {
		input.ConditionExpression = &condExpr
		for k, v := range condNames {
			input.ExpressionAttributeNames[k] = v
		}
		for k, v := range condValues {
			input.ExpressionAttributeValues[k] = v
		}
	}

	out, err := s.client.UpdateItem(ctx, input)
	if err != nil {
		return nil, translate("update", condExpr, err)
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	return out.Attributes, nil
}

func returnValues(mode datastore.ReturnMode) types.ReturnValue {
	switch mode {
	case datastore.ReturnOld:
		return types.ReturnValueAllOld
	case datastore.ReturnNew:
		return types.ReturnValueAllNew
	default:
		return types.ReturnValueNone
	}
}
