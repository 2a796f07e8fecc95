/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/storagemodels"
)

// deactivation is a one-field change set plus actor provenance. Flipping
// inactive on an already-inactive record is a no-op apart from date_update,
// which keeps every soft delete idempotent.
func deactivation(actorUUID string) storagemodels.Item {
	fields := storagemodels.Item{
		"inactive": &types.AttributeValueMemberBOOL{Value: true},
	}
	return storagemodels.Stamp(fields, actorUUID)
}

// Deactivate soft-deletes the record without an ownership check. Used for
// child entities whose ownership is implied by their parent; only the actor
// identity is stamped. A missing record fails with NotFound.
func Deactivate(ctx context.Context, s Store, kind keys.Kind, key keys.Key, actorUUID string) error {
	cond := &Condition{MustExist: true}
	_, err := s.Update(ctx, key, deactivation(actorUUID), cond, ReturnNone)
	if errors.IsConditionFailed(err) {
		return errors.NewNotFoundError(string(kind), key.Partition, key.Sort)
	}
	return err
}

// DeactivateOwned soft-deletes the record only when its stored owner_uuid
// matches the acting user. An owner mismatch fails with IncorrectOwner and
// leaves the record untouched; a missing record fails with NotFound.
func DeactivateOwned(ctx context.Context, s Store, kind keys.Kind, key keys.Key, actorUUID string) error {
	cond := &Condition{MustExist: true, OwnerUUID: actorUUID}
	_, err := s.Update(ctx, key, deactivation(actorUUID), cond, ReturnNone)
	if !errors.IsConditionFailed(err) {
		return err
	}

	// The engine reports one failure kind for both causes. A point read
	// tells a missing record apart from someone else's.
	item, getErr := s.Get(ctx, key)
	if getErr != nil {
		return getErr
	}
	if item == nil {
		return errors.NewNotFoundError(string(kind), key.Partition, key.Sort)
	}
	return errors.NewIncorrectOwnerError(string(kind), actorUUID)
}

// DeactivateChildren soft-deletes every record matching q, one conditional
// update per record. The cascade is not atomic: an interruption leaves it
// partially applied, but because each step is idempotent a rerun with the
// same q completes it. Returns the number of records deactivated.
func DeactivateChildren(ctx context.Context, s Store, q *Query, actorUUID string) (int, error) {
	items, err := s.QueryPaged(ctx, q)
	if err != nil {
		return 0, err
	}

	done := 0
	for _, item := range items {
		key, err := recordKey(item)
		if err != nil {
			return done, err
		}
		cond := &Condition{MustExist: true}
		if _, err := s.Update(ctx, key, deactivation(actorUUID), cond, ReturnNone); err != nil {
			// A child removed mid-cascade is already gone; skip it.
			if errors.IsConditionFailed(err) {
				continue
			}
			return done, err
		}
		done++
	}
	return done, nil
}

func recordKey(item storagemodels.Item) (keys.Key, error) {
	pk, ok := item[keys.PartKeyAttr].(*types.AttributeValueMemberS)
	if !ok {
		return keys.Key{}, fmt.Errorf("record has no %s attribute", keys.PartKeyAttr)
	}
	sk, ok := item[keys.SortKeyAttr].(*types.AttributeValueMemberS)
	if !ok {
		return keys.Key{}, fmt.Errorf("record has no %s attribute", keys.SortKeyAttr)
	}
	return keys.Key{Partition: pk.Value, Sort: sk.Value}, nil
}
