/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/registry"
)

// Item is the flat attribute map a record takes at rest.
type Item = map[string]types.AttributeValue

// Record is implemented by every entity persisted in a table. Kind selects
// the key template and record_type tag; KeyAttrs binds the template's
// placeholders to the entity's identifying attributes. The derived key is
// immutable: updates never regenerate it.
type Record interface {
	Kind() keys.Kind
	KeyAttrs() map[string]string
	Validate() error
}

// Now returns the current UTC time in the ISO form records store.
func Now() string {
	return strfmt.DateTime(time.Now().UTC()).String()
}

// EntityBase carries the provenance fields present on every mutable entity.
type EntityBase struct {
	UUID       string `dynamodbav:"uuid_" json:"uuid"`
	UserUUID   string `dynamodbav:"user_uuid" json:"user_uuid"`
	DateCreate string `dynamodbav:"date_create" json:"date_create"`
	DateUpdate string `dynamodbav:"date_update" json:"date_update"`
	Inactive   bool   `dynamodbav:"inactive" json:"inactive"`
}

func (b EntityBase) validate(kind string) error {
	if b.UUID == "" {
		return errors.NewSchemaMismatchError(kind, "uuid_")
	}
	if b.UserUUID == "" {
		return errors.NewSchemaMismatchError(kind, "user_uuid")
	}
	return nil
}

// OwnedBase adds the ownership attribute the soft-delete guard checks.
type OwnedBase struct {
	EntityBase
	OwnerUUID string `dynamodbav:"owner_uuid" json:"owner_uuid"`
}

func (o OwnedBase) validate(kind string) error {
	if err := o.EntityBase.validate(kind); err != nil {
		return err
	}
	if o.OwnerUUID == "" {
		return errors.NewSchemaMismatchError(kind, "owner_uuid")
	}
	return nil
}

// ShopScopedBase is shared by entities that belong to one shop.
type ShopScopedBase struct {
	OwnedBase
	ShopUUID string `dynamodbav:"shop_uuid" json:"shop_uuid"`
}

func (s ShopScopedBase) validate(kind string) error {
	if err := s.OwnedBase.validate(kind); err != nil {
		return err
	}
	if s.ShopUUID == "" {
		return errors.NewSchemaMismatchError(kind, "shop_uuid")
	}
	return nil
}

// ProductScopedBase is shared by a product's child entities.
type ProductScopedBase struct {
	ShopScopedBase
	ProductUUID string `dynamodbav:"product_uuid" json:"product_uuid"`
}

func (p ProductScopedBase) validate(kind string) error {
	if err := p.ShopScopedBase.validate(kind); err != nil {
		return err
	}
	if p.ProductUUID == "" {
		return errors.NewSchemaMismatchError(kind, "product_uuid")
	}
	return nil
}

// Encode converts an entity to its flat storage form: all non-empty fields,
// plus the derived partition/sort key and the kind's record_type tag when it
// defines one. Fields left unset are omitted entirely, never written as
// nulls, so the record stays compatible with sparse updates.
func Encode(rec Record) (keys.Key, Item, error) {
	if err := rec.Validate(); err != nil {
		return keys.Key{}, nil, err
	}
	key, err := keys.Make(rec.Kind(), rec.KeyAttrs())
	if err != nil {
		return keys.Key{}, nil, err
	}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return keys.Key{}, nil, fmt.Errorf("failed to marshal %s record: %w", rec.Kind(), err)
	}
	stripNulls(item)

	item[keys.PartKeyAttr] = &types.AttributeValueMemberS{Value: key.Partition}
	item[keys.SortKeyAttr] = &types.AttributeValueMemberS{Value: key.Sort}
	if rt := keys.RecordType(rec.Kind()); rt != "" {
		item[keys.RecordTypeAttr] = &types.AttributeValueMemberS{Value: rt}
	}
	return key, item, nil
}

// Decode converts a flat storage item back into a typed entity. Attributes
// the type does not declare are ignored for forward compatibility; missing
// required fields surface as a SchemaMismatchError via Validate.
func Decode[T Record](item Item) (*T, error) {
	var out T
	if err := attributevalue.UnmarshalMap(item, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s record: %w", out.Kind(), err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFields marshals a sparse update payload into the set of changed
// attributes. Payload types use pointer fields with omitempty tags, so a nil
// field never reaches the change set. An empty change set fails with
// ErrNoUpdateData so callers can short-circuit before any side effects.
func UpdateFields(payload interface{}) (Item, error) {
	item, err := attributevalue.MarshalMap(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update payload: %w", err)
	}
	stripNulls(item)
	if len(item) == 0 {
		return nil, errors.ErrNoUpdateData
	}
	return item, nil
}

// Stamp adds actor provenance to a change set and refreshes date_update.
// date_create is deliberately never part of a change set.
func Stamp(fields Item, userUUID string) Item {
	fields["user_uuid"] = &types.AttributeValueMemberS{Value: userUUID}
	fields["date_update"] = &types.AttributeValueMemberS{Value: Now()}
	return fields
}

func stripNulls(item Item) {
	for k, v := range item {
		if null, ok := v.(*types.AttributeValueMemberNULL); ok && null.Value {
			delete(item, k)
		}
	}
}

func decoderFor[T Record]() registry.DecodeFunc {
	return func(item map[string]types.AttributeValue) (interface{}, error) {
		return Decode[T](item)
	}
}
