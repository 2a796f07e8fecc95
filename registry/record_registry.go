/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DecodeFunc takes a raw table item and returns the decoded entity.
type DecodeFunc func(item map[string]types.AttributeValue) (interface{}, error)

// recordRegistry maps a record_type tag (like "shop" or "product_variant")
// to its decode function.
var recordRegistry = make(map[string]DecodeFunc)

// RegisterDecoder registers a decode function for a given record_type.
// If a decoder is already registered for the tag, it panics to prevent
// accidental overrides.
func RegisterDecoder(recordType string, fn DecodeFunc) {
	if _, exists := recordRegistry[recordType]; exists {
		panic(fmt.Sprintf("record registry: decoder for record_type %q already registered", recordType))
	}
	recordRegistry[recordType] = fn
}

// DecoderFor returns the registered decode function for the given record_type.
// If no function is registered, it returns an error.
func DecoderFor(recordType string) (DecodeFunc, error) {
	fn, ok := recordRegistry[recordType]
	if !ok {
		return nil, fmt.Errorf("record registry: no decoder registered for record_type %q", recordType)
	}
	return fn, nil
}

// DecodeItem decodes a raw item using the decoder selected by its record_type
// attribute. Items without a registered decoder (or without the attribute at
// all) fall back to a generic map, so heterogeneous partitions can still be
// drained in full, e.g. for backups.
func DecodeItem(item map[string]types.AttributeValue) (interface{}, error) {
	var recordType string
	if attr, ok := item["record_type"]; ok {
		if err := attributevalue.Unmarshal(attr, &recordType); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record_type: %w", err)
		}
	}

	fn, err := DecoderFor(recordType)
	if err != nil {
		var generic map[string]interface{}
		if err := attributevalue.UnmarshalMap(item, &generic); err != nil {
			return nil, fmt.Errorf("failed to unmarshal generic item: %w", err)
		}
		return generic, nil
	}

	obj, err := fn(item)
	if err != nil {
		return nil, fmt.Errorf("failed to decode item with record_type %q: %w", recordType, err)
	}
	return obj, nil
}
