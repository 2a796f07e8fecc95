/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/registry"
)

func init() {
	registry.RegisterDecoder("product_category", decoderFor[ProductCategory]())
}

// ProductCategory groups a shop's products. Every shop gets a default
// category at creation time.
type ProductCategory struct {
	ShopScopedBase

	Title       string `dynamodbav:"title" json:"title"`
	Description string `dynamodbav:"description,omitempty" json:"description,omitempty"`
	ImageURL    string `dynamodbav:"image_url,omitempty" json:"image_url,omitempty"`
	HexColor    string `dynamodbav:"hex_color,omitempty" json:"hex_color,omitempty"`
	SortIndex   int    `dynamodbav:"sort_index" json:"sort_index"`
}

func (c ProductCategory) Kind() keys.Kind { return keys.KindProductCategory }

func (c ProductCategory) KeyAttrs() map[string]string {
	return map[string]string{"shop_uuid": c.ShopUUID, "uuid": c.UUID}
}

func (c ProductCategory) Validate() error {
	if err := c.ShopScopedBase.validate("product_category"); err != nil {
		return err
	}
	if c.Title == "" {
		return errors.NewSchemaMismatchError("product_category", "title")
	}
	return nil
}

// ProductCategoryUpdate is the sparse update shape for a category.
type ProductCategoryUpdate struct {
	Title       *string `dynamodbav:"title,omitempty"`
	Description *string `dynamodbav:"description,omitempty"`
	ImageURL    *string `dynamodbav:"image_url,omitempty"`
	HexColor    *string `dynamodbav:"hex_color,omitempty"`
	SortIndex   *int    `dynamodbav:"sort_index,omitempty"`
	Inactive    *bool   `dynamodbav:"inactive,omitempty"`
}
