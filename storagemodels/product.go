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
	registry.RegisterDecoder("product_base_info", decoderFor[ProductBase]())
	registry.RegisterDecoder("product_variant", decoderFor[ProductVariant]())
	registry.RegisterDecoder("product_extra_kits", decoderFor[ProductExtraKit]())
}

// ProductBase holds a product's base info. Price is derived: it tracks the
// minimal option price across the product's active variants.
type ProductBase struct {
	ProductScopedBase

	Title         string   `dynamodbav:"title" json:"title"`
	Description   string   `dynamodbav:"description" json:"description"`
	CategoryUUIDs []string `dynamodbav:"category_uuids" json:"category_uuids"`
	ImageURL      string   `dynamodbav:"image_url" json:"image_url"`
	Price         *float64 `dynamodbav:"price,omitempty" json:"price,omitempty"`
}

func (p ProductBase) Kind() keys.Kind { return keys.KindProductBase }

func (p ProductBase) KeyAttrs() map[string]string {
	return map[string]string{"shop_uuid": p.ShopUUID, "product_uuid": p.ProductUUID}
}

func (p ProductBase) Validate() error {
	if err := p.ProductScopedBase.validate("product_base_info"); err != nil {
		return err
	}
	if p.Title == "" {
		return errors.NewSchemaMismatchError("product_base_info", "title")
	}
	return nil
}

// ProductBaseUpdate is the sparse update shape for product base info.
type ProductBaseUpdate struct {
	Title         *string  `dynamodbav:"title,omitempty"`
	Description   *string  `dynamodbav:"description,omitempty"`
	CategoryUUIDs []string `dynamodbav:"category_uuids,omitempty"`
	ImageURL      *string  `dynamodbav:"image_url,omitempty"`
	Price         *float64 `dynamodbav:"price,omitempty"`
	Inactive      *bool    `dynamodbav:"inactive,omitempty"`
}

// VariantOption is one purchasable option inside a variant.
type VariantOption struct {
	Title    string  `dynamodbav:"title" json:"title"`
	Article  string  `dynamodbav:"article" json:"article"`
	Price    float64 `dynamodbav:"price" json:"price"`
	Weight   int     `dynamodbav:"weight" json:"weight"`
	Quantity int     `dynamodbav:"quantity" json:"quantity"`
}

// ProductVariant shares the product partition with the base record; its sort
// key carries the full "_variant_" discriminator.
type ProductVariant struct {
	ProductScopedBase

	Title     string          `dynamodbav:"title" json:"title"`
	Options   []VariantOption `dynamodbav:"options" json:"options"`
	ImageURLs []string        `dynamodbav:"image_urls,omitempty" json:"image_urls,omitempty"`
}

func (v ProductVariant) Kind() keys.Kind { return keys.KindProductVariant }

func (v ProductVariant) KeyAttrs() map[string]string {
	return map[string]string{
		"shop_uuid":    v.ShopUUID,
		"product_uuid": v.ProductUUID,
		"variant_uuid": v.UUID,
	}
}

func (v ProductVariant) Validate() error {
	if err := v.ProductScopedBase.validate("product_variant"); err != nil {
		return err
	}
	if v.Title == "" {
		return errors.NewSchemaMismatchError("product_variant", "title")
	}
	if len(v.Options) == 0 {
		return errors.NewSchemaMismatchError("product_variant", "options")
	}
	return nil
}

// ProductVariantUpdate is the sparse update shape for a variant.
type ProductVariantUpdate struct {
	Title     *string         `dynamodbav:"title,omitempty"`
	Options   []VariantOption `dynamodbav:"options,omitempty"`
	ImageURLs []string        `dynamodbav:"image_urls,omitempty"`
	Inactive  *bool           `dynamodbav:"inactive,omitempty"`
}

// ProductExtraKit is an add-on bundle sold with a product.
type ProductExtraKit struct {
	ProductScopedBase

	Title  string   `dynamodbav:"title" json:"title"`
	Price  float64  `dynamodbav:"price" json:"price"`
	Addons []string `dynamodbav:"addons" json:"addons"`
}

func (k ProductExtraKit) Kind() keys.Kind { return keys.KindProductExtraKit }

func (k ProductExtraKit) KeyAttrs() map[string]string {
	return map[string]string{
		"shop_uuid":      k.ShopUUID,
		"product_uuid":   k.ProductUUID,
		"extra_kit_uuid": k.UUID,
	}
}

func (k ProductExtraKit) Validate() error {
	if err := k.ProductScopedBase.validate("product_extra_kits"); err != nil {
		return err
	}
	if k.Title == "" {
		return errors.NewSchemaMismatchError("product_extra_kits", "title")
	}
	return nil
}

// ProductExtraKitUpdate is the sparse update shape for an extra kit.
type ProductExtraKitUpdate struct {
	Title    *string  `dynamodbav:"title,omitempty"`
	Price    *float64 `dynamodbav:"price,omitempty"`
	Addons   []string `dynamodbav:"addons,omitempty"`
	Inactive *bool    `dynamodbav:"inactive,omitempty"`
}
