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
	registry.RegisterDecoder("shop", decoderFor[Shop]())
}

// Shop is the top-level tenant entity. A new shop starts inactive with an
// active trial subscription; deleting one requires the owner predicate.
type Shop struct {
	OwnedBase

	Title                string  `dynamodbav:"title" json:"title"`
	Description          string  `dynamodbav:"description,omitempty" json:"description,omitempty"`
	LogoURL              string  `dynamodbav:"logo_url,omitempty" json:"logo_url,omitempty"`
	ShopType             string  `dynamodbav:"shop_type,omitempty" json:"shop_type,omitempty"`
	TemplateUUID         string  `dynamodbav:"template_uuid,omitempty" json:"template_uuid,omitempty"`
	SubscriptionActive   bool    `dynamodbav:"subscription_active" json:"subscription_active"`
	SubscriptionExpireAt string  `dynamodbav:"subscription_expire_at,omitempty" json:"subscription_expire_at,omitempty"`
}

func (s Shop) Kind() keys.Kind { return keys.KindShop }

func (s Shop) KeyAttrs() map[string]string {
	return map[string]string{"shop_uuid": s.UUID}
}

func (s Shop) Validate() error {
	if err := s.OwnedBase.validate("shop"); err != nil {
		return err
	}
	if s.Title == "" {
		return errors.NewSchemaMismatchError("shop", "title")
	}
	return nil
}

// ShopUpdate is the sparse update shape for a shop: nil fields are left
// untouched at rest.
type ShopUpdate struct {
	Title                *string `dynamodbav:"title,omitempty"`
	Description          *string `dynamodbav:"description,omitempty"`
	LogoURL              *string `dynamodbav:"logo_url,omitempty"`
	ShopType             *string `dynamodbav:"shop_type,omitempty"`
	TemplateUUID         *string `dynamodbav:"template_uuid,omitempty"`
	SubscriptionActive   *bool   `dynamodbav:"subscription_active,omitempty"`
	SubscriptionExpireAt *string `dynamodbav:"subscription_expire_at,omitempty"`
	Inactive             *bool   `dynamodbav:"inactive,omitempty"`
}
