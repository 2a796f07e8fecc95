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
	registry.RegisterDecoder("template", decoderFor[Template]())
}

// Template is a storefront theme shop owners can pick. Templates with an
// exclusive owner are only listed for that owner.
type Template struct {
	EntityBase

	Title              string `dynamodbav:"title" json:"title"`
	Description        string `dynamodbav:"description,omitempty" json:"description,omitempty"`
	PhotoURL           string `dynamodbav:"photo_url" json:"photo_url"`
	TemplateURL        string `dynamodbav:"template_url" json:"template_url"`
	ExclusiveOwnerUUID string `dynamodbav:"exclusive_owner_uuid,omitempty" json:"exclusive_owner_uuid,omitempty"`
}

func (t Template) Kind() keys.Kind { return keys.KindTemplate }

func (t Template) KeyAttrs() map[string]string {
	return map[string]string{"uuid": t.UUID}
}

func (t Template) Validate() error {
	if err := t.EntityBase.validate("template"); err != nil {
		return err
	}
	if t.Title == "" {
		return errors.NewSchemaMismatchError("template", "title")
	}
	return nil
}

// TemplateUpdate is the sparse update shape for a template.
type TemplateUpdate struct {
	Title              *string `dynamodbav:"title,omitempty"`
	Description        *string `dynamodbav:"description,omitempty"`
	PhotoURL           *string `dynamodbav:"photo_url,omitempty"`
	TemplateURL        *string `dynamodbav:"template_url,omitempty"`
	ExclusiveOwnerUUID *string `dynamodbav:"exclusive_owner_uuid,omitempty"`
	Inactive           *bool   `dynamodbav:"inactive,omitempty"`
}
