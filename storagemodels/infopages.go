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
	registry.RegisterDecoder("infopages_rubric", decoderFor[InfopagesRubric]())
	registry.RegisterDecoder("infopages_posts", decoderFor[InfopagesPost]())
}

// InfopagesRubric is a heading that groups a shop's informational posts.
type InfopagesRubric struct {
	ShopScopedBase

	Title       string `dynamodbav:"title" json:"title"`
	Description string `dynamodbav:"description,omitempty" json:"description,omitempty"`
	ImageURL    string `dynamodbav:"image_url,omitempty" json:"image_url,omitempty"`
	HexColor    string `dynamodbav:"hex_color,omitempty" json:"hex_color,omitempty"`
	SortIndex   int    `dynamodbav:"sort_index" json:"sort_index"`
}

func (r InfopagesRubric) Kind() keys.Kind { return keys.KindInfopagesRubric }

func (r InfopagesRubric) KeyAttrs() map[string]string {
	return map[string]string{"shop_uuid": r.ShopUUID, "rubric_uuid": r.UUID}
}

func (r InfopagesRubric) Validate() error {
	if err := r.ShopScopedBase.validate("infopages_rubric"); err != nil {
		return err
	}
	if r.Title == "" {
		return errors.NewSchemaMismatchError("infopages_rubric", "title")
	}
	return nil
}

// InfopagesRubricUpdate is the sparse update shape for a rubric.
type InfopagesRubricUpdate struct {
	Title       *string `dynamodbav:"title,omitempty"`
	Description *string `dynamodbav:"description,omitempty"`
	ImageURL    *string `dynamodbav:"image_url,omitempty"`
	HexColor    *string `dynamodbav:"hex_color,omitempty"`
	SortIndex   *int    `dynamodbav:"sort_index,omitempty"`
	Inactive    *bool   `dynamodbav:"inactive,omitempty"`
}

// InfopagesPost is an informational page shown under a rubric.
type InfopagesPost struct {
	ShopScopedBase

	Title       string   `dynamodbav:"title" json:"title"`
	Description string   `dynamodbav:"description" json:"description"`
	RubricUUID  string   `dynamodbav:"rubric_uuid" json:"rubric_uuid"`
	ImageURLs   []string `dynamodbav:"image_urls,omitempty" json:"image_urls,omitempty"`
}

func (p InfopagesPost) Kind() keys.Kind { return keys.KindInfopagesPost }

func (p InfopagesPost) KeyAttrs() map[string]string {
	return map[string]string{"shop_uuid": p.ShopUUID, "post_uuid": p.UUID}
}

func (p InfopagesPost) Validate() error {
	if err := p.ShopScopedBase.validate("infopages_posts"); err != nil {
		return err
	}
	if p.Title == "" {
		return errors.NewSchemaMismatchError("infopages_posts", "title")
	}
	return nil
}

// InfopagesPostUpdate is the sparse update shape for a post.
type InfopagesPostUpdate struct {
	Title       *string  `dynamodbav:"title,omitempty"`
	Description *string  `dynamodbav:"description,omitempty"`
	RubricUUID  *string  `dynamodbav:"rubric_uuid,omitempty"`
	ImageURLs   []string `dynamodbav:"image_urls,omitempty"`
	Inactive    *bool    `dynamodbav:"inactive,omitempty"`
}
