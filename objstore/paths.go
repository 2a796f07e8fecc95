/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package objstore

import (
	"github.com/google/uuid"

	"github.com/suparena/shopstore/keys"
)

// File path templates, one per image-bearing entity kind. Paths are
// namespaced by owner and shop so bucket listings stay per-tenant.
const (
	templatePreviewPath = "templates_preview/{template_uuid}.{ext}"
	shopLogoPath        = "shop_logos/{shop_uuid}/{file_uuid}.{ext}"
	categoryImagePath   = "{owner_uuid}/{shop_uuid}/product_categories/{file_uuid}.{ext}"
	productImagePath    = "{owner_uuid}/{shop_uuid}/products/{product_uuid}/{file_uuid}.{ext}"
	variantImagePath    = "{owner_uuid}/{shop_uuid}/products/{product_uuid}/{option_uuid}/{file_uuid}.{ext}"
	rubricImagePath     = "{owner_uuid}/{shop_uuid}/infopages_rubrics/{file_uuid}.{ext}"
	postImagePath       = "{owner_uuid}/{shop_uuid}/infopages_posts/{post_uuid}/{file_uuid}.{ext}"
	backupPath          = "{owner_uuid}/{shop_uuid}/backups/{file_uuid}.json"
)

// PathAttrs binds a path template's placeholders. A fresh file_uuid is
// generated on expansion, so re-uploading never overwrites the previous
// file; the stale one is deleted separately.
type PathAttrs struct {
	OwnerUUID    string
	ShopUUID     string
	ProductUUID  string
	OptionUUID   string
	PostUUID     string
	TemplateUUID string
	Ext          string
}

func (a PathAttrs) bindings() map[string]string {
	return map[string]string{
		"owner_uuid":    a.OwnerUUID,
		"shop_uuid":     a.ShopUUID,
		"product_uuid":  a.ProductUUID,
		"option_uuid":   a.OptionUUID,
		"post_uuid":     a.PostUUID,
		"template_uuid": a.TemplateUUID,
		"ext":           a.Ext,
		"file_uuid":     uuid.NewString(),
	}
}

func TemplatePreviewPath(a PathAttrs) (string, error) {
	return keys.Expand("template_preview_path", templatePreviewPath, a.bindings())
}

func ShopLogoPath(a PathAttrs) (string, error) {
	return keys.Expand("shop_logo_path", shopLogoPath, a.bindings())
}

func CategoryImagePath(a PathAttrs) (string, error) {
	return keys.Expand("category_image_path", categoryImagePath, a.bindings())
}

func ProductImagePath(a PathAttrs) (string, error) {
	return keys.Expand("product_image_path", productImagePath, a.bindings())
}

func VariantImagePath(a PathAttrs) (string, error) {
	return keys.Expand("variant_image_path", variantImagePath, a.bindings())
}

func RubricImagePath(a PathAttrs) (string, error) {
	return keys.Expand("rubric_image_path", rubricImagePath, a.bindings())
}

func PostImagePath(a PathAttrs) (string, error) {
	return keys.Expand("post_image_path", postImagePath, a.bindings())
}

func BackupPath(a PathAttrs) (string, error) {
	return keys.Expand("backup_path", backupPath, a.bindings())
}
