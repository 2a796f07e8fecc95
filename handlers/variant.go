/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/objstore"
	"github.com/suparena/shopstore/storagemodels"
)

type CreateVariantRequest struct {
	Title   string                        `validate:"required"`
	Options []storagemodels.VariantOption `validate:"required,min=1,dive"`
	Images  []*Upload
}

type UpdateVariantRequest struct {
	Title   *string
	Options []storagemodels.VariantOption `validate:"omitempty,min=1,dive"`

	// ImageURLs is the set of already-stored images the variant keeps.
	// Stored files missing from it are disposed of; freshly uploaded
	// Images are appended.
	ImageURLs *[]string
	Images    []*Upload
}

func (s *Service) uploadVariantImages(ctx context.Context, actor Identity, shopUUID, productUUID, variantUUID string, images []*Upload) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, image := range images {
		path, err := objstore.VariantImagePath(objstore.PathAttrs{
			OwnerUUID:   actor.OwnerUUID,
			ShopUUID:    shopUUID,
			ProductUUID: productUUID,
			OptionUUID:  variantUUID,
			Ext:         image.ext(),
		})
		if err != nil {
			return nil, err
		}
		url, err := s.Objects.Upload(ctx, path, image.Body, image.ContentType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// recomputeMinimalPrice re-derives the parent product's price as the
// minimum option price over its active variants, zero when none remain.
// Runs after every variant mutation.
func (s *Service) recomputeMinimalPrice(ctx context.Context, actor Identity, shopUUID, productUUID string) error {
	prefix, err := keys.Prefix(keys.KindProductVariant, map[string]string{
		"shop_uuid":    shopUUID,
		"product_uuid": productUUID,
	})
	if err != nil {
		return err
	}

	variants, err := listOf[storagemodels.ProductVariant](ctx, s, &datastore.Query{
		Partition:  prefix.Partition,
		SortPrefix: prefix.Sort,
		ActiveOnly: true,
	})
	if err != nil {
		return err
	}

	price := 0.0
	first := true
	for _, variant := range variants {
		for _, option := range variant.Options {
			if first || option.Price < price {
				price = option.Price
				first = false
			}
		}
	}

	attrs := map[string]string{"shop_uuid": shopUUID, "product_uuid": productUUID}
	_, err = applyUpdate(ctx, s, keys.KindProductBase, attrs,
		storagemodels.ProductBaseUpdate{Price: &price}, actor.UserUUID, datastore.ReturnNone)
	return err
}

func (s *Service) CreateVariant(ctx context.Context, actor Identity, shopUUID, productUUID string, req CreateVariantRequest) (*storagemodels.ProductVariant, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	variantUUID := s.NewUUID()
	variant := storagemodels.ProductVariant{
		ProductScopedBase: storagemodels.ProductScopedBase{
			ShopScopedBase: storagemodels.ShopScopedBase{
				OwnedBase: storagemodels.OwnedBase{
					EntityBase: storagemodels.EntityBase{
						UUID:       variantUUID,
						UserUUID:   actor.UserUUID,
						DateCreate: s.Now(),
						DateUpdate: s.Now(),
					},
					OwnerUUID: actor.OwnerUUID,
				},
				ShopUUID: shopUUID,
			},
			ProductUUID: productUUID,
		},
		Title:   req.Title,
		Options: req.Options,
	}

	if len(req.Images) > 0 {
		urls, err := s.uploadVariantImages(ctx, actor, shopUUID, productUUID, variantUUID, req.Images)
		if err != nil {
			return nil, err
		}
		variant.ImageURLs = urls
	}

	if err := putNew(ctx, s, variant); err != nil {
		return nil, err
	}

	if err := s.recomputeMinimalPrice(ctx, actor, shopUUID, productUUID); err != nil {
		return nil, err
	}
	return &variant, nil
}

func (s *Service) GetVariant(ctx context.Context, shopUUID, productUUID, variantUUID string) (*storagemodels.ProductVariant, error) {
	return getOne[storagemodels.ProductVariant](ctx, s, map[string]string{
		"shop_uuid":    shopUUID,
		"product_uuid": productUUID,
		"variant_uuid": variantUUID,
	})
}

func (s *Service) ListVariants(ctx context.Context, shopUUID, productUUID string) ([]storagemodels.ProductVariant, error) {
	prefix, err := keys.Prefix(keys.KindProductVariant, map[string]string{
		"shop_uuid":    shopUUID,
		"product_uuid": productUUID,
	})
	if err != nil {
		return nil, err
	}
	return listOf[storagemodels.ProductVariant](ctx, s, &datastore.Query{
		Partition:  prefix.Partition,
		SortPrefix: prefix.Sort,
		ActiveOnly: true,
	})
}

func (s *Service) UpdateVariant(ctx context.Context, actor Identity, shopUUID, productUUID, variantUUID string, req UpdateVariantRequest) (*storagemodels.ProductVariant, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	payload := storagemodels.ProductVariantUpdate{
		Title:   req.Title,
		Options: req.Options,
	}

	// A kept-image list means the caller is rewriting the image set:
	// stored files it no longer names get disposed of.
	if req.ImageURLs != nil {
		current, err := s.GetVariant(ctx, shopUUID, productUUID, variantUUID)
		if err != nil {
			return nil, err
		}
		if err := s.Objects.DeleteDiff(ctx, current.ImageURLs, *req.ImageURLs); err != nil {
			return nil, err
		}
		payload.ImageURLs = *req.ImageURLs
	}

	if len(req.Images) > 0 {
		urls, err := s.uploadVariantImages(ctx, actor, shopUUID, productUUID, variantUUID, req.Images)
		if err != nil {
			return nil, err
		}
		payload.ImageURLs = append(payload.ImageURLs, urls...)
	}

	attrs := map[string]string{
		"shop_uuid":    shopUUID,
		"product_uuid": productUUID,
		"variant_uuid": variantUUID,
	}
	if _, err := applyUpdate(ctx, s, keys.KindProductVariant, attrs, payload, actor.UserUUID, datastore.ReturnNone); err != nil {
		return nil, err
	}

	if err := s.recomputeMinimalPrice(ctx, actor, shopUUID, productUUID); err != nil {
		return nil, err
	}
	return s.GetVariant(ctx, shopUUID, productUUID, variantUUID)
}

// DeleteVariant soft-deletes the variant and re-derives the parent price.
func (s *Service) DeleteVariant(ctx context.Context, actor Identity, shopUUID, productUUID, variantUUID string) error {
	key, err := keys.Make(keys.KindProductVariant, map[string]string{
		"shop_uuid":    shopUUID,
		"product_uuid": productUUID,
		"variant_uuid": variantUUID,
	})
	if err != nil {
		return err
	}
	if err := datastore.Deactivate(ctx, s.Store, keys.KindProductVariant, key, actor.UserUUID); err != nil {
		return err
	}
	return s.recomputeMinimalPrice(ctx, actor, shopUUID, productUUID)
}
