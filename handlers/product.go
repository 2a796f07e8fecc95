/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/objstore"
	"github.com/suparena/shopstore/storagemodels"
)

type CreateProductRequest struct {
	Title         string `validate:"required"`
	Description   string
	CategoryUUIDs []string `validate:"required,min=1"`
	Image         *Upload  `validate:"required"`
}

type UpdateProductRequest struct {
	Title         *string
	Description   *string
	CategoryUUIDs *[]string
	Image         *Upload
}

func (s *Service) uploadProductImage(ctx context.Context, actor Identity, shopUUID, productUUID string, image *Upload) (string, error) {
	path, err := objstore.ProductImagePath(objstore.PathAttrs{
		OwnerUUID:   actor.OwnerUUID,
		ShopUUID:    shopUUID,
		ProductUUID: productUUID,
		Ext:         image.ext(),
	})
	if err != nil {
		return "", err
	}
	return s.Objects.Upload(ctx, path, image.Body, image.ContentType)
}

// CreateProduct stores the product's base record. The image is mandatory;
// the derived price stays unset until the first variant arrives.
func (s *Service) CreateProduct(ctx context.Context, actor Identity, shopUUID string, req CreateProductRequest) (*storagemodels.ProductBase, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	productUUID := s.NewUUID()
	imageURL, err := s.uploadProductImage(ctx, actor, shopUUID, productUUID, req.Image)
	if err != nil {
		return nil, err
	}

	product := storagemodels.ProductBase{
		ProductScopedBase: storagemodels.ProductScopedBase{
			ShopScopedBase: storagemodels.ShopScopedBase{
				OwnedBase: storagemodels.OwnedBase{
					EntityBase: storagemodels.EntityBase{
						UUID:       productUUID,
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
		Title:         req.Title,
		Description:   req.Description,
		CategoryUUIDs: req.CategoryUUIDs,
		ImageURL:      imageURL,
	}

	if err := putNew(ctx, s, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Service) GetProduct(ctx context.Context, shopUUID, productUUID string) (*storagemodels.ProductBase, error) {
	return getOne[storagemodels.ProductBase](ctx, s, map[string]string{
		"shop_uuid":    shopUUID,
		"product_uuid": productUUID,
	})
}

// ListProducts returns the shop's active products. The record_type filter
// keeps variants and extra kits, which share the partition, out of the
// listing.
func (s *Service) ListProducts(ctx context.Context, shopUUID string) ([]storagemodels.ProductBase, error) {
	return listOf[storagemodels.ProductBase](ctx, s, &datastore.Query{
		Partition:  "product_" + shopUUID,
		RecordType: keys.RecordType(keys.KindProductBase),
		ActiveOnly: true,
	})
}

func (s *Service) UpdateProduct(ctx context.Context, actor Identity, shopUUID, productUUID string, req UpdateProductRequest) (*storagemodels.ProductBase, error) {
	payload := storagemodels.ProductBaseUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.CategoryUUIDs != nil {
		payload.CategoryUUIDs = *req.CategoryUUIDs
	}
	if req.Image == nil {
		if _, err := storagemodels.UpdateFields(payload); err != nil {
			return nil, err
		}
	} else {
		url, err := s.uploadProductImage(ctx, actor, shopUUID, productUUID, req.Image)
		if err != nil {
			return nil, err
		}
		payload.ImageURL = &url
	}

	attrs := map[string]string{"shop_uuid": shopUUID, "product_uuid": productUUID}
	old, err := applyUpdate(ctx, s, keys.KindProductBase, attrs, payload, actor.UserUUID, datastore.ReturnOld)
	if err != nil {
		return nil, err
	}

	if req.Image != nil {
		if stale := stringAttr(old, "image_url"); stale != "" {
			s.Objects.ForgetDelete(stale)
		}
	}

	return s.GetProduct(ctx, shopUUID, productUUID)
}

// DeleteProduct cascades over the product's whole sort-key prefix: base
// record, variants, and extra kits all flip inactive, one conditional
// update each. Not atomic; a rerun after interruption finishes the job.
func (s *Service) DeleteProduct(ctx context.Context, actor Identity, shopUUID, productUUID string) error {
	n, err := datastore.DeactivateChildren(ctx, s.Store, &datastore.Query{
		Partition:  "product_" + shopUUID,
		SortPrefix: productUUID,
		ActiveOnly: true,
	}, actor.UserUUID)
	if err != nil {
		return err
	}
	s.Log.Info("product deactivated",
		zap.String("shop_uuid", shopUUID),
		zap.String("product_uuid", productUUID),
		zap.Int("records", n),
	)
	return nil
}
