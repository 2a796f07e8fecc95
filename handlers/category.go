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

type CreateCategoryRequest struct {
	Title       string `validate:"required"`
	Description string
	HexColor    string `validate:"omitempty,hexcolor"`
	SortIndex   *int
	Image       *Upload
}

type UpdateCategoryRequest struct {
	Title       *string
	Description *string
	HexColor    *string `validate:"omitempty,hexcolor"`
	SortIndex   *int
	Image       *Upload
}

func (s *Service) uploadCategoryImage(ctx context.Context, actor Identity, shopUUID string, image *Upload) (string, error) {
	path, err := objstore.CategoryImagePath(objstore.PathAttrs{
		OwnerUUID: actor.OwnerUUID,
		ShopUUID:  shopUUID,
		Ext:       image.ext(),
	})
	if err != nil {
		return "", err
	}
	return s.Objects.Upload(ctx, path, image.Body, image.ContentType)
}

func (s *Service) CreateCategory(ctx context.Context, actor Identity, shopUUID string, req CreateCategoryRequest) (*storagemodels.ProductCategory, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	category := storagemodels.ProductCategory{
		ShopScopedBase: storagemodels.ShopScopedBase{
			OwnedBase: storagemodels.OwnedBase{
				EntityBase: storagemodels.EntityBase{
					UUID:       s.NewUUID(),
					UserUUID:   actor.UserUUID,
					DateCreate: s.Now(),
					DateUpdate: s.Now(),
				},
				OwnerUUID: actor.OwnerUUID,
			},
			ShopUUID: shopUUID,
		},
		Title:       req.Title,
		Description: req.Description,
		HexColor:    req.HexColor,
	}
	if req.SortIndex != nil {
		category.SortIndex = *req.SortIndex
	}

	if req.Image != nil {
		url, err := s.uploadCategoryImage(ctx, actor, shopUUID, req.Image)
		if err != nil {
			return nil, err
		}
		category.ImageURL = url
	}

	if err := putNew(ctx, s, category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Service) GetCategory(ctx context.Context, shopUUID, categoryUUID string) (*storagemodels.ProductCategory, error) {
	return getOne[storagemodels.ProductCategory](ctx, s, map[string]string{
		"shop_uuid": shopUUID,
		"uuid":      categoryUUID,
	})
}

func (s *Service) ListCategories(ctx context.Context, shopUUID string) ([]storagemodels.ProductCategory, error) {
	return listOf[storagemodels.ProductCategory](ctx, s, &datastore.Query{
		Partition:  "product_category_" + shopUUID,
		ActiveOnly: true,
	})
}

func (s *Service) UpdateCategory(ctx context.Context, actor Identity, shopUUID, categoryUUID string, req UpdateCategoryRequest) (*storagemodels.ProductCategory, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	payload := storagemodels.ProductCategoryUpdate{
		Title:       req.Title,
		Description: req.Description,
		HexColor:    req.HexColor,
		SortIndex:   req.SortIndex,
	}
	if req.Image == nil {
		if _, err := storagemodels.UpdateFields(payload); err != nil {
			return nil, err
		}
	} else {
		url, err := s.uploadCategoryImage(ctx, actor, shopUUID, req.Image)
		if err != nil {
			return nil, err
		}
		payload.ImageURL = &url
	}

	attrs := map[string]string{"shop_uuid": shopUUID, "uuid": categoryUUID}
	old, err := applyUpdate(ctx, s, keys.KindProductCategory, attrs, payload, actor.UserUUID, datastore.ReturnOld)
	if err != nil {
		return nil, err
	}

	if req.Image != nil {
		if stale := stringAttr(old, "image_url"); stale != "" {
			s.Objects.ForgetDelete(stale)
		}
	}

	return s.GetCategory(ctx, shopUUID, categoryUUID)
}

// DeleteCategory soft-deletes without an owner predicate: category
// ownership is implied by the shop the route already authorized.
func (s *Service) DeleteCategory(ctx context.Context, actor Identity, shopUUID, categoryUUID string) error {
	key, err := keys.Make(keys.KindProductCategory, map[string]string{
		"shop_uuid": shopUUID,
		"uuid":      categoryUUID,
	})
	if err != nil {
		return err
	}
	return datastore.Deactivate(ctx, s.Store, keys.KindProductCategory, key, actor.UserUUID)
}
