/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/objstore"
	"github.com/suparena/shopstore/storagemodels"
)

// Default category every new shop gets, so product listings are never
// completely empty of grouping.
const (
	defaultCategoryTitle       = "Все предложения"
	defaultCategoryDescription = "Категория товаров по умолчанию."
)

type CreateShopRequest struct {
	Title       string `validate:"required"`
	Description string
	ShopType    string
	Logo        *Upload
}

type UpdateShopRequest struct {
	Title        *string
	Description  *string
	ShopType     *string
	TemplateUUID *string
	Logo         *Upload
}

// trialExpiry is the end of a new shop's trial subscription.
func (s *Service) trialExpiry() string {
	return time.Now().UTC().AddDate(0, 0, s.TrialDays).Format(time.RFC3339)
}

func (s *Service) uploadShopLogo(ctx context.Context, shopUUID string, logo *Upload) (string, error) {
	path, err := objstore.ShopLogoPath(objstore.PathAttrs{ShopUUID: shopUUID, Ext: logo.ext()})
	if err != nil {
		return "", err
	}
	return s.Objects.Upload(ctx, path, logo.Body, logo.ContentType)
}

// CreateShop assembles a new shop with an active trial subscription and
// creates its default product category. The two writes are not atomic; a
// failure in between leaves a shop without the default category.
func (s *Service) CreateShop(ctx context.Context, actor Identity, req CreateShopRequest) (*storagemodels.Shop, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	shop := storagemodels.Shop{
		OwnedBase: storagemodels.OwnedBase{
			EntityBase: storagemodels.EntityBase{
				UUID:       s.NewUUID(),
				UserUUID:   actor.UserUUID,
				DateCreate: s.Now(),
				DateUpdate: s.Now(),
				// New shops stay hidden until explicitly activated.
				Inactive: true,
			},
			OwnerUUID: actor.OwnerUUID,
		},
		Title:                req.Title,
		Description:          req.Description,
		ShopType:             req.ShopType,
		SubscriptionActive:   true,
		SubscriptionExpireAt: s.trialExpiry(),
	}

	if req.Logo != nil {
		url, err := s.uploadShopLogo(ctx, shop.UUID, req.Logo)
		if err != nil {
			return nil, err
		}
		shop.LogoURL = url
	}

	if err := putNew(ctx, s, shop); err != nil {
		return nil, err
	}

	zero := 0
	if _, err := s.CreateCategory(ctx, actor, shop.UUID, CreateCategoryRequest{
		Title:       defaultCategoryTitle,
		Description: defaultCategoryDescription,
		SortIndex:   &zero,
	}); err != nil {
		return nil, err
	}

	s.Log.Info("shop created",
		zap.String("shop_uuid", shop.UUID),
		zap.String("owner_uuid", shop.OwnerUUID),
	)
	return &shop, nil
}

func (s *Service) GetShop(ctx context.Context, shopUUID string) (*storagemodels.Shop, error) {
	return getOne[storagemodels.Shop](ctx, s, map[string]string{"shop_uuid": shopUUID})
}

// ListShops returns every shop the owner has, soft-deleted ones included,
// so the owner can see the full history.
func (s *Service) ListShops(ctx context.Context, actor Identity) ([]storagemodels.Shop, error) {
	return listOf[storagemodels.Shop](ctx, s, &datastore.Query{
		Partition: "shop",
		OwnerUUID: actor.OwnerUUID,
	})
}

// UpdateShop applies a sparse update. A replaced logo is uploaded first;
// the stale file is disposed of in the background once the record has
// swapped over.
func (s *Service) UpdateShop(ctx context.Context, actor Identity, shopUUID string, req UpdateShopRequest) (*storagemodels.Shop, error) {
	payload := storagemodels.ShopUpdate{
		Title:        req.Title,
		Description:  req.Description,
		ShopType:     req.ShopType,
		TemplateUUID: req.TemplateUUID,
	}
	// The empty-payload check runs before the upload so a no-op request
	// causes no object-storage traffic at all.
	if req.Logo == nil {
		if _, err := storagemodels.UpdateFields(payload); err != nil {
			return nil, err
		}
	} else {
		url, err := s.uploadShopLogo(ctx, shopUUID, req.Logo)
		if err != nil {
			return nil, err
		}
		payload.LogoURL = &url
	}

	attrs := map[string]string{"shop_uuid": shopUUID}
	old, err := applyUpdate(ctx, s, keys.KindShop, attrs, payload, actor.UserUUID, datastore.ReturnOld)
	if err != nil {
		return nil, err
	}

	if req.Logo != nil {
		if stale := stringAttr(old, "logo_url"); stale != "" {
			s.Objects.ForgetDelete(stale)
		}
	}

	return s.GetShop(ctx, shopUUID)
}

// DeleteShop soft-deletes the shop, owner predicate enforced.
func (s *Service) DeleteShop(ctx context.Context, actor Identity, shopUUID string) error {
	key, err := keys.Make(keys.KindShop, map[string]string{"shop_uuid": shopUUID})
	if err != nil {
		return err
	}
	if err := datastore.DeactivateOwned(ctx, s.Store, keys.KindShop, key, actor.UserUUID); err != nil {
		return err
	}
	s.Log.Info("shop deactivated",
		zap.String("partkey", key.Partition),
		zap.String("sortkey", key.Sort),
	)
	return nil
}

// ShopOwner resolves the owner of a shop, for routes that authorize child
// entities through their parent.
func (s *Service) ShopOwner(ctx context.Context, shopUUID string) (string, error) {
	shop, err := s.GetShop(ctx, shopUUID)
	if err != nil {
		return "", err
	}
	return shop.OwnerUUID, nil
}
