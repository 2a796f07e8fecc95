/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/storagemodels"
)

type CreateExtraKitRequest struct {
	Title  string   `validate:"required"`
	Price  float64  `validate:"gte=0"`
	Addons []string `validate:"required,min=1"`
}

type UpdateExtraKitRequest struct {
	Title  *string
	Price  *float64 `validate:"omitempty,gte=0"`
	Addons []string `validate:"omitempty,min=1"`
}

func (s *Service) CreateExtraKit(ctx context.Context, actor Identity, shopUUID, productUUID string, req CreateExtraKitRequest) (*storagemodels.ProductExtraKit, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	kit := storagemodels.ProductExtraKit{
		ProductScopedBase: storagemodels.ProductScopedBase{
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
			ProductUUID: productUUID,
		},
		Title:  req.Title,
		Price:  req.Price,
		Addons: req.Addons,
	}

	if err := putNew(ctx, s, kit); err != nil {
		return nil, err
	}
	return &kit, nil
}

func (s *Service) GetExtraKit(ctx context.Context, shopUUID, productUUID, extraKitUUID string) (*storagemodels.ProductExtraKit, error) {
	return getOne[storagemodels.ProductExtraKit](ctx, s, map[string]string{
		"shop_uuid":      shopUUID,
		"product_uuid":   productUUID,
		"extra_kit_uuid": extraKitUUID,
	})
}

func (s *Service) ListExtraKits(ctx context.Context, shopUUID, productUUID string) ([]storagemodels.ProductExtraKit, error) {
	prefix, err := keys.Prefix(keys.KindProductExtraKit, map[string]string{
		"shop_uuid":    shopUUID,
		"product_uuid": productUUID,
	})
	if err != nil {
		return nil, err
	}
	return listOf[storagemodels.ProductExtraKit](ctx, s, &datastore.Query{
		Partition:  prefix.Partition,
		SortPrefix: prefix.Sort,
		ActiveOnly: true,
	})
}

func (s *Service) UpdateExtraKit(ctx context.Context, actor Identity, shopUUID, productUUID, extraKitUUID string, req UpdateExtraKitRequest) (*storagemodels.ProductExtraKit, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	attrs := map[string]string{
		"shop_uuid":      shopUUID,
		"product_uuid":   productUUID,
		"extra_kit_uuid": extraKitUUID,
	}
	payload := storagemodels.ProductExtraKitUpdate{
		Title:  req.Title,
		Price:  req.Price,
		Addons: req.Addons,
	}
	if _, err := applyUpdate(ctx, s, keys.KindProductExtraKit, attrs, payload, actor.UserUUID, datastore.ReturnNone); err != nil {
		return nil, err
	}
	return s.GetExtraKit(ctx, shopUUID, productUUID, extraKitUUID)
}

func (s *Service) DeleteExtraKit(ctx context.Context, actor Identity, shopUUID, productUUID, extraKitUUID string) error {
	key, err := keys.Make(keys.KindProductExtraKit, map[string]string{
		"shop_uuid":      shopUUID,
		"product_uuid":   productUUID,
		"extra_kit_uuid": extraKitUUID,
	})
	if err != nil {
		return err
	}
	return datastore.Deactivate(ctx, s.Store, keys.KindProductExtraKit, key, actor.UserUUID)
}
