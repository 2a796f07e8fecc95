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

type CreateSelfPickupRequest struct {
	Title             string `validate:"required"`
	Description       string
	ContactPhone      string
	ContactTgUsername string
	Schedule          *storagemodels.PickupSchedule
}

type UpdateSelfPickupRequest struct {
	Title             *string
	Description       *string
	ContactPhone      *string
	ContactTgUsername *string
	Schedule          *storagemodels.PickupSchedule
}

type CreateDeliveryManualRequest struct {
	Title             string `validate:"required"`
	Description       string
	ContactPhone      string
	ContactTgUsername string
	Price             *float64 `validate:"omitempty,gte=0"`
}

type UpdateDeliveryManualRequest struct {
	Title             *string
	Description       *string
	ContactPhone      *string
	ContactTgUsername *string
	Price             *float64 `validate:"omitempty,gte=0"`
}

func (s *Service) CreateSelfPickup(ctx context.Context, actor Identity, shopUUID string, req CreateSelfPickupRequest) (*storagemodels.DeliverySelfPickup, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	pickup := storagemodels.DeliverySelfPickup{
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
		Title:             req.Title,
		Description:       req.Description,
		ContactPhone:      req.ContactPhone,
		ContactTgUsername: req.ContactTgUsername,
		Schedule:          req.Schedule,
	}

	if err := putNew(ctx, s, pickup); err != nil {
		return nil, err
	}
	return &pickup, nil
}

func (s *Service) GetSelfPickup(ctx context.Context, shopUUID, pickupUUID string) (*storagemodels.DeliverySelfPickup, error) {
	return getOne[storagemodels.DeliverySelfPickup](ctx, s, map[string]string{
		"shop_uuid":        shopUUID,
		"self_pickup_uuid": pickupUUID,
	})
}

func (s *Service) ListSelfPickups(ctx context.Context, shopUUID string) ([]storagemodels.DeliverySelfPickup, error) {
	prefix, err := keys.Prefix(keys.KindDeliveryPickup, map[string]string{"shop_uuid": shopUUID})
	if err != nil {
		return nil, err
	}
	return listOf[storagemodels.DeliverySelfPickup](ctx, s, &datastore.Query{
		Partition:  prefix.Partition,
		SortPrefix: prefix.Sort,
		ActiveOnly: true,
	})
}

func (s *Service) UpdateSelfPickup(ctx context.Context, actor Identity, shopUUID, pickupUUID string, req UpdateSelfPickupRequest) (*storagemodels.DeliverySelfPickup, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	attrs := map[string]string{"shop_uuid": shopUUID, "self_pickup_uuid": pickupUUID}
	payload := storagemodels.DeliverySelfPickupUpdate{
		Title:             req.Title,
		Description:       req.Description,
		ContactPhone:      req.ContactPhone,
		ContactTgUsername: req.ContactTgUsername,
		Schedule:          req.Schedule,
	}
	if _, err := applyUpdate(ctx, s, keys.KindDeliveryPickup, attrs, payload, actor.UserUUID, datastore.ReturnNone); err != nil {
		return nil, err
	}
	return s.GetSelfPickup(ctx, shopUUID, pickupUUID)
}

func (s *Service) DeleteSelfPickup(ctx context.Context, actor Identity, shopUUID, pickupUUID string) error {
	key, err := keys.Make(keys.KindDeliveryPickup, map[string]string{
		"shop_uuid":        shopUUID,
		"self_pickup_uuid": pickupUUID,
	})
	if err != nil {
		return err
	}
	return datastore.Deactivate(ctx, s.Store, keys.KindDeliveryPickup, key, actor.UserUUID)
}

func (s *Service) CreateDeliveryManual(ctx context.Context, actor Identity, shopUUID string, req CreateDeliveryManualRequest) (*storagemodels.DeliveryManual, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	manual := storagemodels.DeliveryManual{
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
		Title:             req.Title,
		Description:       req.Description,
		ContactPhone:      req.ContactPhone,
		ContactTgUsername: req.ContactTgUsername,
		Price:             req.Price,
	}

	if err := putNew(ctx, s, manual); err != nil {
		return nil, err
	}
	return &manual, nil
}

func (s *Service) GetDeliveryManual(ctx context.Context, shopUUID, manualUUID string) (*storagemodels.DeliveryManual, error) {
	return getOne[storagemodels.DeliveryManual](ctx, s, map[string]string{
		"shop_uuid":            shopUUID,
		"delivery_manual_uuid": manualUUID,
	})
}

func (s *Service) ListDeliveryManuals(ctx context.Context, shopUUID string) ([]storagemodels.DeliveryManual, error) {
	prefix, err := keys.Prefix(keys.KindDeliveryManual, map[string]string{"shop_uuid": shopUUID})
	if err != nil {
		return nil, err
	}
	return listOf[storagemodels.DeliveryManual](ctx, s, &datastore.Query{
		Partition:  prefix.Partition,
		SortPrefix: prefix.Sort,
		ActiveOnly: true,
	})
}

func (s *Service) UpdateDeliveryManual(ctx context.Context, actor Identity, shopUUID, manualUUID string, req UpdateDeliveryManualRequest) (*storagemodels.DeliveryManual, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	attrs := map[string]string{"shop_uuid": shopUUID, "delivery_manual_uuid": manualUUID}
	payload := storagemodels.DeliveryManualUpdate{
		Title:             req.Title,
		Description:       req.Description,
		ContactPhone:      req.ContactPhone,
		ContactTgUsername: req.ContactTgUsername,
		Price:             req.Price,
	}
	if _, err := applyUpdate(ctx, s, keys.KindDeliveryManual, attrs, payload, actor.UserUUID, datastore.ReturnNone); err != nil {
		return nil, err
	}
	return s.GetDeliveryManual(ctx, shopUUID, manualUUID)
}

func (s *Service) DeleteDeliveryManual(ctx context.Context, actor Identity, shopUUID, manualUUID string) error {
	key, err := keys.Make(keys.KindDeliveryManual, map[string]string{
		"shop_uuid":            shopUUID,
		"delivery_manual_uuid": manualUUID,
	})
	if err != nil {
		return err
	}
	return datastore.Deactivate(ctx, s.Store, keys.KindDeliveryManual, key, actor.UserUUID)
}
