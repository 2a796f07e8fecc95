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
	registry.RegisterDecoder("delivery_self_pickup", decoderFor[DeliverySelfPickup]())
	registry.RegisterDecoder("delivery_manual", decoderFor[DeliveryManual]())
}

// PickupHours is an opening interval for one weekday.
type PickupHours struct {
	TimeStart string `dynamodbav:"time_start" json:"time_start"`
	TimeStop  string `dynamodbav:"time_stop" json:"time_stop"`
}

// PickupSchedule lists opening hours per weekday; nil means closed.
type PickupSchedule struct {
	Monday    *PickupHours `dynamodbav:"monday,omitempty" json:"monday,omitempty"`
	Tuesday   *PickupHours `dynamodbav:"tuesday,omitempty" json:"tuesday,omitempty"`
	Wednesday *PickupHours `dynamodbav:"wednesday,omitempty" json:"wednesday,omitempty"`
	Thursday  *PickupHours `dynamodbav:"thursday,omitempty" json:"thursday,omitempty"`
	Friday    *PickupHours `dynamodbav:"friday,omitempty" json:"friday,omitempty"`
	Saturday  *PickupHours `dynamodbav:"saturday,omitempty" json:"saturday,omitempty"`
	Sunday    *PickupHours `dynamodbav:"sunday,omitempty" json:"sunday,omitempty"`
}

// DeliverySelfPickup is a pickup point with a weekday schedule. It shares
// the delivery_{shop_uuid} partition with manual delivery options; sort-key
// prefixes keep the two kinds disjoint.
type DeliverySelfPickup struct {
	ShopScopedBase

	Title             string          `dynamodbav:"title" json:"title"`
	Description       string          `dynamodbav:"description,omitempty" json:"description,omitempty"`
	ContactPhone      string          `dynamodbav:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	ContactTgUsername string          `dynamodbav:"contact_tg_username,omitempty" json:"contact_tg_username,omitempty"`
	Schedule          *PickupSchedule `dynamodbav:"schedule,omitempty" json:"schedule,omitempty"`
}

func (d DeliverySelfPickup) Kind() keys.Kind { return keys.KindDeliveryPickup }

func (d DeliverySelfPickup) KeyAttrs() map[string]string {
	return map[string]string{"shop_uuid": d.ShopUUID, "self_pickup_uuid": d.UUID}
}

func (d DeliverySelfPickup) Validate() error {
	if err := d.ShopScopedBase.validate("delivery_self_pickup"); err != nil {
		return err
	}
	if d.Title == "" {
		return errors.NewSchemaMismatchError("delivery_self_pickup", "title")
	}
	return nil
}

// DeliverySelfPickupUpdate is the sparse update shape for a pickup point.
type DeliverySelfPickupUpdate struct {
	Title             *string         `dynamodbav:"title,omitempty"`
	Description       *string         `dynamodbav:"description,omitempty"`
	ContactPhone      *string         `dynamodbav:"contact_phone,omitempty"`
	ContactTgUsername *string         `dynamodbav:"contact_tg_username,omitempty"`
	Schedule          *PickupSchedule `dynamodbav:"schedule,omitempty"`
	Inactive          *bool           `dynamodbav:"inactive,omitempty"`
}

// DeliveryManual is a courier/manual delivery option.
type DeliveryManual struct {
	ShopScopedBase

	Title             string   `dynamodbav:"title" json:"title"`
	Description       string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	ContactPhone      string   `dynamodbav:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	ContactTgUsername string   `dynamodbav:"contact_tg_username,omitempty" json:"contact_tg_username,omitempty"`
	Price             *float64 `dynamodbav:"price,omitempty" json:"price,omitempty"`
}

func (d DeliveryManual) Kind() keys.Kind { return keys.KindDeliveryManual }

func (d DeliveryManual) KeyAttrs() map[string]string {
	return map[string]string{"shop_uuid": d.ShopUUID, "delivery_manual_uuid": d.UUID}
}

func (d DeliveryManual) Validate() error {
	if err := d.ShopScopedBase.validate("delivery_manual"); err != nil {
		return err
	}
	if d.Title == "" {
		return errors.NewSchemaMismatchError("delivery_manual", "title")
	}
	return nil
}

// DeliveryManualUpdate is the sparse update shape for a manual option.
type DeliveryManualUpdate struct {
	Title             *string  `dynamodbav:"title,omitempty"`
	Description       *string  `dynamodbav:"description,omitempty"`
	ContactPhone      *string  `dynamodbav:"contact_phone,omitempty"`
	ContactTgUsername *string  `dynamodbav:"contact_tg_username,omitempty"`
	Price             *float64 `dynamodbav:"price,omitempty"`
	Inactive          *bool    `dynamodbav:"inactive,omitempty"`
}
