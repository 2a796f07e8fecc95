/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"bytes"
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/objstore"
	"github.com/suparena/shopstore/registry"
)

// ShopBackup is the exported snapshot of one shop's records, grouped by
// the partition they came from.
type ShopBackup struct {
	ShopUUID   string                   `json:"shop_uuid"`
	ExportedAt string                   `json:"exported_at"`
	Records    map[string][]interface{} `json:"records"`
}

// shopPartitions lists every partition that can hold records of one shop.
func shopPartitions(shopUUID string) []string {
	return []string{
		"product_category_" + shopUUID,
		"product_" + shopUUID,
		"delivery_" + shopUUID,
		"infopages_rubric_" + shopUUID,
		"infopages_posts_" + shopUUID,
	}
}

// ExportShopBackup streams every record belonging to the shop, decodes
// each through the record registry, and uploads the snapshot as JSON to
// object storage. Returns the snapshot URL. Soft-deleted records are
// included so a backup can restore them.
func (s *Service) ExportShopBackup(ctx context.Context, actor Identity, shopUUID string) (string, error) {
	shop, err := s.GetShop(ctx, shopUUID)
	if err != nil {
		return "", err
	}

	backup := ShopBackup{
		ShopUUID:   shopUUID,
		ExportedAt: s.Now(),
		Records:    map[string][]interface{}{"shop": {shop}},
	}

	for _, partition := range shopPartitions(shopUUID) {
		results := s.Store.Stream(ctx, &datastore.Query{Partition: partition})
		for res := range results {
			if res.Err != nil {
				return "", res.Err
			}
			rec, err := registry.DecodeItem(res.Item)
			if err != nil {
				return "", err
			}
			recordType := stringAttr(res.Item, keys.RecordTypeAttr)
			backup.Records[recordType] = append(backup.Records[recordType], rec)
		}
	}

	body, err := json.Marshal(backup)
	if err != nil {
		return "", err
	}

	path, err := objstore.BackupPath(objstore.PathAttrs{
		OwnerUUID: actor.OwnerUUID,
		ShopUUID:  shopUUID,
	})
	if err != nil {
		return "", err
	}

	url, err := s.Objects.Upload(ctx, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return "", err
	}

	s.Log.Info("exported shop backup",
		zap.String("shop_uuid", shopUUID),
		zap.String("url", url))
	return url, nil
}
