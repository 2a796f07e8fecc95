/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory datastore.Store for testing.
package mock

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/storagemodels"
)

// Store keeps records in a map and evaluates the same condition and filter
// vocabulary the table engine does, so guard and handler behavior can be
// tested without a table.
type Store struct {
	mu      sync.RWMutex
	records map[keys.Key]storagemodels.Item
	err     error
}

var _ datastore.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[keys.Key]storagemodels.Item)}
}

// WithErr makes every subsequent operation fail with err. Pass nil to
// clear. Used to exercise StorageUnavailable paths.
func (m *Store) WithErr(err error) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// Seed inserts a record directly, bypassing conditions.
func (m *Store) Seed(key keys.Key, item storagemodels.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = copyItem(item)
}

// Count reports the number of stored records.
func (m *Store) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func (m *Store) Get(ctx context.Context, key keys.Key) (storagemodels.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, errors.NewStorageUnavailableError("get", m.err)
	}

	item, ok := m.records[key]
	if !ok {
		return nil, nil
	}
	return copyItem(item), nil
}

func (m *Store) Put(ctx context.Context, key keys.Key, item storagemodels.Item, cond *datastore.Condition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return errors.NewStorageUnavailableError("put", m.err)
	}
	if err := m.check(key, cond, "put"); err != nil {
		return err
	}

	m.records[key] = copyItem(item)
	return nil
}

func (m *Store) Delete(ctx context.Context, key keys.Key, cond *datastore.Condition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return errors.NewStorageUnavailableError("delete", m.err)
	}
	if err := m.check(key, cond, "delete"); err != nil {
		return err
	}

	delete(m.records, key)
	return nil
}

func (m *Store) Update(ctx context.Context, key keys.Key, fields storagemodels.Item, cond *datastore.Condition, mode datastore.ReturnMode) (storagemodels.Item, error) {
	if len(fields) == 0 {
		return nil, errors.ErrNoUpdateData
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, errors.NewStorageUnavailableError("update", m.err)
	}
	if err := m.check(key, cond, "update"); err != nil {
		return nil, err
	}

	current, ok := m.records[key]
	if !ok {
		// Unconditional update on a missing key upserts, as the engine does.
		current = storagemodels.Item{
			keys.PartKeyAttr: &types.AttributeValueMemberS{Value: key.Partition},
			keys.SortKeyAttr: &types.AttributeValueMemberS{Value: key.Sort},
		}
	}

	old := copyItem(current)
	next := copyItem(current)
	for k, v := range fields {
		next[k] = v
	}
	m.records[key] = next

	switch mode {
	case datastore.ReturnOld:
		if !ok {
			return nil, nil
		}
		return old, nil
	case datastore.ReturnNew:
		return copyItem(next), nil
	default:
		return nil, nil
	}
}

func (m *Store) QueryPaged(ctx context.Context, q *datastore.Query) ([]storagemodels.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, errors.NewStorageUnavailableError("query", m.err)
	}

	matched := make([]keys.Key, 0)
	for key := range m.records {
		if key.Partition != q.Partition {
			continue
		}
		if q.SortPrefix != "" && !strings.HasPrefix(key.Sort, q.SortPrefix) {
			continue
		}
		if !m.matchesFilters(m.records[key], q) {
			continue
		}
		matched = append(matched, key)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Sort < matched[j].Sort })

	results := make([]storagemodels.Item, 0, len(matched))
	for _, key := range matched {
		results = append(results, copyItem(m.records[key]))
	}
	return results, nil
}

func (m *Store) Stream(ctx context.Context, q *datastore.Query) <-chan datastore.StreamResult {
	results := make(chan datastore.StreamResult)
	go func() {
		defer close(results)
		items, err := m.QueryPaged(ctx, q)
		if err != nil {
			results <- datastore.StreamResult{Err: err}
			return
		}
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case results <- datastore.StreamResult{Item: item}:
			}
		}
	}()
	return results
}

func (m *Store) check(key keys.Key, cond *datastore.Condition, op string) error {
	if cond == nil {
		return nil
	}
	item, exists := m.records[key]
	switch {
	case cond.MustNotExist:
		if exists {
			return errors.NewConditionFailedError(op, "must not exist")
		}
	case cond.OwnerUUID != "":
		if !exists {
			return errors.NewConditionFailedError(op, "must exist")
		}
		owner, _ := item["owner_uuid"].(*types.AttributeValueMemberS)
		if owner == nil || owner.Value != cond.OwnerUUID {
			return errors.NewConditionFailedError(op, "owner mismatch")
		}
	case cond.MustExist:
		if !exists {
			return errors.NewConditionFailedError(op, "must exist")
		}
	}
	return nil
}

func (m *Store) matchesFilters(item storagemodels.Item, q *datastore.Query) bool {
	if q.RecordType != "" {
		rt, _ := item[keys.RecordTypeAttr].(*types.AttributeValueMemberS)
		if rt == nil || rt.Value != q.RecordType {
			return false
		}
	}
	if q.ActiveOnly {
		inactive, _ := item["inactive"].(*types.AttributeValueMemberBOOL)
		if inactive != nil && inactive.Value {
			return false
		}
	}
	if q.OwnerUUID != "" {
		owner, _ := item["owner_uuid"].(*types.AttributeValueMemberS)
		if owner == nil || owner.Value != q.OwnerUUID {
			return false
		}
	}
	return true
}

func copyItem(item storagemodels.Item) storagemodels.Item {
	dup := make(storagemodels.Item, len(item))
	for k, v := range item {
		dup[k] = v
	}
	return dup
}
