/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/storagemodels"
)

// ReturnMode selects which record image a mutating call hands back.
type ReturnMode int

const (
	// ReturnNone discards the record image.
	ReturnNone ReturnMode = iota
	// ReturnOld returns the record as it was before the write.
	ReturnOld
	// ReturnNew returns the record as it is after the write.
	ReturnNew
)

// Condition is the precondition vocabulary the store can enforce on a
// write. Zero value means unconditional. OwnerUUID implies MustExist.
type Condition struct {
	MustExist    bool
	MustNotExist bool
	OwnerUUID    string
}

// Query describes a paged range read over one partition. SortPrefix narrows
// by begins_with; the remaining fields are post-read filter predicates
// applied by the store engine.
type Query struct {
	Partition  string
	SortPrefix string

	// RecordType keeps kinds apart when they share a partition.
	RecordType string
	// ActiveOnly drops soft-deleted records from the result.
	ActiveOnly bool
	// OwnerUUID restricts results to one owner's records.
	OwnerUUID string

	// PageSize caps items per page fetch, not the total result.
	PageSize int32
}

// StreamResult is one element of a streaming range read.
type StreamResult struct {
	Item storagemodels.Item
	Err  error
}

// Store is the set of primitives the table layer exposes. Implementations
// do not retry: condition failures are business outcomes and transport
// faults surface as StorageUnavailable for the caller to decide on.
type Store interface {
	// Get is a point read. An absent record returns (nil, nil).
	Get(ctx context.Context, key keys.Key) (storagemodels.Item, error)

	// Put writes the full record, subject to cond.
	Put(ctx context.Context, key keys.Key, item storagemodels.Item, cond *Condition) error

	// Delete physically removes the record, subject to cond. Reserved for
	// maintenance paths; the standard flow soft-deletes instead.
	Delete(ctx context.Context, key keys.Key, cond *Condition) error

	// Update applies a sparse change set, subject to cond. mode selects
	// whether the pre- or post-update image is returned.
	Update(ctx context.Context, key keys.Key, fields storagemodels.Item, cond *Condition, mode ReturnMode) (storagemodels.Item, error)

	// QueryPaged runs q and follows continuation tokens until the result
	// set is complete.
	QueryPaged(ctx context.Context, q *Query) ([]storagemodels.Item, error)

	// Stream runs q and yields items as pages arrive. The channel closes
	// when the query is exhausted, fails, or ctx is done.
	Stream(ctx context.Context, q *Query) <-chan StreamResult
}
