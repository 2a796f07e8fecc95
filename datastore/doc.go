/*
Package datastore defines the interface between entity operations and the
single-table storage engine.

The main interface is Store, a small set of key-value primitives:

	type Store interface {
	    Get(ctx context.Context, key keys.Key) (storagemodels.Item, error)
	    Put(ctx context.Context, key keys.Key, item storagemodels.Item, cond *Condition) error
	    Delete(ctx context.Context, key keys.Key, cond *Condition) error
	    Update(ctx context.Context, key keys.Key, fields storagemodels.Item, cond *Condition, mode ReturnMode) (storagemodels.Item, error)
	    QueryPaged(ctx context.Context, q *Query) ([]storagemodels.Item, error)
	    Stream(ctx context.Context, q *Query) <-chan StreamResult
	}

On top of Store this package layers the soft-delete guard: Deactivate for
actor-only deletion, DeactivateOwned for owner-verified deletion, and
DeactivateChildren for prefix cascades. The guard works against any Store,
so handler tests can run it over the in-memory implementation.

Implementations:
  - ddb: DynamoDB-compatible table engine
  - mock: in-memory implementation for testing
*/
package datastore
