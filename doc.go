/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package shopstore is the data-access backend for a multi-tenant shop admin
panel. Every entity lives in one DynamoDB-compatible table under a
composite (partkey, sortkey) key; a record_type attribute discriminates
kinds that share a partition.

The layers, bottom up:

  - keys: the key-scheme catalogue, one template per entity kind
  - storagemodels: record structs and the attribute-map codec
  - registry: record_type to decoder dispatch
  - datastore: the storage engine interface, DynamoDB implementation,
    in-memory mock, and the soft-delete guard
  - objstore: S3-compatible image storage with path templates
  - handlers: entity operations the HTTP layer calls
  - httpapi: the chi router

Records are never physically deleted in the standard flow; deletion flips
the inactive flag under a conditional update, and listings filter on it.
*/
package shopstore
