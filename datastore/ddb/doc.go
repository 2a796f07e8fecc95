/*
Package ddb implements datastore.Store over a DynamoDB-compatible table.

The TableStore supports:
  - Point reads and full-record writes keyed by partkey/sortkey
  - Conditional writes (must-exist, must-not-exist, owner predicate)
  - Sparse updates with uniquely parameterized SET expressions
  - Paged range queries that drain continuation tokens
  - Channel-based streaming for large result sets
  - Table creation and destructive purge for maintenance

Failure semantics: the store never retries. Conditional check failures
translate to ConditionFailed; everything else surfaces as
StorageUnavailable wrapping the engine error.

The client bootstrap in NewClient takes static credentials plus an
optional endpoint override, which is how deployments point the store at
non-AWS engines speaking the DynamoDB protocol.
*/
package ddb
