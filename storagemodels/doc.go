/*
Package storagemodels defines the typed records persisted in the single
general table and the codec between them and their flat storage form.

Every entity embeds a base-field chain (EntityBase -> OwnedBase ->
ShopScopedBase -> ProductScopedBase) carrying provenance: uuid_, user_uuid,
date_create, date_update, inactive, plus owner/shop/product scoping where it
applies. Encode derives the immutable partition/sort key from the entity's
identifying attributes and injects the kind's record_type tag; Decode
ignores unknown attributes and reports missing required fields as a
SchemaMismatchError.

Updates are sparse by construction: each entity has a companion *Update
struct whose fields are pointers with omitempty tags, so a field the caller
did not supply never reaches the change set, and is never nulled at rest.
*/
package storagemodels
