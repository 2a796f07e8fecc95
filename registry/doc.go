/*
Package registry maps record_type tags to decode functions.

Every entity kind stored in the general table registers a decoder at init
time. Reads that know their kind decode directly; reads over heterogeneous
partitions (product children, full-shop exports) use DecodeItem, which
dispatches on the item's record_type attribute and falls back to a generic
map for unknown tags, keeping old exports readable after schema additions.
*/
package registry
