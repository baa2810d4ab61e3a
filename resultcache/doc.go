// Package resultcache provides optional caching of serialized search results.
//
// The registry and backend never cache on their own; callers opt in by wiring
// a Store into the backend. Two implementations are provided: an in-memory
// LRU with per-entry TTL for single-process deployments, and a Redis-backed
// store for sharing results across instances.
//
// Keys are derived from the target index and the serialized query body via
// Key, so identical queries against the same index hit the same entry while
// any change to the query or index invalidates naturally.
package resultcache
