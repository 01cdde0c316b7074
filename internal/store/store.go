// Package store holds the in-memory state of the storefront. Each store
// exclusively owns one map of entity-by-ID guarded by its own RWMutex,
// and returns copies rather than interior pointers. Data lives only for
// the process lifetime.
package store

import "errors"

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")
