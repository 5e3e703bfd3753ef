// Package cachestore is the durable fallback storage for the dashboard:
// string-keyed blobs holding the serialized task and team collections
// plus the bearer-token slot. It backs the domain services whenever the
// remote API is unreachable.
package cachestore

import "errors"

var (
	// ErrNotFound marks an absent key; callers seed fixtures on it.
	ErrNotFound = errors.New("cachestore: key not found")
)

// BlobStore persists raw blobs by key. Implementations must return
// ErrNotFound for absent keys so the collection layer can distinguish
// a fresh store from a broken one.
type BlobStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Health() error
	Close() error
}
