package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a collection has never been written.
var ErrNotFound = errors.New("collection not found")

// Store defines the document-store operations interface following hexagonal architecture.
// Each collection is a single JSON document keyed by natural identifier; it is
// always read and rewritten as a whole, never patched incrementally.
type Store interface {
	// Read retrieves the serialized document for a collection.
	// Returns ErrNotFound (wrapped) when the collection does not exist yet.
	Read(ctx context.Context, collection string) ([]byte, error)

	// Write replaces the entire document for a collection.
	Write(ctx context.Context, collection string, data []byte) error

	// Ping checks if the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the store's resources.
	Close() error
}
