package domain

import "context"

// CatalogProvider is the remote catalog/search service. Any non-success
// response or malformed payload surfaces as a single undifferentiated
// error; the core never retries.
type CatalogProvider interface {
	// SearchMovies runs a free-text query and returns the provider's
	// ordered results
	SearchMovies(ctx context.Context, query string) ([]CatalogItem, error)

	// Popular returns the current popular items page
	Popular(ctx context.Context) ([]CatalogItem, error)
}

// Store is the persistent key/value adapter backing all durable state.
// Get returns false for an absent key; that is a valid first-run state,
// not an error. Values are opaque serialized bytes owned by the caller.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error

	// Watch registers fn to run when another execution context changes
	// the key. The returned func unregisters the callback.
	Watch(key string, fn func()) (func(), error)

	Close() error
}
