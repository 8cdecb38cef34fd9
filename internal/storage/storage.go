package storage

import (
	"context"
	"errors"
)

// Storage keys for the three persisted state blobs.
const (
	KeyProducts = "grocerease:products"
	KeyOrders   = "grocerease:orders"
	KeySettings = "grocerease:settings"
)

// ErrWriteFailed wraps any backend failure while saving a key. Callers keep
// the in-memory state as the working truth for the session; writes are
// reported, not retried.
var ErrWriteFailed = errors.New("storage write failed")

// KV is the durable key-value store the core reads from and writes to.
// A missing key is (nil, false, nil), never an error.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
	Clear(ctx context.Context, key string) error
}
