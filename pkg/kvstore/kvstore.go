package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get for a key that was never set or was removed.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence contract every ledger depends on. One key holds one
// whole serialized document; ledgers never store individual records under their
// own keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
