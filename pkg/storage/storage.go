// Package storage provides the thin key-value adapter the cart ledger,
// wishlist set and session manager persist through. A backend failure is
// reported as ErrStorageUnavailable and never crashes a mutation; the caller's
// in-memory state stays authoritative for the rest of the session.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the key has never been written or was removed.
	ErrNotFound = errors.New("storage: key not found")

	// ErrStorageUnavailable means the underlying backend failed. Callers log
	// it and carry on; only a full process restart risks data loss.
	ErrStorageUnavailable = errors.New("storage: backend unavailable")
)

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
