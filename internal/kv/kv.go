// Package kv provides the synchronous string key-value backing store that
// holds the serialized document collection and its auxiliary keys. It is the
// only durability layer in the system.
package kv

import (
	"context"
	"database/sql"
	"fmt"

	"sdgportal/internal/config"
)

// Store is a string-keyed storage API. Get reports ok=false when the key is
// absent; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// NewStore constructs the backing store selected by cfg.Driver.
// db is required only for the "postgres" driver and ignored otherwise.
func NewStore(cfg config.StoreConfig, db *sql.DB) (Store, error) {
	switch cfg.Driver {
	case "file":
		return NewFileStore(cfg.FilePath)
	case "memory":
		return NewMemoryStore(), nil
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres kv driver requires an open database")
		}
		return NewPostgresStore(db), nil
	default:
		return nil, fmt.Errorf("unknown kv driver: %q", cfg.Driver)
	}
}
