// Package storage provides the durable slot store: a named key holds one
// serialized collection. Drivers only move bytes; interpreting them (and
// tolerating corruption) is the caller's job.
package storage

import (
	"context"
	"fmt"

	"github.com/elmaatouquii/Gestion-Hotel/pkg/config"
)

// Store is a minimal key-value abstraction over a durable backend.
type Store interface {
	// Get returns the raw slot contents. The boolean is false when the slot
	// has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put overwrites the slot. The write is synchronous: when Put returns
	// nil the bytes are durable as far as the backend can promise.
	Put(ctx context.Context, key string, data []byte) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open builds the store named by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case "file":
		return NewFileStore(cfg.DataDir)
	case "redis":
		return NewRedisStore(cfg.RedisAddr), nil
	case "mongo":
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabaseName, cfg.MongoConnTimeout)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
