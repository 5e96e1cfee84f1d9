// Package cache stores rendered sheet artifacts.
//
// # Backends
//
//   - [FileCache]: one JSON entry per key under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for servers running several replicas
//   - [NullCache]: stores nothing; used when caching is disabled
//
// # Keys
//
// Keys are built by a [Keyer]. [DefaultKeyer] hashes the sheet
// configuration together with the output format and style, so two requests
// only share an entry when they would produce identical bytes:
//
//	key := cache.NewDefaultKeyer().ArtifactKey(sheetHash, cache.ArtifactKeyOpts{Format: "pdf", Style: "solid"})
//
// [ScopedKeyer] prefixes every key, which keeps separate deployments apart
// when they share one Redis.
package cache

import (
	"context"
	"time"
)

// ArtifactTTL is how long a rendered artifact stays cached.
const ArtifactTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
//
// Get reports a miss with ok == false and a nil error; an error means the
// backend itself failed. A ttl of zero means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
// Clear returns the number of entries removed.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
