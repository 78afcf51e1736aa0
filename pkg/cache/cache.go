// Package cache provides the storage layer for layouts and rendered
// artifacts.
//
// A layout is a pure function of its center, its ordered size list and the
// layouter options, so results are cached under a content-derived key and
// reused across CLI invocations (FileCache) or server replicas (RedisCache).
//
// # Keys
//
// Keys are produced by a [Keyer]:
//
//	k := cache.NewDefaultKeyer()
//	layoutKey := k.LayoutKey(cache.LayoutKeyOpts{Center: ..., Sizes: ..., Algo: ...})
//	artifactKey := k.ArtifactKey(layoutHash, cache.ArtifactKeyOpts{Format: "png"})
//
// [ScopedKeyer] prefixes every key, for example per server session.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
//
// Get reports a miss with (nil, false, nil); an error means the backend
// itself failed. A ttl of zero stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default lifetimes.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
