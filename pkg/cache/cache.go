// Package cache stores rendered artifacts keyed by document content.
//
// Three backends share the [Cache] interface:
//   - [FileCache]: one JSON entry per key under a local directory (CLI default)
//   - [RedisCache]: a shared Redis instance (server deployments)
//   - [NullCache]: never stores anything (--no-cache)
//
// Keys come from [ArtifactKey], which combines the content hash of the
// canonical input document with the output format and render options, so a
// changed document never hits a stale artifact.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
//
// Get reports a miss as (nil, false, nil); an error means the backend
// itself failed. A ttl of zero stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
