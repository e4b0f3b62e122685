// Package cache stores rendered artifacts between CLI runs.
//
// Generation is deterministic for a fixed seed, so an artifact is fully
// described by its mode, canvas size, seed, palette and output encoding.
// Keyer turns those inputs into stable string keys; Cache implementations
// map keys to encoded bytes.
//
// Two implementations are provided:
//
//   - [FileCache] writes entries under a directory, one JSON envelope per key.
//   - [NullCache] stores nothing and is used when caching is disabled.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long rendered artifacts stay valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store keyed by strings.
type Cache interface {
	// Get returns the data for key. A miss is reported with ok=false and a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the inputs that determine a rendered artifact.
type ArtifactKeyOpts struct {
	Mode    string   `json:"mode"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Seed    uint64   `json:"seed"`
	Palette []string `json:"palette,omitempty"`
	Format  string   `json:"format"`
	Scale   int      `json:"scale,omitempty"`
	Quality int      `json:"quality,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of an encoded image or manifest.
	ArtifactKey(opts ArtifactKeyOpts) string
	// TreeKey returns the key of a rendered split tree.
	TreeKey(opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	return hashKey("artifact", opts)
}

// TreeKey implements Keyer.
func (DefaultKeyer) TreeKey(opts ArtifactKeyOpts) string {
	opts.Scale, opts.Quality = 0, 0
	return hashKey("tree", opts)
}
