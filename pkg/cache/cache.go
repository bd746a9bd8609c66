// Package cache provides the caching layer shared by the CLI and the API
// server.
//
// Generated plans are deterministic for a given config, catalog and palette
// set, so both plans and rendered artifacts can be cached by content hash.
//
// # Backends
//
//   - [FileCache]: JSON entry files under a directory, for the CLI
//   - [RedisCache]: a shared cache for API servers
//   - [NullCache]: caching disabled
//
// # Keys
//
// A [Keyer] derives every key, so deployments can scope keys with
// [ScopedKeyer] without touching callers.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Default time-to-live values per entry kind.
const (
	// TTLPlan applies to generated plans keyed by config hash.
	TTLPlan = 30 * 24 * time.Hour

	// TTLArtifact applies to rendered outputs keyed by plan hash.
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "kind:<sha256 of the JSON-encoded parts>".
func hashKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return kind + ":" + Hash(data)
}

// NullCache stores nothing; every Get misses.
type NullCache struct{}

// NewNullCache returns a cache that never hits.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}

// PlanKeyOpts are the generation inputs, besides the config, that change
// the plan produced.
type PlanKeyOpts struct {
	IDScheme    string `json:"id_scheme"`
	CatalogHash string `json:"catalog_hash,omitempty"`
	PaletteHash string `json:"palette_hash,omitempty"`
}

// ArtifactKeyOpts identify one rendering of a plan.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// PlanKey returns the key of a plan generated from the config with the
	// given hash.
	PlanKey(configHash string, opts PlanKeyOpts) string

	// ArtifactKey returns the key of a rendered artifact of the plan with
	// the given hash.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "kind:sha256" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PlanKey implements Keyer.
func (DefaultKeyer) PlanKey(configHash string, opts PlanKeyOpts) string {
	return hashKey("plan", configHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}

var _ Keyer = DefaultKeyer{}
