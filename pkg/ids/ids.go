// Package ids generates entity identifiers for floor plans.
//
// The synthesizer never invents ids itself; it asks an injected [Generator].
// Pick the implementation by what the ids are for:
//
//   - [NewSequential]: wall_1, wall_2, ... Deterministic, ideal for tests.
//   - [NewHashed]: prefix_<uuidv5> derived from a namespace. Deterministic
//     for a given namespace and unique across namespaces, so plans built
//     from the same config get the same ids and can be stored by id.
//   - [NewRandom]: prefix_<uuidv4>, for entities created interactively.
//
// All generators are safe for concurrent use.
package ids

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator returns a new unique id carrying the given prefix.
type Generator interface {
	Next(prefix string) string
}

// Factory mints a fresh generator for one plan. seed identifies the plan's
// inputs; factories that ignore it must still return an unused generator.
type Factory func(seed []byte) Generator

// SequentialFactory returns a Factory producing [Sequential] generators.
func SequentialFactory() Factory {
	return func([]byte) Generator { return NewSequential() }
}

// HashedFactory returns a Factory that namespaces each generator by seed.
func HashedFactory() Factory {
	return func(seed []byte) Generator { return NewHashed(NamespaceFor(seed)) }
}

// RandomFactory returns a Factory producing [Random] generators.
func RandomFactory() Factory {
	return func([]byte) Generator { return NewRandom() }
}

// =============================================================================
// Sequential
// =============================================================================

// Sequential numbers ids per prefix starting at 1.
type Sequential struct {
	mu       sync.Mutex
	counters map[string]int
}

// NewSequential creates a sequential generator.
func NewSequential() *Sequential {
	return &Sequential{counters: make(map[string]int)}
}

// Next returns prefix_N where N counts calls with this prefix.
func (s *Sequential) Next(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[prefix]++
	return prefix + "_" + strconv.Itoa(s.counters[prefix])
}

// =============================================================================
// Hashed
// =============================================================================

// planNamespace roots every namespace derived by NamespaceFor.
var planNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://plansmith.dev/plan"))

// NamespaceFor derives a stable namespace from arbitrary bytes.
func NamespaceFor(data []byte) uuid.UUID {
	return uuid.NewSHA1(planNamespace, data)
}

// Hashed derives name-based (v5) UUIDs from a namespace and a per-prefix
// counter.
type Hashed struct {
	ns  uuid.UUID
	seq *Sequential
}

// NewHashed creates a generator rooted at ns.
func NewHashed(ns uuid.UUID) *Hashed {
	return &Hashed{ns: ns, seq: NewSequential()}
}

// Next returns prefix_<uuid>.
func (h *Hashed) Next(prefix string) string {
	name := h.seq.Next(prefix)
	return fmt.Sprintf("%s_%s", prefix, uuid.NewSHA1(h.ns, []byte(name)))
}

// =============================================================================
// Random
// =============================================================================

// Random returns version 4 UUIDs.
type Random struct{}

// NewRandom creates a random generator.
func NewRandom() Random { return Random{} }

// Next returns prefix_<uuid>.
func (Random) Next(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
