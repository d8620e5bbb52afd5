// Package testutil holds deterministic stand-ins for tests.
package testutil

import (
	"fmt"
	"sync"
)

// FixedIDs returns predetermined IDs in order. It satisfies
// store.IDGenerator.
//
// Thread-safety: FixedIDs is safe for concurrent use via internal mutex.
type FixedIDs struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedIDs creates a generator that returns ids in order.
//
//	gen := NewFixedIDs("m-1", "m-2")
//	gen.Generate() // "m-1"
//	gen.Generate() // "m-2"
//	gen.Generate() // panic: all IDs exhausted
func NewFixedIDs(ids ...string) *FixedIDs {
	return &FixedIDs{ids: ids}
}

// Generate returns the next predetermined ID.
//
// Panics if all IDs have been consumed, so a test that writes more rows than
// it planned for fails loudly.
func (g *FixedIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedIDs: all IDs exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// SequentialIDs returns prefix-1, prefix-2, ... without limit.
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequentialIDs creates a counting generator. An empty prefix is "id".
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "id"
	}
	return &SequentialIDs{prefix: prefix}
}

// Generate returns the next ID.
func (g *SequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
