// Package wordbank holds the per-category vocabulary pools the generator
// draws target terms from.
package wordbank

import (
	"fmt"
	"math/rand/v2"
)

// Term is a single vocabulary entry: the hard word itself plus a
// plain-language gloss used as prompt context.
type Term struct {
	Word  string
	Gloss string
}

// Bank selects terms from the fixed category pools. Selection is uniformly
// random over the resolved pool; there is no cross-call memory of issued
// terms (repeat avoidance is requested of the LLM in the prompt instead).
type Bank struct {
	pools    map[string][]Term
	fallback []Term
}

// New builds a Bank over the built-in pools.
func New() *Bank {
	general := make([]Term, 0)
	for _, c := range fallbackCategories {
		general = append(general, pools[c]...)
	}
	return &Bank{pools: pools, fallback: general}
}

// Pick returns a uniformly random term for the category. Unknown categories
// fall back to the general pool. An empty resolved pool is a configuration
// error, not an empty term.
func (b *Bank) Pick(category string) (Term, error) {
	pool := b.resolve(category)
	if len(pool) == 0 {
		return Term{}, fmt.Errorf("wordbank: no terms for category %q (fallback pool empty)", category)
	}
	return pool[rand.IntN(len(pool))], nil
}

// Known reports whether the category has its own pool.
func (b *Bank) Known(category string) bool {
	_, ok := b.pools[category]
	return ok
}

// Pool returns a copy of the resolved pool for the category, falling back
// to the general pool for unknown categories.
func (b *Bank) Pool(category string) []Term {
	pool := b.resolve(category)
	out := make([]Term, len(pool))
	copy(out, pool)
	return out
}

func (b *Bank) resolve(category string) []Term {
	if pool, ok := b.pools[category]; ok {
		return pool
	}
	return b.fallback
}
