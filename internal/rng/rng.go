// Package rng is the randomness provider for all generators. It is the sole
// source of nondeterminism in the module; every generator takes a Source so
// seeded test runs are reproducible.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform random integers.
//
// Implementations are not required to be safe for concurrent use. Give each
// logical call context its own Source, or share a Locked one.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n must be > 0.
	Intn(n int) int
}

// Rand is a seeded Source for a single call context.
type Rand struct {
	r *rand.Rand
}

// New returns a deterministic Source for the given seed.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// NewFromTime returns a Source seeded from the wall clock.
func NewFromTime() *Rand {
	return New(time.Now().UnixNano())
}

func (r *Rand) Intn(n int) int {
	return r.r.Intn(n)
}

// Locked is a Source safe for concurrent use by multiple callers.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLocked returns a mutex-guarded Source for the given seed.
func NewLocked(seed int64) *Locked {
	return &Locked{r: rand.New(rand.NewSource(seed))}
}

func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// Between returns a uniform int in the closed interval [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Pick returns a uniformly chosen element. Returns the zero value for an
// empty slice.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.Intn(len(items))]
}

// Sample returns k distinct elements drawn uniformly without replacement.
// If k exceeds len(items), every element is returned. The input slice is
// never mutated.
func Sample[T any](src Source, items []T, k int) []T {
	n := len(items)
	if k > n {
		k = n
	}
	if k <= 0 {
		return []T{}
	}

	pool := make([]T, n)
	copy(pool, items)

	// Partial Fisher-Yates: the first k positions end up as the sample.
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}
