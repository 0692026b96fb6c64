// Package ratelimit provides an in-memory keyed rate limiter.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/time/rate"

	"github.com/Wrap-pixelz/domain-hoster/internal/boundaries/out"
)

// DefaultIdleTTL is how long an unused key keeps its limiter.
const DefaultIdleTTL = 10 * time.Minute

// Ensure MemoryStore implements out.RateLimiter.
var _ out.RateLimiter = (*MemoryStore)(nil)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore keeps one token bucket per key. Keys idle for longer than the
// TTL are dropped on the next sweep, so per-client keys do not accumulate.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]*entry
	rps       float64
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
	log       zerowrap.Logger
}

// NewMemoryStore creates a store allowing rps requests per second per key
// with the given burst.
func NewMemoryStore(rps float64, burst int, idleTTL time.Duration, log zerowrap.Logger) *MemoryStore {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &MemoryStore{
		entries:   make(map[string]*entry),
		rps:       rps,
		burst:     burst,
		idleTTL:   idleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
		log:       log,
	}
}

// Allow reports whether one request for key may proceed.
func (s *MemoryStore) Allow(ctx context.Context, key string) bool {
	return s.AllowN(ctx, key, 1)
}

// AllowN reports whether n requests for key may proceed.
func (s *MemoryStore) AllowN(_ context.Context, key string, n int) bool {
	now := s.now()
	return s.limiterFor(key, now).AllowN(now, n)
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) limiterFor(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= s.idleTTL {
		s.sweep(now)
	}

	e, ok := s.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Limit(s.rps), s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (s *MemoryStore) sweep(now time.Time) {
	removed := 0
	for key, e := range s.entries {
		if now.Sub(e.lastSeen) >= s.idleTTL {
			delete(s.entries, key)
			removed++
		}
	}
	s.lastSweep = now

	if removed > 0 {
		s.log.Debug().
			Str(zerowrap.FieldLayer, "adapter").
			Str(zerowrap.FieldAdapter, "ratelimit").
			Int(zerowrap.FieldCount, removed).
			Msg("dropped idle rate limiters")
	}
}
