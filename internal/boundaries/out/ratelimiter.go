package out

import "context"

// RateLimiter throttles API requests per key.
// The HTTP middleware uses the keys "global" and "ip:<client address>".
type RateLimiter interface {
	// Allow consumes one token for key and reports whether the request may proceed.
	Allow(ctx context.Context, key string) bool

	// AllowN consumes n tokens for key at once.
	AllowN(ctx context.Context, key string, n int) bool
}
