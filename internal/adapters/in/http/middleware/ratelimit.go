package middleware

import (
	"net/http"
	"net/netip"

	"github.com/bnema/zerowrap"

	"github.com/Wrap-pixelz/domain-hoster/internal/boundaries/out"
)

// RateLimit applies a global limit and a per-client limit. Passing a nil
// limiter disables that check.
func RateLimit(global, perIP out.RateLimiter, trusted []netip.Prefix, log zerowrap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if global == nil && perIP == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if global != nil && !global.Allow(ctx, "global") {
				rejectRateLimited(w, r, log, "global")
				return
			}

			if perIP != nil {
				ip := GetClientIP(r, trusted)
				if !perIP.Allow(ctx, "ip:"+ip) {
					rejectRateLimited(w, r, log, "ip")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rejectRateLimited(w http.ResponseWriter, r *http.Request, log zerowrap.Logger, scope string) {
	log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "http").
		Str(zerowrap.FieldPath, r.URL.Path).
		Str("scope", scope).
		Msg("rate limit exceeded")

	w.Header().Set("Retry-After", "1")
	writeError(w, http.StatusTooManyRequests, "Too many requests")
}
