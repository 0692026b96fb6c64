package middleware

import (
	"net/http"
	"net/netip"

	"github.com/bnema/zerowrap"
)

// AllowCIDRs rejects requests whose client address is outside allowed with
// 403. An empty list lets every client through.
func AllowCIDRs(allowed, trusted []netip.Prefix, log zerowrap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(allowed) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := GetClientIP(r, trusted)
			if containsIP(clientIP, allowed) {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn().
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "http").
				Str(zerowrap.FieldMethod, r.Method).
				Str(zerowrap.FieldPath, r.URL.Path).
				Str(zerowrap.FieldClientIP, clientIP).
				Msg("request denied by CIDR allowlist")

			writeError(w, http.StatusForbidden, "Forbidden")
		})
	}
}
