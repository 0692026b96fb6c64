// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"encoding/json"
	"net/http"
	"net/netip"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/dto"
)

// recorder remembers what the handler wrote.
type recorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.written += n
	return n, err
}

func (r *recorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

// RequestLogger assigns a request ID, puts a request scoped logger in the
// context and logs one line per request once the handler returns.
// Client errors log at warn, server errors at error.
func RequestLogger(log zerowrap.Logger, trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := requestID(r.Header.Get(RequestIDHeader))
			w.Header().Set(RequestIDHeader, id)
			clientIP := GetClientIP(r, trusted)

			ctx := zerowrap.WithCtx(r.Context(), log)
			ctx = zerowrap.CtxWithFields(ctx, map[string]any{
				"request_id":           id,
				zerowrap.FieldClientIP: clientIP,
			})

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			r = r.WithContext(ctx)
			next.ServeHTTP(rec, r)

			event := log.Info()
			switch {
			case rec.status >= http.StatusInternalServerError:
				event = log.Error()
			case rec.status >= http.StatusBadRequest:
				event = log.Warn()
			}
			event.
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "http").
				Str("request_id", id).
				Str(zerowrap.FieldMethod, r.Method).
				Str(zerowrap.FieldPath, r.URL.Path).
				Str("route", r.Pattern).
				Str(zerowrap.FieldClientIP, clientIP).
				Int(zerowrap.FieldStatus, rec.status).
				Int("bytes", rec.written).
				Dur(zerowrap.FieldDuration, time.Since(start)).
				Msg("HTTP request")
		})
	}
}

// PanicRecovery answers 500 when a handler panics. http.ErrAbortHandler is
// re-raised so the server can abort the connection.
func PanicRecovery(log zerowrap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error().
					Str(zerowrap.FieldLayer, "adapter").
					Str(zerowrap.FieldAdapter, "http").
					Str(zerowrap.FieldMethod, r.Method).
					Str(zerowrap.FieldPath, r.URL.Path).
					Interface("panic", rec).
					Msg("handler panicked")
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// APIHeaders marks every response as uncacheable JSON that must not be framed.
func APIHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// Chain wraps h so that mws[0] runs first.
func Chain(mws ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: message})
}
