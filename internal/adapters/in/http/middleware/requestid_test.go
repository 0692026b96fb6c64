package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "empty", incoming: "", keep: false},
		{name: "plain", incoming: "abc-123", keep: true},
		{name: "too long", incoming: strings.Repeat("a", maxRequestIDLen+1), keep: false},
		{name: "newline", incoming: "abc\ninjected", keep: false},
		{name: "space", incoming: "abc def", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requestID(tt.incoming)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
				return
			}
			assert.NotEqual(t, tt.incoming, got)
			assert.Len(t, got, 36)
		})
	}
}

func TestRequestLogger_ReplacesUnsafeRequestID(t *testing.T) {
	handler := RequestLogger(testLogger(), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/domains", nil)
	req.Header.Set(RequestIDHeader, "abc\tinjected")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	got := rec.Header().Get(RequestIDHeader)
	assert.NotEqual(t, "abc\tinjected", got)
	assert.Len(t, got, 36)
}
