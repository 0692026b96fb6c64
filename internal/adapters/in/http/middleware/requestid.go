package middleware

import "github.com/google/uuid"

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 64

// requestID keeps a client supplied ID when it is short and printable,
// otherwise a new one is generated.
func requestID(incoming string) string {
	if incoming == "" || len(incoming) > maxRequestIDLen {
		return newRequestID()
	}
	for i := 0; i < len(incoming); i++ {
		if c := incoming[i]; c < 0x21 || c > 0x7e {
			return newRequestID()
		}
	}
	return incoming
}

func newRequestID() string {
	return uuid.NewString()
}
