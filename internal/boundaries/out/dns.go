package out

import "context"

// OwnershipVerifier checks that a domain's A record points at this server.
type OwnershipVerifier interface {
	// Verify returns true iff the domain resolves to the target address.
	// Resolution failures yield false, never an error.
	Verify(ctx context.Context, domain string) bool
}
