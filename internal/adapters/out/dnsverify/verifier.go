// Package dnsverify implements the DNS ownership check for domains.
package dnsverify

import (
	"context"
	"fmt"
	"net"

	"github.com/bnema/zerowrap"

	"github.com/Wrap-pixelz/domain-hoster/internal/boundaries/out"
)

// Ensure Verifier implements out.OwnershipVerifier.
var _ out.OwnershipVerifier = (*Verifier)(nil)

// Resolver returns the IPv4 addresses a host name resolves to.
type Resolver interface {
	LookupA(ctx context.Context, host string) ([]net.IP, error)
}

// Verifier reports whether a domain's A record points at the target address.
type Verifier struct {
	target   net.IP
	resolver Resolver
	log      zerowrap.Logger
}

// NewVerifier creates a verifier for target. A nil resolver uses the system
// resolver.
func NewVerifier(target string, resolver Resolver, log zerowrap.Logger) (*Verifier, error) {
	ip := net.ParseIP(target)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("invalid target IPv4 address %q", target)
	}
	if resolver == nil {
		resolver = NewSystemResolver()
	}

	return &Verifier{
		target:   ip.To4(),
		resolver: resolver,
		log:      log,
	}, nil
}

// Target returns the configured server address.
func (v *Verifier) Target() net.IP {
	return v.target
}

// Resolve returns the A records of domain.
func (v *Verifier) Resolve(ctx context.Context, domain string) ([]net.IP, error) {
	return v.resolver.LookupA(ctx, domain)
}

// Verify returns true when any A record of domain equals the target address.
// Resolution failures, including timeouts, are reported as false.
func (v *Verifier) Verify(ctx context.Context, domain string) bool {
	log := v.log.With().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "dnsverify").
		Str("domain", domain).
		Logger()

	ips, err := v.resolver.LookupA(ctx, domain)
	if err != nil {
		log.Debug().Err(err).Msg("domain did not resolve")
		return false
	}

	for _, ip := range ips {
		if ip.Equal(v.target) {
			return true
		}
	}

	log.Debug().
		Str("expected", v.target.String()).
		Str("resolved", joinIPs(ips)).
		Msg("A record does not match target")
	return false
}

func joinIPs(ips []net.IP) string {
	s := ""
	for i, ip := range ips {
		if i > 0 {
			s += ","
		}
		s += ip.String()
	}
	return s
}
