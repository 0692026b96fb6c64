package dnsverify

import (
	"context"
	"fmt"
	"net"

	"github.com/miekg/dns"
)

// SystemResolver resolves through the host's configured resolver.
type SystemResolver struct {
	resolver *net.Resolver
}

// NewSystemResolver creates a resolver using net.DefaultResolver.
func NewSystemResolver() *SystemResolver {
	return &SystemResolver{resolver: net.DefaultResolver}
}

// LookupA implements Resolver.
func (r *SystemResolver) LookupA(ctx context.Context, host string) ([]net.IP, error) {
	return r.resolver.LookupIP(ctx, "ip4", host)
}

// NameserverResolver queries one nameserver directly for A records.
type NameserverResolver struct {
	addr   string
	client *dns.Client
}

// NewNameserverResolver creates a resolver for addr. A missing port defaults
// to 53.
func NewNameserverResolver(addr string) *NameserverResolver {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "53")
	}
	return &NameserverResolver{
		addr:   addr,
		client: &dns.Client{Net: "udp"},
	}
}

// LookupA implements Resolver.
func (r *NameserverResolver) LookupA(ctx context.Context, host string) ([]net.IP, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(host), dns.TypeA)
	msg.RecursionDesired = true

	resp, _, err := r.client.ExchangeContext(ctx, msg, r.addr)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", r.addr, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("querying %s: %s", r.addr, dns.RcodeToString[resp.Rcode])
	}

	var ips []net.IP
	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok {
			ips = append(ips, a.A)
		}
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("no A records for %s", host)
	}
	return ips, nil
}
