package app

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/out/dnsverify"
	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

type mapResolver map[string][]net.IP

func (m mapResolver) LookupA(_ context.Context, host string) ([]net.IP, error) {
	ips, ok := m[host]
	if !ok {
		return nil, errors.New("no such host")
	}
	return ips, nil
}

func newCheckVerifier(t *testing.T) *dnsverify.Verifier {
	t.Helper()
	v, err := dnsverify.NewVerifier("203.0.113.10", mapResolver{
		"example.com":   {net.ParseIP("203.0.113.10")},
		"elsewhere.org": {net.ParseIP("198.51.100.7")},
	}, zerowrap.Default())
	require.NoError(t, err)
	return v
}

func TestCheckDNS_OK(t *testing.T) {
	var out bytes.Buffer

	err := checkDNS(context.Background(), newCheckVerifier(t), "Example.COM.", &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Domain:   example.com")
	assert.Contains(t, out.String(), "Expected: 203.0.113.10")
	assert.Contains(t, out.String(), "Resolved: 203.0.113.10")
	assert.Contains(t, out.String(), "Status:   OK")
}

func TestCheckDNS_Mismatch(t *testing.T) {
	var out bytes.Buffer

	err := checkDNS(context.Background(), newCheckVerifier(t), "elsewhere.org", &out)

	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.ErrorIs(t, err, domain.ErrOwnershipMismatch)
	assert.Contains(t, out.String(), "Resolved: 198.51.100.7")
	assert.Contains(t, out.String(), "Status:   MISMATCH")
}

func TestCheckDNS_ResolveError(t *testing.T) {
	var out bytes.Buffer

	err := checkDNS(context.Background(), newCheckVerifier(t), "unknown.net", &out)

	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Contains(t, out.String(), "Resolved: error: no such host")
}
