package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/out/dnsverify"
	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

// RunCheckDNS resolves name with the configured resolver and reports whether
// it points at the target address. A mismatch is returned as an error.
func RunCheckDNS(ctx context.Context, opts Options, name string, w io.Writer) error {
	cfg, err := LoadConfig(opts.ConfigPath, opts.EnvFile)
	if err != nil {
		return err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cfg.ValidateTarget(); err != nil {
		return err
	}

	verifier, err := createVerifier(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DNS.Timeout)
	defer cancel()
	return checkDNS(ctx, verifier, name, w)
}

func checkDNS(ctx context.Context, verifier *dnsverify.Verifier, name string, w io.Writer) error {
	name = domain.NormalizeHostname(name)

	fmt.Fprintf(w, "Domain:   %s\n", name)
	fmt.Fprintf(w, "Expected: %s\n", verifier.Target())

	ips, err := verifier.Resolve(ctx, name)
	if err != nil {
		fmt.Fprintf(w, "Resolved: error: %v\n", err)
		return &exitError{err: domain.ErrOwnershipMismatch}
	}

	resolved := make([]string, len(ips))
	for i, ip := range ips {
		resolved[i] = ip.String()
	}
	fmt.Fprintf(w, "Resolved: %s\n", strings.Join(resolved, ", "))

	if !verifier.Verify(ctx, name) {
		fmt.Fprintln(w, "Status:   MISMATCH")
		return &exitError{err: domain.ErrOwnershipMismatch}
	}

	fmt.Fprintln(w, "Status:   OK")
	return nil
}
