package app

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/zerowrap"

	domainshttp "github.com/Wrap-pixelz/domain-hoster/internal/adapters/in/http/domains"
	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/in/http/middleware"
	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/out/dnsverify"
	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/out/filesystem"
	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/out/nginx"
	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/out/provisioner"
	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/out/ratelimit"
	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/out/sqlitestore"
	"github.com/Wrap-pixelz/domain-hoster/internal/boundaries/out"
	"github.com/Wrap-pixelz/domain-hoster/internal/usecase/domains"
)

// createStore opens the configured registry backend. The returned closer
// releases the backend and is never nil.
func createStore(cfg Config, log zerowrap.Logger) (out.RegistryStore, io.Closer, error) {
	switch cfg.Registry.Backend {
	case BackendSQLite:
		store, err := sqlitestore.Open(cfg.Registry.Path, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite registry: %w", err)
		}
		return store, store, nil
	default:
		return filesystem.NewRegistryFile(cfg.Registry.Path, log), closerFunc(func() error { return nil }), nil
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// createVerifier builds the DNS ownership verifier.
func createVerifier(cfg Config, log zerowrap.Logger) (*dnsverify.Verifier, error) {
	var resolver dnsverify.Resolver
	if cfg.DNS.Nameserver != "" {
		resolver = dnsverify.NewNameserverResolver(cfg.DNS.Nameserver)
	}
	return dnsverify.NewVerifier(cfg.DNS.TargetIP, resolver, log)
}

// createDeployer builds the in-process nginx deployer.
func createDeployer(cfg Config, log zerowrap.Logger) (*nginx.Deployer, error) {
	tmpl, err := nginx.LoadTemplate(cfg.Nginx.Template)
	if err != nil {
		return nil, err
	}
	return nginx.NewDeployer(nginx.Config{
		SitesAvailable: cfg.Nginx.SitesAvailable,
		SitesEnabled:   cfg.Nginx.SitesEnabled,
		TestCommand:    cfg.Nginx.TestCommand,
		ReloadCommand:  cfg.Nginx.ReloadCommand,
	}, tmpl, nil, log)
}

// createProvisioner builds the provisioner for the configured mode.
func createProvisioner(cfg Config, log zerowrap.Logger) (out.ProxyProvisioner, error) {
	if cfg.Provision.Mode == ProvisionLocal {
		return createDeployer(cfg, log)
	}

	command, err := cfg.ProvisionCommand()
	if err != nil {
		return nil, err
	}
	return provisioner.NewExecProvisioner(command, log)
}

// buildHandler wires the use case and its adapters behind the HTTP
// middleware chain.
func buildHandler(cfg Config, store out.RegistryStore, verifier out.OwnershipVerifier, prov out.ProxyProvisioner, log zerowrap.Logger) (http.Handler, error) {
	allowed, err := middleware.ParsePrefixes(cfg.API.AllowedCIDRs)
	if err != nil {
		return nil, fmt.Errorf("invalid api.allowed_cidrs: %w", err)
	}
	trusted, err := middleware.ParsePrefixes(cfg.API.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("invalid api.trusted_proxies: %w", err)
	}

	svc := domains.NewService(store, verifier, prov, domains.Config{
		Ports:            cfg.PortRange(),
		VerifyTimeout:    cfg.DNS.Timeout,
		ProvisionTimeout: cfg.Provision.Timeout,
	})

	mux := http.NewServeMux()
	domainshttp.NewHandler(svc, log).RegisterRoutes(mux)

	var globalLimiter, ipLimiter out.RateLimiter
	if cfg.API.RateLimit.Enabled {
		globalLimiter = ratelimit.NewMemoryStore(cfg.API.RateLimit.GlobalRPS, cfg.API.RateLimit.Burst, time.Minute, log)
		ipLimiter = ratelimit.NewMemoryStore(cfg.API.RateLimit.PerIPRPS, cfg.API.RateLimit.Burst, ratelimit.DefaultIdleTTL, log)
	}

	chain := middleware.Chain(
		middleware.PanicRecovery(log),
		middleware.RequestLogger(log, trusted),
		middleware.APIHeaders,
		middleware.AllowCIDRs(allowed, trusted, log),
		middleware.RateLimit(globalLimiter, ipLimiter, trusted, log),
	)

	return chain(mux), nil
}
