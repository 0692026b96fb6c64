package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

type fixedVerifier bool

func (v fixedVerifier) Verify(context.Context, string) bool { return bool(v) }

// localConfig returns a config that provisions in-process into temp
// directories with stand-in nginx commands.
func localConfig(t *testing.T) Config {
	t.Helper()

	cfg, err := LoadConfig("", "")
	require.NoError(t, err)

	root := t.TempDir()
	cfg.DNS.TargetIP = "203.0.113.10"
	cfg.Registry.Path = filepath.Join(root, "data", "domains.json")
	cfg.Provision.Mode = ProvisionLocal
	cfg.Nginx.SitesAvailable = filepath.Join(root, "sites-available")
	cfg.Nginx.SitesEnabled = filepath.Join(root, "sites-enabled")
	cfg.Nginx.TestCommand = []string{"true"}
	cfg.Nginx.ReloadCommand = []string{"true"}
	cfg.API.RateLimit.Enabled = false
	require.NoError(t, os.MkdirAll(cfg.Nginx.SitesAvailable, 0755))
	require.NoError(t, os.MkdirAll(cfg.Nginx.SitesEnabled, 0755))
	return cfg
}

func newTestHandler(t *testing.T, cfg Config, verified bool) http.Handler {
	t.Helper()
	log := zerowrap.Default()

	store, closer, err := createStore(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { closer.Close() })

	prov, err := createProvisioner(cfg, log)
	require.NoError(t, err)

	handler, err := buildHandler(cfg, store, fixedVerifier(verified), prov, log)
	require.NoError(t, err)
	return handler
}

func do(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.RemoteAddr = "127.0.0.1:40000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestBuildHandler_LocalDeployLifecycle(t *testing.T) {
	for _, backend := range []string{BackendJSON, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := localConfig(t)
			cfg.Registry.Backend = backend
			handler := newTestHandler(t, cfg, true)

			rec := do(handler, http.MethodPost, "/domains", `{"domain":"example.com","port":3000}`)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

			target, err := os.Readlink(filepath.Join(cfg.Nginx.SitesEnabled, "example.com"))
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(cfg.Nginx.SitesAvailable, "example.com"), target)

			rec = do(handler, http.MethodGet, "/domains", "")
			assert.JSONEq(t, `{"example.com":{"port":3000,"status":"active"}}`, rec.Body.String())

			rec = do(handler, http.MethodPost, "/domains", `{"domain":"example.com","port":3001}`)
			assert.Equal(t, http.StatusConflict, rec.Code)

			rec = do(handler, http.MethodDelete, "/domains/example.com", "")
			assert.Equal(t, http.StatusOK, rec.Code)

			rec = do(handler, http.MethodGet, "/domains", "")
			assert.JSONEq(t, `{}`, rec.Body.String())
		})
	}
}

func TestBuildHandler_JSONFileFormat(t *testing.T) {
	cfg := localConfig(t)
	handler := newTestHandler(t, cfg, true)

	rec := do(handler, http.MethodPost, "/domains", `{"domain":"example.com","port":"3000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	data, err := os.ReadFile(cfg.Registry.Path)
	require.NoError(t, err)
	var registry domain.Registry
	require.NoError(t, json.Unmarshal(data, &registry))
	assert.Equal(t, domain.Registry{"example.com": {Port: 3000, Status: domain.DomainStatusActive}}, registry)
	assert.Contains(t, string(data), "\n  \"example.com\"")
}

func TestBuildHandler_ProvisioningFailure(t *testing.T) {
	cfg := localConfig(t)
	cfg.Nginx.TestCommand = []string{"sh", "-c", "echo 'nginx: [emerg] syntax error' >&2; exit 1"}
	handler := newTestHandler(t, cfg, true)

	rec := do(handler, http.MethodPost, "/domains", `{"domain":"x.com","port":4500}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"NGINX deployment failed","details":"nginx: [emerg] syntax error"}`, rec.Body.String())

	_, err := os.Stat(cfg.Registry.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestBuildHandler_OwnershipMismatch(t *testing.T) {
	cfg := localConfig(t)
	handler := newTestHandler(t, cfg, false)

	rec := do(handler, http.MethodPost, "/domains", `{"domain":"example.com","port":3000}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Domain A record does not point to VPS IP"}`, rec.Body.String())
}

func TestBuildHandler_AllowedCIDRs(t *testing.T) {
	cfg := localConfig(t)
	cfg.API.AllowedCIDRs = []string{"10.0.0.0/8"}
	handler := newTestHandler(t, cfg, true)

	rec := do(handler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBuildHandler_InvalidCIDR(t *testing.T) {
	cfg := localConfig(t)
	cfg.API.TrustedProxies = []string{"nope"}

	_, err := buildHandler(cfg, nil, fixedVerifier(true), nil, zerowrap.Default())
	assert.Error(t, err)
}

func TestBuildHandler_RateLimited(t *testing.T) {
	cfg := localConfig(t)
	cfg.API.RateLimit.Enabled = true
	cfg.API.RateLimit.GlobalRPS = 100
	cfg.API.RateLimit.PerIPRPS = 0.001
	cfg.API.RateLimit.Burst = 2
	handler := newTestHandler(t, cfg, true)

	assert.Equal(t, http.StatusOK, do(handler, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(handler, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(handler, http.MethodGet, "/health", "").Code)
}

func TestServe_GracefulShutdown(t *testing.T) {
	cfg := localConfig(t)
	handler := newTestHandler(t, cfg, true)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(zerowrap.WithCtx(context.Background(), zerowrap.Default()))
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, newHTTPServer(cfg, handler), ln, time.Second)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestProvision_Helper(t *testing.T) {
	cfg := localConfig(t)
	var stdout, stderr bytes.Buffer

	err := provision(context.Background(), cfg, zerowrap.Default(), "Example.com", "3000", &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, ProvisionSuccessMarker+"\n", stdout.String())
	assert.Empty(t, stderr.String())
	_, err = os.Stat(filepath.Join(cfg.Nginx.SitesAvailable, "example.com"))
	assert.NoError(t, err)
}

func TestProvision_HelperRejectsBadInput(t *testing.T) {
	cfg := localConfig(t)
	var stdout, stderr bytes.Buffer

	err := provision(context.Background(), cfg, zerowrap.Default(), "../etc", "3000", &stdout, &stderr)
	assert.ErrorIs(t, err, domain.ErrInvalidHostname)

	err = provision(context.Background(), cfg, zerowrap.Default(), "example.com", "abc", &stdout, &stderr)
	assert.ErrorIs(t, err, domain.ErrPortNotInteger)

	err = provision(context.Background(), cfg, zerowrap.Default(), "example.com", "80", &stdout, &stderr)
	assert.ErrorIs(t, err, domain.ErrPortOutOfRange)

	assert.Empty(t, stdout.String())
}

func TestProvision_HelperReportsFailedStep(t *testing.T) {
	cfg := localConfig(t)
	cfg.Nginx.ReloadCommand = []string{"sh", "-c", "echo 'Job for nginx.service failed' >&2; exit 1"}
	var stdout, stderr bytes.Buffer

	err := provision(context.Background(), cfg, zerowrap.Default(), "example.com", "3000", &stdout, &stderr)

	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.ErrorIs(t, err, domain.ErrProvisioningFailed)
	assert.Equal(t, "reload step failed: Job for nginx.service failed\n", stderr.String())
	assert.Empty(t, stdout.String())
}
