// Package app provides the application initialization and wiring.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/zerowrap"
)

// Options are the command line inputs shared by the commands.
type Options struct {
	ConfigPath string
	EnvFile    string
	// Helper carries the deploy settings forwarded to the provision helper.
	Helper HelperSettings
}

// Run starts the API server and blocks until ctx is cancelled or a shutdown
// signal arrives.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts.ConfigPath, opts.EnvFile)
	if err != nil {
		return err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cfg.Validate(); err != nil {
		return log.WrapErr(err, "invalid configuration")
	}
	if err := cfg.ValidateTarget(); err != nil {
		return log.WrapErr(err, "invalid configuration")
	}

	ctx = zerowrap.WithCtx(ctx, log)

	store, closer, err := createStore(cfg, log)
	if err != nil {
		return log.WrapErr(err, "failed to create registry store")
	}
	defer closer.Close()

	verifier, err := createVerifier(cfg, log)
	if err != nil {
		return log.WrapErr(err, "failed to create DNS verifier")
	}

	prov, err := createProvisioner(cfg, log)
	if err != nil {
		return log.WrapErr(err, "failed to create provisioner")
	}

	handler, err := buildHandler(cfg, store, verifier, prov, log)
	if err != nil {
		return log.WrapErr(err, "failed to build HTTP handler")
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return log.WrapErr(err, "failed to listen")
	}

	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str("addr", ln.Addr().String()).
		Str("registry_backend", cfg.Registry.Backend).
		Str("registry_path", cfg.Registry.Path).
		Str("provision_mode", cfg.Provision.Mode).
		Str("target_ip", cfg.DNS.TargetIP).
		Msg("domain-hoster API listening")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, newHTTPServer(cfg, handler), ln, cfg.Server.ShutdownTimeout)
}

func newHTTPServer(cfg Config, handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// A deploy request may wait for DNS and the full provisioning run.
		WriteTimeout: cfg.DNS.Timeout + cfg.Provision.Timeout + 30*time.Second,
		IdleTimeout:  2 * time.Minute,
	}
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	log := zerowrap.FromCtx(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info().
			Str(zerowrap.FieldLayer, "app").
			Msg("shutting down HTTP server")
	}

	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Msg("domain-hoster shutdown complete")
	return nil
}

// exitError reports a failure whose details were already written to the
// user, so callers only need to exit non-zero.
type exitError struct {
	err error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var ee *exitError
	return errors.As(err, &ee)
}
