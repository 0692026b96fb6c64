package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

// ProvisionSuccessMarker is printed by the helper after a successful deploy.
const ProvisionSuccessMarker = "NGINX DEPLOYED"

// RunProvision is the privileged helper: it deploys the vhost for one domain
// in-process and reports the outcome on stdout or stderr. Settings forwarded
// in opts.Helper take precedence over the loaded configuration.
func RunProvision(ctx context.Context, opts Options, name, portArg string, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig(opts.ConfigPath, opts.EnvFile)
	if err != nil {
		return err
	}
	opts.Helper.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	return provision(ctx, cfg, helperLogger(cfg), name, portArg, stdout, stderr)
}

// helperLogger returns a logger that stays off stderr: the API server hands
// the helper's stderr to clients as deployment diagnostics.
func helperLogger(cfg Config) zerowrap.Logger {
	return zerowrap.New(zerowrap.Config{Level: "fatal", Format: cfg.Logging.Format})
}

func provision(ctx context.Context, cfg Config, log zerowrap.Logger, name, portArg string, stdout, stderr io.Writer) error {
	name = domain.NormalizeHostname(name)
	if err := domain.ValidateHostname(name); err != nil {
		return err
	}

	port, err := strconv.Atoi(strings.TrimSpace(portArg))
	if err != nil {
		return domain.ErrPortNotInteger
	}
	if err := cfg.PortRange().Check(port); err != nil {
		return err
	}

	deployer, err := createDeployer(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Provision.Timeout)
	defer cancel()

	if err := deployer.Provision(ctx, name, port); err != nil {
		var provErr *domain.ProvisionError
		if errors.As(err, &provErr) {
			fmt.Fprintf(stderr, "%s step failed: %s\n", provErr.Step, provErr.Diagnostics())
			return &exitError{err: err}
		}
		return err
	}

	fmt.Fprintln(stdout, ProvisionSuccessMarker)
	return nil
}
