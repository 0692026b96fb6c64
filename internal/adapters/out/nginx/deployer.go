// Package nginx installs reverse proxy vhosts into an nginx configuration
// tree and reloads the server.
package nginx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/Wrap-pixelz/domain-hoster/internal/boundaries/out"
	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

// Ensure Deployer implements out.ProxyProvisioner.
var _ out.ProxyProvisioner = (*Deployer)(nil)

// Config locates the nginx configuration tree and its control commands.
type Config struct {
	SitesAvailable string
	SitesEnabled   string
	TestCommand    []string
	ReloadCommand  []string
}

// DefaultConfig returns the Debian layout of nginx.
func DefaultConfig() Config {
	return Config{
		SitesAvailable: "/etc/nginx/sites-available",
		SitesEnabled:   "/etc/nginx/sites-enabled",
		TestCommand:    []string{"nginx", "-t"},
		ReloadCommand:  []string{"systemctl", "reload", "nginx"},
	}
}

// Deployer performs the full vhost deployment: render, write, enable, test
// and reload. A failing step aborts the rest. Files written by earlier steps
// are left in place.
type Deployer struct {
	cfg      Config
	template *Template
	runner   CommandRunner
	log      zerowrap.Logger
}

// NewDeployer creates a deployer. A nil runner runs real commands.
func NewDeployer(cfg Config, tmpl *Template, runner CommandRunner, log zerowrap.Logger) (*Deployer, error) {
	if cfg.SitesAvailable == "" || cfg.SitesEnabled == "" {
		return nil, fmt.Errorf("%w: nginx sites directories are required", domain.ErrInvalidConfig)
	}
	if len(cfg.TestCommand) == 0 || len(cfg.ReloadCommand) == 0 {
		return nil, fmt.Errorf("%w: nginx test and reload commands are required", domain.ErrInvalidConfig)
	}
	if tmpl == nil {
		tmpl = DefaultTemplate()
	}
	if runner == nil {
		runner = ExecRunner{}
	}

	return &Deployer{
		cfg:      cfg,
		template: tmpl,
		runner:   runner,
		log:      log,
	}, nil
}

// Provision deploys the vhost for name proxying to the local port.
func (d *Deployer) Provision(ctx context.Context, name string, port int) error {
	log := d.log.With().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "nginx").
		Str("domain", name).
		Int("port", port).
		Logger()

	if err := domain.ValidateHostname(name); err != nil {
		return &domain.ProvisionError{Step: domain.StepRender, Err: err}
	}

	content, err := d.template.Render(VHost{Domain: name, Port: port})
	if err != nil {
		return &domain.ProvisionError{Step: domain.StepRender, Err: err}
	}

	availablePath := filepath.Join(d.cfg.SitesAvailable, name)
	if err := writeFileAtomic(availablePath, content, 0644); err != nil {
		return &domain.ProvisionError{Step: domain.StepWrite, Err: err}
	}
	log.Debug().Str("path", availablePath).Msg("vhost written")

	enabledPath := filepath.Join(d.cfg.SitesEnabled, name)
	if err := replaceSymlink(availablePath, enabledPath); err != nil {
		return &domain.ProvisionError{Step: domain.StepActivate, Err: err}
	}
	log.Debug().Str("path", enabledPath).Msg("vhost enabled")

	if err := d.run(ctx, domain.StepTest, d.cfg.TestCommand); err != nil {
		log.Warn().Err(err).Msg("nginx configuration test failed")
		return err
	}

	if err := d.run(ctx, domain.StepReload, d.cfg.ReloadCommand); err != nil {
		log.Warn().Err(err).Msg("nginx reload failed")
		return err
	}

	log.Info().Msg("vhost deployed")
	return nil
}

func (d *Deployer) run(ctx context.Context, step domain.ProvisionStep, command []string) error {
	output, err := d.runner.Run(ctx, command[0], command[1:]...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return &domain.ProvisionError{
			Step:   step,
			Output: strings.TrimSpace(string(output)),
			Err:    err,
		}
	}
	return nil
}

// replaceSymlink points link at target, replacing whatever link is already
// there.
func replaceSymlink(target, link string) error {
	fi, err := os.Lstat(link)
	switch {
	case err == nil:
		if fi.IsDir() {
			return fmt.Errorf("%s is a directory", link)
		}
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("failed to remove existing link: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to stat link: %w", err)
	}

	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp vhost file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write vhost file: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync vhost file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close vhost file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename vhost file: %w", err)
	}
	return nil
}
