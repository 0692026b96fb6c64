// Package provisioner runs vhost provisioning as a privileged helper process.
package provisioner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/Wrap-pixelz/domain-hoster/internal/boundaries/out"
	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

// Ensure ExecProvisioner implements out.ProxyProvisioner.
var _ out.ProxyProvisioner = (*ExecProvisioner)(nil)

// ExecProvisioner invokes `<command...> <domain> <port>` and maps a failed
// exit to a ProvisionError carrying the helper's diagnostics.
type ExecProvisioner struct {
	command []string
	log     zerowrap.Logger
}

// NewExecProvisioner creates a provisioner for the given command prefix, for
// example ["sudo", "/usr/local/bin/domain-hoster", "provision"].
func NewExecProvisioner(command []string, log zerowrap.Logger) (*ExecProvisioner, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, fmt.Errorf("%w: provision command is empty", domain.ErrInvalidConfig)
	}

	return &ExecProvisioner{
		command: append([]string(nil), command...),
		log:     log,
	}, nil
}

// Provision runs the helper and waits for it to finish or for ctx to expire.
func (p *ExecProvisioner) Provision(ctx context.Context, name string, port int) error {
	log := p.log.With().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "provisioner").
		Str("domain", name).
		Int("port", port).
		Logger()

	args := append(append([]string(nil), p.command[1:]...), name, strconv.Itoa(port))
	cmd := exec.CommandContext(ctx, p.command[0], args...)
	cmd.WaitDelay = 5 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	log = log.With().Dur(zerowrap.FieldDuration, time.Since(start)).Logger()

	if err != nil {
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = strings.TrimSpace(stdout.String())
		}

		var exitErr *exec.ExitError
		switch {
		case ctx.Err() != nil:
			err = fmt.Errorf("helper aborted: %w", ctx.Err())
		case errors.As(err, &exitErr):
			err = fmt.Errorf("helper exited with status %d", exitErr.ExitCode())
		default:
			err = fmt.Errorf("failed to start helper: %w", err)
		}

		log.Warn().Err(err).Str("output", output).Msg("provisioning helper failed")
		return &domain.ProvisionError{Step: domain.StepHelper, Output: output, Err: err}
	}

	log.Info().Str("output", strings.TrimSpace(stdout.String())).Msg("provisioning helper succeeded")
	return nil
}
