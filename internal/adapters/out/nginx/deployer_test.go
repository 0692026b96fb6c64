package nginx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

type fakeRunner struct {
	calls   []string
	outputs map[string]string
	fail    map[string]bool
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, cmd)
	out := []byte(r.outputs[cmd])
	if r.fail[cmd] {
		return out, errors.New("exit status 1")
	}
	return out, nil
}

func setupDeployer(t *testing.T, runner *fakeRunner) (*Deployer, Config) {
	t.Helper()

	root := t.TempDir()
	cfg := DefaultConfig()
	cfg.SitesAvailable = filepath.Join(root, "sites-available")
	cfg.SitesEnabled = filepath.Join(root, "sites-enabled")
	require.NoError(t, os.MkdirAll(cfg.SitesAvailable, 0755))
	require.NoError(t, os.MkdirAll(cfg.SitesEnabled, 0755))

	d, err := NewDeployer(cfg, nil, runner, zerowrap.Default())
	require.NoError(t, err)
	return d, cfg
}

func TestNewDeployer_RequiresDirectoriesAndCommands(t *testing.T) {
	_, err := NewDeployer(Config{}, nil, nil, zerowrap.Default())
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	cfg := DefaultConfig()
	cfg.ReloadCommand = nil
	_, err = NewDeployer(cfg, nil, nil, zerowrap.Default())
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestDeployer_Provision_Success(t *testing.T) {
	runner := &fakeRunner{}
	d, cfg := setupDeployer(t, runner)

	err := d.Provision(context.Background(), "example.com", 3000)
	require.NoError(t, err)

	availablePath := filepath.Join(cfg.SitesAvailable, "example.com")
	content, err := os.ReadFile(availablePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "server_name example.com;")
	assert.Contains(t, string(content), "proxy_pass http://127.0.0.1:3000;")

	target, err := os.Readlink(filepath.Join(cfg.SitesEnabled, "example.com"))
	require.NoError(t, err)
	assert.Equal(t, availablePath, target)

	assert.Equal(t, []string{"nginx -t", "systemctl reload nginx"}, runner.calls)
}

func TestDeployer_Provision_ReplacesExistingLink(t *testing.T) {
	runner := &fakeRunner{}
	d, cfg := setupDeployer(t, runner)

	stale := filepath.Join(t.TempDir(), "stale")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))
	require.NoError(t, os.Symlink(stale, filepath.Join(cfg.SitesEnabled, "example.com")))

	require.NoError(t, d.Provision(context.Background(), "example.com", 4000))

	target, err := os.Readlink(filepath.Join(cfg.SitesEnabled, "example.com"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.SitesAvailable, "example.com"), target)
}

func TestDeployer_Provision_TestFailureSkipsReload(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{"nginx -t": "nginx: [emerg] syntax error\n"},
		fail:    map[string]bool{"nginx -t": true},
	}
	d, cfg := setupDeployer(t, runner)

	err := d.Provision(context.Background(), "x.com", 4500)

	require.ErrorIs(t, err, domain.ErrProvisioningFailed)
	var provErr *domain.ProvisionError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, domain.StepTest, provErr.Step)
	assert.Equal(t, "nginx: [emerg] syntax error", provErr.Diagnostics())
	assert.Equal(t, []string{"nginx -t"}, runner.calls)

	// Files from earlier steps are not rolled back.
	_, err = os.Stat(filepath.Join(cfg.SitesAvailable, "x.com"))
	assert.NoError(t, err)
}

func TestDeployer_Provision_ReloadFailure(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{"systemctl reload nginx": "Job for nginx.service failed"},
		fail:    map[string]bool{"systemctl reload nginx": true},
	}
	d, _ := setupDeployer(t, runner)

	err := d.Provision(context.Background(), "x.com", 4500)

	var provErr *domain.ProvisionError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, domain.StepReload, provErr.Step)
	assert.Equal(t, "Job for nginx.service failed", provErr.Diagnostics())
}

func TestDeployer_Provision_MissingSitesDirectory(t *testing.T) {
	runner := &fakeRunner{}
	cfg := DefaultConfig()
	cfg.SitesAvailable = filepath.Join(t.TempDir(), "missing")
	cfg.SitesEnabled = t.TempDir()
	d, err := NewDeployer(cfg, nil, runner, zerowrap.Default())
	require.NoError(t, err)

	err = d.Provision(context.Background(), "example.com", 3000)

	var provErr *domain.ProvisionError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, domain.StepWrite, provErr.Step)
	assert.Empty(t, runner.calls)
}

func TestDeployer_Provision_RejectsInvalidHostname(t *testing.T) {
	runner := &fakeRunner{}
	d, _ := setupDeployer(t, runner)

	err := d.Provision(context.Background(), "../../etc/passwd", 3000)

	assert.ErrorIs(t, err, domain.ErrProvisioningFailed)
	assert.ErrorIs(t, err, domain.ErrInvalidHostname)
	assert.Empty(t, runner.calls)
}

func TestExecRunner_Run(t *testing.T) {
	out, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo ok; echo oops >&2")
	require.NoError(t, err)
	assert.Contains(t, string(out), "ok")
	assert.Contains(t, string(out), "oops")

	_, err = ExecRunner{}.Run(context.Background(), "sh", "-c", "exit 3")
	assert.Error(t, err)
}
