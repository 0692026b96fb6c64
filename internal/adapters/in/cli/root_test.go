package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"serve", "provision", "check-dns", "version"})
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("env-file"))
}

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "")
	t.Cleanup(func() { Version, Commit = "dev", "unknown" })

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "domain-hoster 1.2.3")
	assert.Contains(t, out.String(), "Commit: abc123")
	assert.Contains(t, out.String(), "Build Date: unknown")
}

func TestProvisionCmd_RequiresTwoArgs(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"provision", "example.com"})

	assert.Error(t, root.Execute())
}

func TestCheckDNSCmd_RequiresDomain(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"check-dns"})

	assert.Error(t, root.Execute())
}
