// Package cli implements the CLI adapter for domain-hoster.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wrap-pixelz/domain-hoster/internal/app"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// NewRootCmd creates the root command for the domain-hoster CLI.
func NewRootCmd() *cobra.Command {
	opts := &app.Options{}

	rootCmd := &cobra.Command{
		Use:   "domain-hoster",
		Short: "domain-hoster - register domains behind an nginx reverse proxy",
		Long: `domain-hoster registers domain names, checks that their DNS A record
points at this server, and provisions an nginx virtual host proxying the
domain to a local backend port.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "Path to a .env file loaded before the environment")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newProvisionCmd(opts))
	rootCmd.AddCommand(newCheckDNSCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("domain-hoster %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	if version != "" {
		Version = version
	}
	if commit != "" {
		Commit = commit
	}
	if date != "" {
		BuildDate = date
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd := NewRootCmd()
	rootCmd.SilenceErrors = true
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !app.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
