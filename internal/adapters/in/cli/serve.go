package cli

import (
	"github.com/spf13/cobra"

	"github.com/Wrap-pixelz/domain-hoster/internal/app"
)

// newServeCmd creates the serve command.
func newServeCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server exposing /health and /domains.

Deployments go through the privileged provision helper unless
provision.mode is "local".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), *opts)
		},
	}
}
