package cli

import (
	"github.com/spf13/cobra"

	"github.com/Wrap-pixelz/domain-hoster/internal/app"
)

func newProvisionCmd(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision [flags] [--] <domain> <port>",
		Short: "Deploy the nginx vhost for a domain (run as root)",
		Long: `Render the vhost template for a domain, install it into sites-available,
enable it in sites-enabled, test the nginx configuration and reload nginx.

The API server runs this command through sudo and passes its resolved port
range, nginx directories, template and commands as flags. It prints
"` + app.ProvisionSuccessMarker + `" on success. On failure the failing step and
its output go to stderr and the exit status is non-zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunProvision(cmd.Context(), *opts, args[0], args[1], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	app.BindHelperFlags(cmd.Flags(), &opts.Helper)
	return cmd
}
