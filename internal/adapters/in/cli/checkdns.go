package cli

import (
	"github.com/spf13/cobra"

	"github.com/Wrap-pixelz/domain-hoster/internal/app"
)

func newCheckDNSCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check-dns <domain>",
		Short: "Check that a domain's A record points at this server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunCheckDNS(cmd.Context(), *opts, args[0], cmd.OutOrStdout())
		},
	}
}
