package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AppVersion is overridden at build time with -ldflags "-X hexview/internal/cli.AppVersion=...".
var AppVersion = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print hexview version",
		Run: func(cmd *cobra.Command, args []string) {
			// keep output simple for scripting
			fmt.Fprintln(cmd.OutOrStdout(), AppVersion)
		},
	}
}
