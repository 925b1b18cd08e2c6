package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slashdevops/hwid"
	"github.com/slashdevops/hwid/internal/version"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported hash algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, alg := range hwid.Algorithms() {
				if alg == hwid.DefaultAlgorithm {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", alg)
					continue
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), alg)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := version.Short()
			if long {
				v = version.Long()
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", applicationName, v)
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "Show detailed build information")

	return cmd
}
