package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var flags hashFlags

	cmd := &cobra.Command{
		Use:   "verify DIGEST",
		Short: "Check a digest against an identifier manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expected := args[0]
			logger := newLogger(cmd)

			m, err := loadManifest(cmd, flags.file)
			if err != nil {
				return err
			}

			r, err := flags.renderer(cmd, m, logger)
			if err != nil {
				return err
			}

			valid, err := r.Verify(m.Identifier(), expected)
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			if flags.json {
				if err := printJSON(cmd.OutOrStdout(), map[string]any{
					"valid":          valid,
					"expectedDigest": expected,
				}); err != nil {
					return err
				}
			} else if valid {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "valid: identifier matches")
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "invalid: identifier does not match")
			}

			if !valid {
				return errMismatch
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
