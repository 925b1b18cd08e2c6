// Package cli implements the hwid command line tool.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/slashdevops/hwid/internal/manifest"
)

const applicationName = "hwid"

// errMismatch is returned by verify after it already reported the result.
var errMismatch = errors.New("identifier does not match")

// NewRootCmd returns the hwid command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   applicationName,
		Short: "Render deterministic hardware identifiers",
		Long: `hwid renders identifier manifests into the canonical text form

  NAME[TYPE(key=value, ...), ...]

or into a fixed-length digest of that text.

Examples:
  hwid render -f hwid.yaml
  hwid render -f hwid.yaml --hash --algorithm sha256 --format 32
  cat hwid.yaml | hwid render -f - --hash --json
  hwid verify -f hwid.yaml <digest>`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(
		newRenderCmd(),
		newVerifyCmd(),
		newAlgorithmsCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree and reports errors on stderr.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errMismatch) {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}

	return err
}

// newLogger returns a text logger on the command's stderr. --verbose lowers
// the level to debug.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadManifest reads the manifest at path, or stdin when path is "-".
func loadManifest(cmd *cobra.Command, path string) (*manifest.Manifest, error) {
	if path == "" {
		return nil, errors.New("no manifest given; use -f FILE or -f - for stdin")
	}

	if path == "-" {
		return manifest.Parse(cmd.InOrStdin(), "stdin")
	}

	return manifest.Load(path)
}
