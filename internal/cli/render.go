package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/slashdevops/hwid"
	"github.com/slashdevops/hwid/internal/manifest"
)

// hashFlags holds the flags shared by render and verify.
type hashFlags struct {
	file      string
	algorithm string
	format    int
	json      bool
}

func (f *hashFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Identifier manifest (YAML or JSON); '-' reads stdin")
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "Hash algorithm, overrides the manifest (see 'hwid algorithms')")
	cmd.Flags().IntVar(&f.format, "format", 0, "Digest length: 0 (full), 32, 64, 128 or 256, overrides the manifest")
	cmd.Flags().BoolVar(&f.json, "json", false, "Output result as JSON")
}

// renderer builds a renderer from the manifest settings and flag overrides.
func (f *hashFlags) renderer(cmd *cobra.Command, m *manifest.Manifest, logger *slog.Logger) (*hwid.Renderer, error) {
	r, err := m.Renderer(logger)
	if err != nil {
		return nil, fmt.Errorf("manifest hash settings: %w", err)
	}

	if cmd.Flags().Changed("algorithm") {
		alg, err := hwid.ParseAlgorithm(f.algorithm)
		if err != nil {
			return nil, err
		}
		h, err := hwid.NewHasher(alg)
		if err != nil {
			return nil, err
		}
		r.WithHasher(h)
	}

	if cmd.Flags().Changed("format") {
		mode, err := hwid.ParseFormat(f.format)
		if err != nil {
			return nil, err
		}
		r.WithFormat(mode)
	}

	return r, nil
}

func newRenderCmd() *cobra.Command {
	var (
		flags hashFlags
		hash  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an identifier manifest as text or digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			m, err := loadManifest(cmd, flags.file)
			if err != nil {
				return err
			}

			r, err := flags.renderer(cmd, m, logger)
			if err != nil {
				return err
			}

			id := m.Identifier()
			out, err := r.Render(id, hash)
			if err != nil {
				return fmt.Errorf("failed to render identifier: %w", err)
			}

			if flags.json {
				result := map[string]any{
					"identifier": id.String(),
					"length":     len(out),
				}
				if hash {
					result["digest"] = out
					result["algorithm"] = r.Hasher().Algorithm()
					result["format"] = r.Format().String()
				}

				return printJSON(cmd.OutOrStdout(), result)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&hash, "hash", false, "Output the digest instead of the canonical text")

	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
