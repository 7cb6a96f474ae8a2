package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/phanxgames/radial"
)

type renderOpts struct {
	output string // output file for a single frame
	script string // playback script
	dir    string // snapshot directory for script playback
	format string // snapshot format: png or svg
	cam    cameraFlags
}

func newRenderCmd(root *rootOpts) *cobra.Command {
	opts := renderOpts{dir: "snapshots", format: "png"}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree to PNG or SVG",
		Long: `Render lays the tree out once at the given camera and writes -o, whose
extension selects PNG or SVG. With --script it instead replays a navigation
script and writes one file per snapshot step into --dir.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			tree, err := loadTree(ctx, optionalArg(args))
			if err != nil {
				return err
			}
			v, err := newView(ctx, root, tree, &opts.cam)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			if opts.script != "" {
				n, err := runScript(cmd, v, opts)
				if err != nil {
					return err
				}
				prog.done("Wrote " + plural(n, "snapshot") + " to " + opts.dir)
				return nil
			}
			if opts.output == "" {
				return errors.New("render: -o or --script is required")
			}
			if err := writeFrame(v, opts.output); err != nil {
				return err
			}
			prog.done("Wrote " + opts.output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.png or .svg)")
	cmd.Flags().StringVar(&opts.script, "script", "", "JSON navigation script to replay")
	cmd.Flags().StringVar(&opts.dir, "dir", opts.dir, "snapshot directory for --script")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "snapshot format for --script: png or svg")
	opts.cam.register(cmd)
	return cmd
}

func runScript(cmd *cobra.Command, v *radial.View, opts renderOpts) (int, error) {
	s, err := radial.LoadScript(opts.script)
	if err != nil {
		return 0, err
	}
	w, err := radial.NewSnapshotWriter(opts.dir, opts.format, v.Config().Background)
	if err != nil {
		return 0, err
	}
	logger := loggerFromContext(cmd.Context())
	logger.Debug("replaying script", "path", opts.script, "steps", s.Len())
	err = s.Run(cmd.Context(), v, func(label string, f *radial.Frame) error {
		if err := w.Write(label, f); err != nil {
			return err
		}
		paths := w.Paths()
		logger.Debug("snapshot", "path", paths[len(paths)-1])
		return nil
	})
	return len(w.Paths()), err
}

// writeFrame renders the view's current frame to path, choosing the format
// from the extension.
func writeFrame(v *radial.View, path string) error {
	f := v.Frame()
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		data = radial.RenderSVG(f, radial.WithSVGBackground(v.Config().Background))
	case ".png":
		if data, err = radial.RenderPNG(f, v.Config().Background); err != nil {
			return err
		}
	default:
		return errors.Newf("render: unsupported output extension %q", ext)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
