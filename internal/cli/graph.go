package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/phanxgames/radial/nodelink"
)

func newGraphCmd(root *rootOpts) *cobra.Command {
	var (
		output string
		opts   nodelink.Options
	)
	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Export the tree as a Graphviz node-link diagram",
		Long: `Graph writes the tree as DOT, or as SVG rendered by Graphviz when -o ends
in .svg. Shared subtrees appear once, with dashed edges for the extra links.
Without -o the DOT source is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tree, err := loadTree(ctx, optionalArg(args))
			if err != nil {
				return err
			}
			dot := nodelink.ToDOT(tree, opts)
			if output == "" {
				_, err := cmd.OutOrStdout().Write([]byte(dot))
				return err
			}

			prog := newProgress(loggerFromContext(ctx))
			data := []byte(dot)
			switch ext := strings.ToLower(filepath.Ext(output)); ext {
			case ".dot", ".gv":
			case ".svg":
				if data, err = nodelink.RenderSVG(ctx, dot); err != nil {
					return err
				}
			default:
				return errors.Newf("graph: unsupported output extension %q", ext)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrapf(err, "write %s", output)
			}
			prog.done("Wrote " + output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg)")
	cmd.Flags().BoolVar(&opts.LeftToRight, "lr", false, "lay out left to right")
	cmd.Flags().BoolVar(&opts.ShowIDs, "ids", false, "include node ids in labels")
	return cmd
}
