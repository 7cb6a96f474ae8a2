package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(root *rootOpts) *cobra.Command {
	var cam cameraFlags
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print tree and layout statistics for a camera position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tree, err := loadTree(ctx, optionalArg(args))
			if err != nil {
				return err
			}
			v, err := newView(ctx, root, tree, &cam)
			if err != nil {
				return err
			}
			f := v.Frame()
			st := f.Stats
			vp := v.Viewport()
			c := v.Camera().Current()

			w := cmd.OutOrStdout()
			printTitle(w, tree.Label(tree.Root()))
			printKeyNumber(w, "nodes", tree.Len())
			printKeyValue(w, "viewport", fmt.Sprintf("%dx%d", vp.Width, vp.Height))
			printKeyValue(w, "camera", fmt.Sprintf("%.1f, %.1f @ %s", c.X, c.Y, v.ZoomLabel()))
			printKeyNumber(w, "visited", st.Visited)
			printKeyNumber(w, "circles", st.Drawn)
			printKeyNumber(w, "culled", st.Culled)
			printKeyNumber(w, "lines", st.Lines)
			printKeyNumber(w, "lines culled", st.LinesCulled)
			printKeyNumber(w, "labels", st.Labels)
			printKeyNumber(w, "max depth", st.MaxDepth)
			printKeyNumber(w, "commands", len(f.Commands))
			if st.Truncated {
				printWarning(w, "layout stopped at depth limit %d", v.Config().MaxDepth)
				printDetail(w, "raise max_depth in the config file to draw further")
			}
			return nil
		},
	}
	cam.register(cmd)
	return cmd
}
