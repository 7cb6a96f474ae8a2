package cli

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/phanxgames/radial/viewer"
)

func newViewCmd(opts *rootOpts) *cobra.Command {
	var (
		showFPS  bool
		hideHelp bool
		watch    bool
	)
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Open an interactive window on a tree (example tree when no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := optionalArg(args)
			if watch && path == "" {
				return errors.New("view: --watch needs a tree file")
			}
			tree, err := loadTree(ctx, path)
			if err != nil {
				return err
			}
			v, err := newView(ctx, opts, tree, nil)
			if err != nil {
				return err
			}
			logger := loggerFromContext(ctx)
			rc := viewer.RunConfig{
				Title:     "radial - " + tree.Label(tree.Root()),
				ShowFPS:   showFPS,
				HideHelp:  hideHelp,
				Resizable: true,
			}
			if watch {
				tw, err := newTreeWatcher(path, logger)
				if err != nil {
					return err
				}
				ctx, cancel := context.WithCancel(ctx)
				defer cancel()
				go tw.Run(ctx)
				rc.Reload = tw.Trees()
				logger.Debug("watching tree file", "path", path)
			}
			logger.Info("Opening viewer", "root", tree.Label(tree.Root()), "nodes", tree.Len())
			return viewer.Run(v, rc)
		},
	}
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS counter")
	cmd.Flags().BoolVar(&hideHelp, "no-help", false, "start with the controls overlay hidden")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the tree file when it changes")
	return cmd
}
