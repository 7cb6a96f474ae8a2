package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/phanxgames/radial"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. It is
// called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	verbose    bool
	configPath string
}

// loadConfig returns the --config file on top of the defaults, or the
// defaults alone.
func (o *rootOpts) loadConfig() (radial.Config, error) {
	if o.configPath == "" {
		return radial.DefaultConfig(), nil
	}
	return radial.LoadConfig(o.configPath)
}

// NewRootCommand builds the radial command tree. Logs go to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	opts := &rootOpts{}
	root := &cobra.Command{
		Use:           "radial",
		Short:         "Explore trees as nested circles",
		Long:          `radial lays out n-ary trees as circles orbiting their parents and lets you pan and zoom through them, including self-referential "fractal" trees.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("radial %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config file")

	root.AddCommand(newViewCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newGraphCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	return root
}

// Execute runs the CLI with args taken from os.Args.
func Execute(ctx context.Context, stderr io.Writer) error {
	return NewRootCommand(stderr).ExecuteContext(ctx)
}

// loadTree reads a tree file, or returns the example tree for an empty path.
func loadTree(ctx context.Context, path string) (*radial.Tree[string], error) {
	logger := loggerFromContext(ctx)
	if path == "" {
		logger.Debug("using example tree")
		return radial.ExampleTree(), nil
	}
	tree, err := radial.LoadTreeFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded tree", "path", path, "nodes", tree.Len())
	return tree, nil
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// cameraFlags are the camera and viewport overrides shared by render and stats.
type cameraFlags struct {
	x, y, zoom    float64
	width, height int
}

func (f *cameraFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.x, "x", 0, "camera x offset in pixels")
	cmd.Flags().Float64Var(&f.y, "y", 0, "camera y offset in pixels")
	cmd.Flags().Float64Var(&f.zoom, "zoom", 1, "camera zoom")
	cmd.Flags().IntVar(&f.width, "width", 0, "viewport width (default from config)")
	cmd.Flags().IntVar(&f.height, "height", 0, "viewport height (default from config)")
}

// apply overrides the viewport in cfg and validates the camera.
func (f *cameraFlags) apply(cfg *radial.Config) (radial.CameraState, error) {
	if f.width > 0 {
		cfg.Width = f.width
	}
	if f.height > 0 {
		cfg.Height = f.height
	}
	if f.zoom <= 0 {
		return radial.CameraState{}, errors.Newf("zoom %v must be positive", f.zoom)
	}
	return radial.CameraState{X: f.x, Y: f.y, Zoom: f.zoom}, nil
}

// newView loads the config, applies camera flags and builds a view over tree.
func newView(ctx context.Context, opts *rootOpts, tree radial.TreeView, cam *cameraFlags) (*radial.View, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}
	state := radial.CameraState{Zoom: 1}
	if cam != nil {
		if state, err = cam.apply(&cfg); err != nil {
			return nil, err
		}
	}
	v, err := radial.NewView(tree, cfg, nil)
	if err != nil {
		return nil, err
	}
	v.Camera().JumpTo(state.X, state.Y, state.Zoom)
	if opts.verbose {
		v.SetLogger(loggerFromContext(ctx))
	}
	return v, nil
}
