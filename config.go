package radial

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Config holds every layout, camera and viewport tunable. Construct one with
// DefaultConfig and override fields, or load a TOML file with LoadConfig.
type Config struct {
	// Width and Height are the viewport size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// BaseRadius is the root radius at zoom 1.
	BaseRadius float64 `toml:"base_radius"`
	// NodeDistance is the root-to-child center distance at zoom 1.
	NodeDistance float64 `toml:"node_distance"`
	// PackingFactor scales the chord between sibling slots into the distance
	// used for the next level. It controls how fast subtrees shrink.
	PackingFactor float64 `toml:"packing_factor"`
	// MinDrawRadius stops recursion below this screen radius.
	MinDrawRadius int64 `toml:"min_draw_radius"`
	// MinLabelRadius is the smallest screen radius that gets a label.
	// Must be greater than MinDrawRadius.
	MinLabelRadius int64 `toml:"min_label_radius"`
	// LabelReferenceSize is the font size labels are measured at before
	// being rescaled to fit.
	LabelReferenceSize float64 `toml:"label_reference_size"`
	// MaxDepth bounds recursion through shared subtrees. Zero or less means
	// unlimited.
	MaxDepth int `toml:"max_depth"`

	// ZoomRate is the fraction of the current zoom applied per unit of
	// relative zoom.
	ZoomRate float64 `toml:"zoom_rate"`
	// WheelZoomStep is the relative zoom amount per wheel notch.
	WheelZoomStep float64 `toml:"wheel_zoom_step"`
	// PanDuration is the zoom-to-node animation length in seconds.
	PanDuration float64 `toml:"pan_duration"`
	// TickRate is the animation tick frequency in Hz.
	TickRate int `toml:"tick_rate"`
	// DoubleClickInterval is the longest gap between two clicks, in seconds,
	// that still counts as a double click.
	DoubleClickInterval float64 `toml:"double_click_interval"`
	// DragDeadZone is the pointer travel in pixels below which a press and
	// release count as a click.
	DragDeadZone float64 `toml:"drag_dead_zone"`

	// Background is the clear color used by renderers.
	Background Color `toml:"background"`
}

// DefaultConfig returns the reference configuration: an 800x600 viewport,
// 50px root radius, 200px node distance and a one second pan at 30 Hz.
func DefaultConfig() Config {
	return Config{
		Width:               800,
		Height:              600,
		BaseRadius:          50,
		NodeDistance:        200,
		PackingFactor:       0.32,
		MinDrawRadius:       2,
		MinLabelRadius:      10,
		LabelReferenceSize:  20,
		MaxDepth:            1024,
		ZoomRate:            0.1,
		WheelZoomStep:       0.5,
		PanDuration:         1.0,
		TickRate:            30,
		DoubleClickInterval: 0.4,
		DragDeadZone:        4,
		Background:          Color{R: 80.0 / 255, G: 80.0 / 255, B: 90.0 / 255, A: 1},
	}
}

// Viewport returns the configured viewport.
func (c Config) Viewport() Viewport {
	return Viewport{Width: c.Width, Height: c.Height}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Wrapf(ErrInvalidConfig, "viewport %dx%d is negative", c.Width, c.Height)
	case c.BaseRadius <= 0:
		return errors.Wrapf(ErrInvalidConfig, "base_radius %v must be positive", c.BaseRadius)
	case c.NodeDistance <= 0:
		return errors.Wrapf(ErrInvalidConfig, "node_distance %v must be positive", c.NodeDistance)
	case c.PackingFactor <= 0:
		return errors.Wrapf(ErrInvalidConfig, "packing_factor %v must be positive", c.PackingFactor)
	case c.MinDrawRadius < 0:
		return errors.Wrapf(ErrInvalidConfig, "min_draw_radius %d is negative", c.MinDrawRadius)
	case c.MinDrawRadius >= c.MinLabelRadius:
		return errors.Wrapf(ErrInvalidConfig, "min_draw_radius %d must be below min_label_radius %d",
			c.MinDrawRadius, c.MinLabelRadius)
	case c.LabelReferenceSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "label_reference_size %v must be positive", c.LabelReferenceSize)
	case c.PanDuration < 0:
		return errors.Wrapf(ErrInvalidConfig, "pan_duration %v is negative", c.PanDuration)
	case c.TickRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick_rate %d must be positive", c.TickRate)
	}
	return nil
}

// ParseConfig decodes TOML data on top of DefaultConfig and validates the
// result. Keys absent from data keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
