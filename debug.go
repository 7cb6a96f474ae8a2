package radial

import (
	"time"

	"github.com/charmbracelet/log"
)

// SetLogger enables per-frame layout stats at debug level. Pass nil to turn
// them off.
func (v *View) SetLogger(l *log.Logger) {
	v.logger = l
}

// logFrame reports timing and command counts for one layout pass.
func (v *View) logFrame(f *Frame, layout time.Duration) {
	st := f.Stats
	v.logger.Debug("frame",
		"n", v.frames,
		"layout", layout,
		"commands", len(f.Commands),
		"circles", st.Drawn,
		"culled", st.Culled,
		"lines", st.Lines,
		"labels", st.Labels,
		"depth", st.MaxDepth,
	)
	if st.Truncated {
		v.logger.Warn("layout stopped at depth limit", "max_depth", v.cfg.MaxDepth)
	}
}
