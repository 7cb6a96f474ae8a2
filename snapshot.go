package radial

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// SnapshotFunc receives a labeled frame during script playback.
type SnapshotFunc func(label string, f *Frame) error

// SnapshotWriter writes labeled frames to a directory as NNN_label.png or
// NNN_label.svg, numbered in capture order.
type SnapshotWriter struct {
	dir    string
	format string
	bg     Color
	n      int
	paths  []string
}

// NewSnapshotWriter creates dir if needed. format is "png" or "svg".
func NewSnapshotWriter(dir, format string, bg Color) (*SnapshotWriter, error) {
	format = strings.ToLower(format)
	if format != "png" && format != "svg" {
		return nil, errors.Newf("snapshot format %q: want png or svg", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "snapshot dir %s", dir)
	}
	return &SnapshotWriter{dir: dir, format: format, bg: bg}, nil
}

// Write renders f and stores it under the next sequence number. It has the
// SnapshotFunc signature.
func (w *SnapshotWriter) Write(label string, f *Frame) error {
	var (
		data []byte
		err  error
	)
	if w.format == "svg" {
		data = RenderSVG(f, WithSVGBackground(w.bg))
	} else if data, err = RenderPNG(f, w.bg); err != nil {
		return err
	}
	w.n++
	path := filepath.Join(w.dir, fmt.Sprintf("%03d_%s.%s", w.n, sanitizeLabel(label), w.format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write snapshot %s", path)
	}
	w.paths = append(w.paths, path)
	return nil
}

// Paths returns the files written so far, in order.
func (w *SnapshotWriter) Paths() []string {
	return w.paths
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
