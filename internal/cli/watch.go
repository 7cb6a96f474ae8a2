package cli

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/radial"
)

const watchDebounce = 200 * time.Millisecond

// treeWatcher reparses a tree file whenever it changes and delivers the new
// tree on Trees. Parse errors are logged and the previous tree stays up.
type treeWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	trees    chan radial.TreeView
	logger   *log.Logger
	debounce time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// newTreeWatcher watches the directory holding path, so editors that save by
// renaming a temp file over it are still seen.
func newTreeWatcher(path string, logger *log.Logger) (*treeWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "watch %s", path)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	return &treeWatcher{
		path:     abs,
		watcher:  w,
		trees:    make(chan radial.TreeView, 1),
		logger:   logger,
		debounce: watchDebounce,
	}, nil
}

// Trees returns the channel of reloaded trees. It is closed when the watcher
// stops.
func (tw *treeWatcher) Trees() <-chan radial.TreeView { return tw.trees }

// Run watches until ctx is done or the watcher is closed.
func (tw *treeWatcher) Run(ctx context.Context) {
	defer tw.shutdown()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != tw.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				tw.logger.Debug("tree file changed", "path", tw.path, "op", ev.Op.String())
				tw.schedule()
			}
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.logger.Warn("file watcher error", "err", err)
		}
	}
}

// schedule coalesces bursts of events into a single reload.
func (tw *treeWatcher) schedule() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timer != nil {
		tw.timer.Stop()
	}
	tw.timer = time.AfterFunc(tw.debounce, tw.reload)
}

func (tw *treeWatcher) shutdown() {
	tw.watcher.Close()
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timer != nil {
		tw.timer.Stop()
	}
	tw.closed = true
	close(tw.trees)
}

func (tw *treeWatcher) reload() {
	tree, err := radial.LoadTreeFile(tw.path)
	if err != nil {
		tw.logger.Warn("reload failed, keeping previous tree", "err", err)
		return
	}
	tw.logger.Info("Reloaded tree", "path", tw.path, "nodes", tree.Len())

	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return
	}
	// Only the newest tree matters.
	select {
	case <-tw.trees:
	default:
	}
	tw.trees <- tree
}
