package preview

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// SceneChangedMsg reports that the watched scene file was written.
type SceneChangedMsg struct {
	Path string
}

// WatchErrorMsg carries an error from the file watcher.
type WatchErrorMsg struct {
	Err error
}

// Watcher turns writes to one scene file into messages. It watches the
// parent directory so editors that save by rename are still seen.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan struct{}
	errs    chan error
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:    abs,
		watcher: fsw,
		// One pending change is enough: bursts of writes collapse into a
		// single reload.
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		ctx:     ctx,
		cancel:  cancel,
	}
	go w.processEvents()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				select {
				case w.changes <- struct{}{}:
				default:
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// Wait returns a command that blocks until the next change or error. After
// Close it yields nil, ending the chain.
func (w *Watcher) Wait() tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-w.ctx.Done():
			return nil
		case <-w.changes:
			return SceneChangedMsg{Path: w.path}
		case err := <-w.errs:
			return WatchErrorMsg{Err: err}
		}
	}
}

// Close stops the watcher goroutine. Safe to call more than once.
func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		w.cancel()
		err = w.watcher.Close()
	})
	return err
}
