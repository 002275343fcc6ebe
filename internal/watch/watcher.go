package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gentestx/internal/discovery"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Event is a saved source file that tests should be regenerated for.
type Event struct {
	Path  string
	Error error
}

// Watcher monitors a directory tree for changes to supported source files.
type Watcher struct {
	root     string
	scanner  *discovery.Scanner
	watcher  *fsnotify.Watcher
	events   chan Event
	debounce time.Duration
	logger   *zap.Logger
}

// NewWatcher creates a watcher for root. Directories the scanner skips are not watched.
func NewWatcher(root string, scanner *discovery.Scanner, logger *zap.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Watcher{
		root:     filepath.Clean(root),
		scanner:  scanner,
		watcher:  fsWatcher,
		events:   make(chan Event, 10),
		debounce: 300 * time.Millisecond,
		logger:   logger,
	}, nil
}

// SetDebounce changes how long a file must stay quiet before it is reported
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Events returns the channel that receives change events. It is closed when
// the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start registers the directory tree and begins watching.
func (w *Watcher) Start(ctx context.Context) error {
	info, err := os.Stat(w.root)
	if err != nil {
		return fmt.Errorf("watch path does not exist: %s", w.root)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch path is not a directory: %s", w.root)
	}

	if err := w.addTree(w.root); err != nil {
		return err
	}

	go w.run(ctx)
	return nil
}

// Stop closes the underlying watcher; the events channel closes afterwards.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.scanner.SkipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		w.logger.Debug("watching directory", zap.String("dir", path))
		return nil
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.events)

	// Debounce map to avoid multiple events for one save
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !w.scanner.SkipDir(filepath.Base(event.Name)) {
						if err := w.addTree(event.Name); err != nil {
							w.send(ctx, Event{Path: event.Name, Error: err})
						}
					}
					continue
				}
			}

			if !discovery.IsCandidate(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				pending[event.Name] = time.Now()
			} else if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				delete(pending, event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(ctx, Event{Error: err})

		case <-ticker.C:
			now := time.Now()
			for path, timestamp := range pending {
				if now.Sub(timestamp) >= w.debounce {
					delete(pending, path)
					w.logger.Debug("source changed", zap.String("path", path))
					w.send(ctx, Event{Path: path})
				}
			}
		}
	}
}

func (w *Watcher) send(ctx context.Context, event Event) {
	select {
	case w.events <- event:
	case <-ctx.Done():
	}
}
