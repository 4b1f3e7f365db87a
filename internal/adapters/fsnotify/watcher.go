// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches one file by watching its parent directory, so editors that save
// through rename-and-replace keep triggering events, and debounces rapid events
// (a single append often arrives as several writes).
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/corey/unitconv/internal/ports"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before onChange fires.
const DefaultDebounce = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
	stopped  bool
	mu       sync.Mutex

	// OnError receives watcher errors. Optional; errors are dropped when nil
	// since fsnotify recovers automatically.
	OnError func(error)
}

var _ ports.Watcher = (*Watcher)(nil)

// NewWatcher creates a new file watcher with the default debounce interval.
func NewWatcher() (*Watcher, error) {
	return NewWatcherWithDebounce(DefaultDebounce)
}

// NewWatcherWithDebounce creates a watcher with a custom debounce interval.
func NewWatcherWithDebounce(d time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if d <= 0 {
		d = DefaultDebounce
	}
	return &Watcher{
		fw:       fw,
		debounce: d,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. onChange is called with the absolute path
// once events for that file have been quiet for the debounce interval.
func (w *Watcher) Watch(path string, onChange func(filePath string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	fire := make(chan struct{}, 1)
	var timer *time.Timer

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				// Trailing-edge debounce: restart the quiet period on every event
				if timer == nil {
					timer = time.AfterFunc(w.debounce, func() {
						select {
						case fire <- struct{}{}:
						default:
						}
					})
				} else {
					timer.Reset(w.debounce)
				}

			case <-fire:
				onChange(absPath)

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				if w.OnError != nil {
					w.OnError(err)
				}

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources. It waits for an in-flight
// onChange call to return. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.done)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fw.Close()
}
