// Package watcher reports changes in the directory currently shown.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDelay = 300 * time.Millisecond

var newFSWatcher = fsnotify.NewWatcher

// Watcher watches a single directory at a time and calls onChange once a burst
// of events has settled. Callbacks run on the watcher's goroutines.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func(dir string)
	onError  func(err error)
	delay    time.Duration

	mu    sync.Mutex
	dir   string
	timer *time.Timer

	closeOnce sync.Once
	done      chan struct{}
}

func New(delay time.Duration, onChange func(dir string), onError func(err error)) (*Watcher, error) {
	fsw, err := newFSWatcher()
	if err != nil {
		return nil, err
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		onError:  onError,
		delay:    delay,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch switches the watched directory to dir.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		_ = w.fsw.Remove(w.dir)
		w.dir = ""
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	w.dir = dir
	return nil
}

func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	dir := w.dir
	if dir == "" || (filepath.Dir(event.Name) != filepath.Clean(dir) && event.Name != dir) {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		select {
		case <-w.done:
			return
		default:
		}
		if w.onChange != nil {
			w.onChange(dir)
		}
	})
}
