package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads the options file when it changes on disk and delivers the
// result on Events. Both channels are buffered and polled by the game loop.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	Events  chan Options
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory holding the store's file so that editors
// which replace the file on save are still noticed.
func NewWatcher(store *Store) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(store.Path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		store:   store,
		watcher: w,
		Events:  make(chan Options, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll returns the newest reloaded options without blocking.
func (w *Watcher) Poll() (Options, bool) {
	if w == nil {
		return Options{}, false
	}
	var (
		latest Options
		ok     bool
	)
	for {
		select {
		case opts := <-w.Events:
			latest, ok = opts, true
		default:
			return latest, ok
		}
	}
}

// PollError returns a pending watch or reload error without blocking.
func (w *Watcher) PollError() error {
	if w == nil {
		return nil
	}
	select {
	case err := <-w.Errors:
		return err
	default:
		return nil
	}
}

func (w *Watcher) run() {
	target := filepath.Clean(w.store.Path)
	// reload once the file has been quiet for reloadDebounce
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			opts, err := w.store.Load()
			if err != nil {
				w.sendErr(err)
				continue
			}
			select {
			case w.Events <- opts:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
