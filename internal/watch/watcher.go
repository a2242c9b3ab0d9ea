// Package watch reports changes to a layout file
package watch

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Notifier is the interface shared by Watcher and ManualWatcher
type Notifier interface {
	Changes() <-chan struct{}
	Errors() <-chan error
	Close() error
}

// Watcher monitors one file for modifications. Changes are coalesced: a
// burst of writes yields at least one notification but possibly only one.
type Watcher struct {
	watcher  *fsnotify.Watcher
	fs       FileSystem
	filePath string
	interval time.Duration
	last     fileState

	changes chan struct{}
	errors  chan error
	done    chan struct{}
	once    sync.Once
}

type fileState struct {
	exists  bool
	size    int64
	modTime time.Time
}

// Option configures a Watcher
type Option func(*Watcher)

// WithPollInterval sets how often the file is checked in addition to file
// system events. The default is 500ms.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithFileSystem replaces the file system used to stat the file
func WithFileSystem(fs FileSystem) Option {
	return func(w *Watcher) {
		w.fs = fs
	}
}

// New starts watching filePath. The file's directory must exist; the file
// itself may be created later.
func New(filePath string, opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsWatcher,
		fs:       OSFileSystem{},
		filePath: filepath.Clean(filePath),
		interval: 500 * time.Millisecond,
		changes:  make(chan struct{}, 1),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	// Watch the directory so editors that replace the file are followed
	if err := fsWatcher.Add(filepath.Dir(w.filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w.last, err = w.stat()
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	go w.watch()

	return w, nil
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.changes)
	defer close(w.errors)

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Polling as backup for file systems without events
			w.checkForChange()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.checkForChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// checkForChange notifies when the file's size, modification time or
// existence differs from the last check.
func (w *Watcher) checkForChange() {
	state, err := w.stat()
	if err != nil {
		w.sendError(err)
		return
	}
	if state == w.last {
		return
	}
	w.last = state
	if !state.exists {
		return
	}

	select {
	case w.changes <- struct{}{}:
	default:
		// A notification is already pending
	}
}

func (w *Watcher) stat() (fileState, error) {
	info, err := w.fs.Stat(w.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return fileState{}, nil
	}
	if err != nil {
		return fileState{}, err
	}
	return fileState{exists: true, size: info.Size(), modTime: info.ModTime()}, nil
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// Changes returns a channel that receives a value after the file changes
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching the file. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
