package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher delivers debounced file events.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	config  Config

	// added holds directories registered with fsnotify; dirs and files
	// hold the paths passed to Add.
	added map[string]bool
	dirs  map[string]bool
	files map[string]bool

	pending map[string]*pendingEvent
	events  chan Event
	errors  chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

type pendingEvent struct {
	op    Op
	timer *time.Timer
}

// New creates a watcher and starts its event loop.
func New(opts ...Option) (*Watcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Delay <= 0 {
		config.Delay = DefaultDelay
	}
	if config.BufferSize <= 0 {
		config.BufferSize = 64
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		config:  config,
		added:   make(map[string]bool),
		dirs:    make(map[string]bool),
		files:   make(map[string]bool),
		pending: make(map[string]*pendingEvent),
		events:  make(chan Event, config.BufferSize),
		errors:  make(chan error, config.BufferSize),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()
	return w, nil
}

// Add watches a file or a directory.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	dir := abs
	if info.IsDir() {
		if w.dirs[abs] {
			return ErrAlreadyWatching
		}
	} else {
		if w.files[abs] {
			return ErrAlreadyWatching
		}
		dir = filepath.Dir(abs)
	}

	if !w.added[dir] {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		w.added[dir] = true
	}
	if info.IsDir() {
		w.dirs[abs] = true
	} else {
		w.files[abs] = true
	}
	return nil
}

// Events returns the event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and drops pending events.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	w.closedWg.Wait()
	err := w.watcher.Close()

	// Timers that already fired take the lock and see closed.
	w.mu.Lock()
	close(w.events)
	close(w.errors)
	w.mu.Unlock()
	return err
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	op := convertOp(ev.Op)
	if op == 0 {
		return
	}
	path := filepath.Clean(ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.wanted(path) {
		return
	}
	if p, ok := w.pending[path]; ok {
		p.op |= op
		p.timer.Reset(w.config.Delay)
		return
	}
	p := &pendingEvent{op: op}
	p.timer = time.AfterFunc(w.config.Delay, func() { w.flush(path) })
	w.pending[path] = p
}

// wanted reports whether path is watched. Callers hold mu.
func (w *Watcher) wanted(path string) bool {
	if w.files[path] {
		return true
	}
	return w.dirs[filepath.Dir(path)] && w.config.matches(path)
}

func (w *Watcher) flush(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := w.pending[path]
	if !ok || w.closed {
		return
	}
	delete(w.pending, path)

	select {
	case w.events <- Event{Path: path, Op: p.op, Timestamp: time.Now()}:
	default:
		// Channel full, drop event.
	}
}

func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}

// Run calls fn for every event until ctx is done or the watcher is
// closed. Watcher errors go to onError when it is not nil.
func (w *Watcher) Run(ctx context.Context, fn func(Event), onError func(error)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.events:
			if !ok {
				return ErrWatcherClosed
			}
			fn(ev)
		case err, ok := <-w.errors:
			if !ok {
				return ErrWatcherClosed
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
