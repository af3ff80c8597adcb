package rawkit

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultSettleDelay is how long an arrival must stay quiet before it is
// classified. Instrument software streams acquisitions to disk, so a
// freshly created file keeps growing for a while.
const defaultSettleDelay = 2 * time.Second

// Arrival is a newly detected file or directory in a watched inbox.
type Arrival struct {
	Path string
	Type FileType
	Err  error // set when classification failed with an I/O error
}

// WatchOption configures a Watcher.
type WatchOption func(*watchOptions)

type watchOptions struct {
	settle   time.Duration
	selector FileSelector
}

// WithSettleDelay sets how long the watcher waits after the last write
// to an arrival before classifying it.
func WithSettleDelay(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		o.settle = d
	}
}

// WithWatchSelector restricts which arrivals are classified and reported.
func WithWatchSelector(selector FileSelector) WatchOption {
	return func(o *watchOptions) {
		o.selector = selector
	}
}

// Watcher observes an inbox directory and classifies raw data files as
// they arrive. Each new entry is left to settle, run through
// [DetectFileType], and delivered on Events.
//
// Close the watcher to release the underlying file system watch and
// close the Events channel.
type Watcher struct {
	settle   time.Duration
	selector FileSelector

	fsw    *fsnotify.Watcher
	events chan Arrival
	done   chan struct{}

	mu        sync.Mutex
	pending   map[string]*time.Timer
	closeOnce sync.Once
}

// NewWatcher starts watching dir for incoming raw data files.
func NewWatcher(dir string, opts ...WatchOption) (*Watcher, error) {
	options := watchOptions{settle: defaultSettleDelay, selector: All()}
	for _, opt := range opts {
		opt(&options)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &PathError{Op: "watch", Path: dir, Err: err}
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, &PathError{Op: "watch", Path: dir, Err: mapOSError(err)}
	}

	w := &Watcher{
		settle:   options.settle,
		selector: options.selector,
		fsw:      fsw,
		events:   make(chan Arrival, 16),
		done:     make(chan struct{}),
		pending:  make(map[string]*time.Timer),
	}

	go w.run()

	return w, nil
}

// Events delivers classified arrivals. The channel is closed after Close.
func (w *Watcher) Events() <-chan Arrival {
	return w.events
}

// Close stops watching and releases the file system watch.
// It is safe to call Close multiple times.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()

		w.mu.Lock()
		for _, timer := range w.pending {
			timer.Stop()
		}
		w.pending = nil
		close(w.events)
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				w.touch(event.Name)
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient on most platforms; keep watching
		}
	}
}

// touch (re)arms the settle timer for an arrival. Every write resets the
// timer, so a file is only classified once its producer has gone quiet.
func (w *Watcher) touch(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		return // closed
	}

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.settle)
		return
	}

	w.pending[path] = time.AfterFunc(w.settle, func() {
		w.settled(path)
	})
}

// settled classifies an arrival once its settle timer fires.
func (w *Watcher) settled(path string) {
	w.mu.Lock()
	delete(w.pending, path)
	w.mu.Unlock()

	info, err := fileInfo(path)
	if err != nil {
		// The arrival vanished before settling (temp files, renames)
		return
	}
	if !w.selector.Match(info) {
		return
	}

	t, err := DetectFileType(path)
	w.deliver(Arrival{Path: path, Type: t, Err: err})
}

// deliver hands an arrival to the consumer. Delivery never blocks the
// timer goroutine: if the buffer is full the arrival is dropped.
func (w *Watcher) deliver(a Arrival) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		return // closed
	}

	select {
	case w.events <- a:
	default:
	}
}
