package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/dshills/offsettree/offsettree"
)

// entry pairs a tracked file's current tree with the opaque handle that
// identifies its watch registration. The handle stays the same when a
// re-sync swaps in a new tree.
type entry struct {
	id   uuid.UUID
	tree *offsettree.Tree
}

// Registry tracks a set of files, keeping one offsettree.Tree per file in
// sync with its contents on disk. Rather than surfacing raw fsnotify
// events to its caller, a Registry resolves each
// write event itself: it re-reads the file, rebuilds the tree through
// offsettree.New and swaps it in under its own lock, so Lookup always
// returns a tree matching what's on disk as of the last processed event.
type Registry struct {
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	entries map[string]*entry
	closed  bool

	errc    chan error
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// NewRegistry starts the fsnotify event loop. Call Close to release it.
func NewRegistry() (*Registry, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: creating fsnotify watcher: %w", err)
	}

	r := &Registry{
		watcher: w,
		entries: make(map[string]*entry),
		errc:    make(chan error, 16),
		closeCh: make(chan struct{}),
	}

	r.wg.Add(1)
	go r.run()

	return r, nil
}

// Watch reads path, builds its initial tree, and starts tracking it for
// future writes. Re-watching an already-tracked path is ErrAlreadyWatching.
func (r *Registry) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: resolving %s: %w", path, err)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrRegistryClosed
	}
	if _, ok := r.entries[abs]; ok {
		r.mu.Unlock()
		return ErrAlreadyWatching
	}
	r.mu.Unlock()

	buf, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("watch: reading %s: %w", abs, err)
	}
	tree, err := offsettree.New(buf)
	if err != nil {
		return fmt.Errorf("watch: building tree for %s: %w", abs, err)
	}
	if err := r.watcher.Add(abs); err != nil {
		return fmt.Errorf("watch: adding %s to fsnotify: %w", abs, err)
	}

	r.mu.Lock()
	r.entries[abs] = &entry{id: uuid.New(), tree: tree}
	r.mu.Unlock()

	return nil
}

// Unwatch stops tracking path. The file itself is untouched.
func (r *Registry) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: resolving %s: %w", path, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRegistryClosed
	}
	if _, ok := r.entries[abs]; !ok {
		return ErrNotWatching
	}
	delete(r.entries, abs)
	return r.watcher.Remove(abs)
}

// Lookup returns the current handle and tree for a tracked path. ok is
// false if path isn't being watched.
func (r *Registry) Lookup(path string) (id uuid.UUID, tree *offsettree.Tree, ok bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return uuid.UUID{}, nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	e, found := r.entries[abs]
	if !found {
		return uuid.UUID{}, nil, false
	}
	return e.id, e.tree, true
}

// Errors returns the channel onto which re-sync failures (read errors,
// invalid UTF-8 after an edit, etc.) are delivered. Full sends are dropped
// rather than blocking the event loop.
func (r *Registry) Errors() <-chan error {
	return r.errc
}

// Close stops the event loop and releases the underlying fsnotify handle.
// Safe to call once; a second call returns ErrRegistryClosed.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrRegistryClosed
	}
	r.closed = true
	r.mu.Unlock()

	close(r.closeCh)
	r.wg.Wait()
	return r.watcher.Close()
}

func (r *Registry) run() {
	defer r.wg.Done()

	for {
		select {
		case <-r.closeCh:
			return

		case ev, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				r.resync(ev.Name)
			}
			if ev.Op&fsnotify.Remove != 0 {
				r.drop(ev.Name)
			}

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.reportErr(fmt.Errorf("watch: fsnotify: %w", err))
		}
	}
}

func (r *Registry) resync(path string) {
	buf, err := os.ReadFile(path)
	if err != nil {
		r.reportErr(fmt.Errorf("watch: re-reading %s: %w", path, err))
		return
	}
	tree, err := offsettree.New(buf)
	if err != nil {
		r.reportErr(fmt.Errorf("watch: rebuilding tree for %s: %w", path, err))
		return
	}

	r.mu.Lock()
	if e, ok := r.entries[path]; ok {
		e.tree = tree
	}
	r.mu.Unlock()
}

func (r *Registry) drop(path string) {
	r.mu.Lock()
	delete(r.entries, path)
	r.mu.Unlock()
}

func (r *Registry) reportErr(err error) {
	select {
	case r.errc <- err:
	default:
	}
}
