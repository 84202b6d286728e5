package assets

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/lumen3d/lumen/engine/core"
)

// Registry indexes the assets an application knows about and optionally
// watches the asset directory, marking assets stale when their file changes
// on disk. File events arrive on a watcher goroutine; the OnChange callback
// is expected to marshal back onto the frame thread.
type Registry struct {
	mutex  sync.RWMutex
	assets map[string]*Asset // keyed by name

	watcher  *fsnotify.Watcher
	done     chan struct{}
	isClosed bool

	// OnChange is invoked with the asset name whenever its backing file is
	// created or modified. May be nil.
	OnChange func(name string)
}

func NewRegistry() *Registry {
	return &Registry{
		assets: make(map[string]*Asset),
		done:   make(chan struct{}),
	}
}

// Add registers an asset. An existing asset with the same name is replaced.
func (r *Registry) Add(a *Asset) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.assets[a.Name] = a
}

// Remove drops the named asset. Unknown names are a no-op.
func (r *Registry) Remove(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.assets, name)
}

// Find returns the named asset, or nil with a warning.
func (r *Registry) Find(name string) *Asset {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	a, ok := r.assets[name]
	if !ok {
		core.LogWarn("no asset named '%s' in registry", name)
		return nil
	}
	return a
}

// List returns every asset, or only those flagged for preload.
func (r *Registry) List(preloadOnly bool) []*Asset {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	out := make([]*Asset, 0, len(r.assets))
	for _, a := range r.assets {
		if preloadOnly && !a.Preload {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Watch starts watching the named directory tree for changes. Assets whose
// backing file changes are reset to unloaded and reported via OnChange.
func (r *Registry) Watch(dir string) error {
	if r.isClosed {
		return errors.New("registry already closed")
	}
	if r.watcher != nil {
		return errors.New("registry is already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	r.watcher = watcher

	if err := r.addRecursive(dir); err != nil {
		watcher.Close()
		r.watcher = nil
		return err
	}

	go r.run()
	return nil
}

func (r *Registry) addRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return r.watcher.Add(path)
		}
		return nil
	})
}

func (r *Registry) run() {
	for {
		select {
		case e, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					_ = r.addRecursive(e.Name)
				}
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				r.handleFileEvent(e.Name)
			}

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-r.done:
			r.watcher.Close()
			return
		}
	}
}

// handleFileEvent marks any asset backed by the changed path as unloaded so
// the next load re-reads it from disk.
func (r *Registry) handleFileEvent(path string) {
	r.mutex.Lock()
	var changed string
	for _, a := range r.assets {
		if a.Path == path {
			a.reset()
			changed = a.Name
			break
		}
	}
	r.mutex.Unlock()

	if changed != "" && r.OnChange != nil {
		r.OnChange(changed)
	}
}

// Close stops the watcher goroutine and drops the index. Idempotent.
func (r *Registry) Close() error {
	if r.isClosed {
		return nil
	}
	r.isClosed = true
	if r.watcher != nil {
		close(r.done)
	}
	r.mutex.Lock()
	r.assets = make(map[string]*Asset)
	r.mutex.Unlock()
	return nil
}
