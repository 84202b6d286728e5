package assets

import (
	"fmt"
	"path/filepath"

	"github.com/lumen3d/lumen/engine/core"
)

// Handler decodes one asset type from disk. Implementations must not retain
// goroutines past Load returning.
type Handler interface {
	Load(path string, params interface{}) (*Resource, error)
	Unload(*Resource) error
}

// Loader routes asset loads to the handler registered for the asset's type.
type Loader struct {
	basePath string
	handlers map[Type]Handler
}

func NewLoader(basePath string) *Loader {
	return &Loader{
		basePath: basePath,
		handlers: make(map[Type]Handler),
	}
}

// Register installs the handler for an asset type, replacing any previous
// registration.
func (l *Loader) Register(assetType Type, h Handler) {
	l.handlers[assetType] = h
}

// Load decodes the asset synchronously. Already-loaded assets return
// immediately without touching disk.
func (l *Loader) Load(a *Asset, params interface{}) error {
	a.mu.Lock()
	if a.state == StateLoaded {
		a.mu.Unlock()
		return nil
	}
	h, ok := l.handlers[a.Type]
	if !ok {
		a.state = StateFailed
		a.mu.Unlock()
		return fmt.Errorf("no handler registered for asset type %d", a.Type)
	}
	a.state = StateLoading
	a.mu.Unlock()

	res, err := h.Load(l.fullPath(a), params)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.state = StateFailed
		return err
	}
	res.Name = a.Name
	a.resource = res
	a.state = StateLoaded
	return nil
}

// LoadAsync decodes the asset on its own goroutine and reports through
// complete. The callback runs off the frame thread; callers marshal it back
// (the application does this through its deferred command queue).
func (l *Loader) LoadAsync(a *Asset, params interface{}, complete func(*Asset, error)) {
	go func() {
		err := l.Load(a, params)
		if complete != nil {
			complete(a, err)
		}
	}()
}

// Unload releases the asset's decoded resource. Unloaded assets are a no-op.
func (l *Loader) Unload(a *Asset) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.resource == nil {
		a.state = StateUnloaded
		return nil
	}
	h, ok := l.handlers[a.Type]
	if !ok {
		core.LogWarn("no handler registered to unload asset '%s'", a.Name)
		a.resource = nil
		a.state = StateUnloaded
		return nil
	}
	err := h.Unload(a.resource)
	a.resource = nil
	a.state = StateUnloaded
	return err
}

func (l *Loader) fullPath(a *Asset) string {
	if l.basePath == "" || filepath.IsAbs(a.Path) {
		return a.Path
	}
	return filepath.Join(l.basePath, a.Path)
}
