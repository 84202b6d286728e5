package assets

import (
	"sync"

	"github.com/google/uuid"
)

type Type int

const (
	TypeNone Type = iota
	TypeImage
	TypeBitmapFont
	TypeSystemFont
	TypeBinary
	TypeText
)

type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateFailed
)

// Resource is the decoded payload of a loaded asset. Data's concrete type
// depends on the loader that produced it.
type Resource struct {
	Name     string
	FullPath string
	DataSize uint64
	Data     interface{}
}

// Asset is one registered entry in the registry. Assets flagged Preload are
// loaded eagerly as a batch before the application is considered ready.
// State and resource are touched by loader goroutines and the hot-reload
// watcher, so they are guarded by the asset's own mutex.
type Asset struct {
	ID      uuid.UUID
	Name    string
	Path    string
	Type    Type
	Preload bool

	mu       sync.RWMutex
	state    State
	resource *Resource
}

func NewAsset(name, path string, assetType Type, preload bool) *Asset {
	return &Asset{
		ID:      uuid.New(),
		Name:    name,
		Path:    path,
		Type:    assetType,
		Preload: preload,
	}
}

func (a *Asset) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *Asset) Loaded() bool {
	return a.State() == StateLoaded
}

func (a *Asset) Resource() *Resource {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.resource
}

// reset returns the asset to unloaded with no resource. Used by the
// hot-reload watcher when the backing file changes.
func (a *Asset) reset() {
	a.mu.Lock()
	a.state = StateUnloaded
	a.resource = nil
	a.mu.Unlock()
}
