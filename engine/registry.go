package engine

import "sync"

// Process-wide lookup of running applications, keyed by surface id. This is
// deliberately not an ambient "the application" global: subsystems receive
// their application explicitly, and this map only serves embedders that run
// several applications and need to find one from its surface.
var (
	registryMu   sync.RWMutex
	applications = make(map[uint64]*Application)
	current      *Application
)

func registerApplication(a *Application) {
	registryMu.Lock()
	defer registryMu.Unlock()
	applications[a.surface.ID()] = a
}

// unregisterApplication removes a from the registry. The entry and the
// current pointer are only cleared if they still refer to a, so a stale
// destroy cannot clobber a newer application on the same surface.
func unregisterApplication(a *Application, surfaceID uint64) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if applications[surfaceID] == a {
		delete(applications, surfaceID)
	}
	if current == a {
		current = nil
	}
}

func setCurrent(a *Application) {
	registryMu.Lock()
	current = a
	registryMu.Unlock()
}

// Current returns the application that most recently ran a frame, or nil.
func Current() *Application {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return current
}

// Lookup returns the application driving the given surface, or nil.
func Lookup(surfaceID uint64) *Application {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return applications[surfaceID]
}
