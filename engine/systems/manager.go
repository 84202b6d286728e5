// Package systems owns the component-system registry: the ordered set of
// engine subsystems the frame loop drives through their lifecycle hooks.
package systems

import (
	"github.com/lumen3d/lumen/engine/core"
)

// Registry fires lifecycle hooks into every registered system in
// registration order.
type Registry struct {
	systems   []System
	destroyed bool
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a system. Systems registered after Initialize has run
// will not receive the initialize hooks.
func (r *Registry) Register(s System) {
	r.systems = append(r.systems, s)
}

// Get returns the named system, or nil if it is not registered.
func (r *Registry) Get(name string) System {
	for _, s := range r.systems {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func (r *Registry) Initialize() error {
	for _, s := range r.systems {
		if err := s.Initialize(); err != nil {
			core.LogError("system '%s' failed to initialize: %s", s.Name(), err.Error())
			return err
		}
	}
	return nil
}

func (r *Registry) PostInitialize() error {
	for _, s := range r.systems {
		if err := s.PostInitialize(); err != nil {
			core.LogError("system '%s' failed to post-initialize: %s", s.Name(), err.Error())
			return err
		}
	}
	return nil
}

// PostPostInitialize fires the third initialization pass into every system
// that implements it. Runs only after PostInitialize has completed for all
// systems.
func (r *Registry) PostPostInitialize() error {
	for _, s := range r.systems {
		if pp, ok := s.(PostPostInitializer); ok {
			if err := pp.PostPostInitialize(); err != nil {
				core.LogError("system '%s' failed to post-post-initialize: %s", s.Name(), err.Error())
				return err
			}
		}
	}
	return nil
}

// FixedUpdate fires the fixed-step hook into every system that implements
// it. Legacy update mode only.
func (r *Registry) FixedUpdate(step float64) {
	for _, s := range r.systems {
		if fu, ok := s.(FixedUpdater); ok {
			if err := fu.FixedUpdate(step); err != nil {
				core.LogError("system '%s' fixed update failed: %s", s.Name(), err.Error())
			}
		}
	}
}

func (r *Registry) Update(deltaTime float64) {
	for _, s := range r.systems {
		if err := s.Update(deltaTime); err != nil {
			core.LogError("system '%s' update failed: %s", s.Name(), err.Error())
		}
	}
}

func (r *Registry) AnimationUpdate(deltaTime float64) {
	for _, s := range r.systems {
		if au, ok := s.(AnimationUpdater); ok {
			if err := au.AnimationUpdate(deltaTime); err != nil {
				core.LogError("system '%s' animation update failed: %s", s.Name(), err.Error())
			}
		}
	}
}

func (r *Registry) PostUpdate(deltaTime float64) {
	for _, s := range r.systems {
		if err := s.PostUpdate(deltaTime); err != nil {
			core.LogError("system '%s' post update failed: %s", s.Name(), err.Error())
		}
	}
}

// Destroy tears systems down in reverse registration order. Calling it a
// second time is a no-op.
func (r *Registry) Destroy() error {
	if r.destroyed {
		return nil
	}
	r.destroyed = true

	for i := len(r.systems) - 1; i >= 0; i-- {
		if err := r.systems[i].Destroy(); err != nil {
			core.LogError("system '%s' failed to destroy: %s", r.systems[i].Name(), err.Error())
		}
	}
	r.systems = nil
	return nil
}
