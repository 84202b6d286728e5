package scene

import (
	"github.com/google/uuid"

	"github.com/lumen3d/lumen/engine/math"
)

// Component is anything attached to an entity that needs teardown when the
// entity (or the whole application) is destroyed. Destroy must be
// idempotent.
type Component interface {
	Destroy() error
}

// Entity is one node of the scene hierarchy.
type Entity struct {
	ID        uuid.UUID
	Name      string
	Enabled   bool
	Transform *math.Transform

	parent     *Entity
	children   []*Entity
	components []Component

	World math.Mat4

	destroyed bool
}

func NewEntity(name string) *Entity {
	return &Entity{
		ID:        uuid.New(),
		Name:      name,
		Enabled:   true,
		Transform: math.TransformCreate(),
		World:     math.NewMat4Identity(),
	}
}

func (e *Entity) Parent() *Entity {
	return e.parent
}

func (e *Entity) Children() []*Entity {
	return e.children
}

// AddChild reparents child under e. The child's transform becomes relative
// to e's.
func (e *Entity) AddChild(child *Entity) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	child.Transform.Parent = e.Transform
	e.children = append(e.children, child)
}

// RemoveChild detaches child from e. Removing a non-child is a no-op.
func (e *Entity) RemoveChild(child *Entity) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			child.Transform.Parent = nil
			return
		}
	}
}

// FindByName returns the first entity with the given name in a depth-first
// walk rooted at e, or nil.
func (e *Entity) FindByName(name string) *Entity {
	if e.Name == name {
		return e
	}
	for _, c := range e.children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// AddComponent attaches a component for lifecycle management.
func (e *Entity) AddComponent(c Component) {
	e.components = append(e.components, c)
}

func (e *Entity) Components() []Component {
	return e.components
}

// SyncHierarchy recomputes world matrices for e and every descendant.
// Called once per rendered frame, before the layer composition is drawn.
func (e *Entity) SyncHierarchy() {
	e.World = e.Transform.GetWorld()
	for _, c := range e.children {
		c.SyncHierarchy()
	}
}

// Destroy tears down the subtree rooted at e: children first, then the
// entity's own components. Safe to call more than once.
func (e *Entity) Destroy() error {
	if e.destroyed {
		return nil
	}
	e.destroyed = true

	for _, c := range e.children {
		_ = c.Destroy()
	}
	e.children = nil

	for _, comp := range e.components {
		_ = comp.Destroy()
	}
	e.components = nil
	e.parent = nil
	return nil
}
