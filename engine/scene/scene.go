// Package scene holds the entity hierarchy an application simulates and
// renders. Traversal algorithms beyond transform synchronization live in
// the component systems, not here.
package scene

type Scene struct {
	Name string
	Root *Entity
}

func New(name string) *Scene {
	return &Scene{
		Name: name,
		Root: NewEntity("root"),
	}
}

// SyncHierarchy brings every world matrix up to date with local transforms.
func (s *Scene) SyncHierarchy() {
	s.Root.SyncHierarchy()
}

func (s *Scene) Destroy() error {
	return s.Root.Destroy()
}
