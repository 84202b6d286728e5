package renderer

import (
	"github.com/lumen3d/lumen/engine/core"
)

// Layer is one named slot in the render order. What a layer draws is the
// backend's business; the composition only owns ordering and enablement.
type Layer struct {
	Name    string
	Enabled bool
}

// Composition is the ordered set of layers the renderer consumes each frame.
type Composition struct {
	layers []*Layer
}

// NewComposition builds a composition with the default world and ui layers.
func NewComposition() *Composition {
	return &Composition{
		layers: []*Layer{
			{Name: "world", Enabled: true},
			{Name: "ui", Enabled: true},
		},
	}
}

func (c *Composition) Layers() []*Layer {
	return c.layers
}

// Add appends a layer at the end of the render order.
func (c *Composition) Add(layer *Layer) {
	c.layers = append(c.layers, layer)
}

// Get returns the named layer, or nil with a warning if it does not exist.
func (c *Composition) Get(name string) *Layer {
	for _, l := range c.layers {
		if l.Name == name {
			return l
		}
	}
	core.LogWarn("no layer named '%s' in composition", name)
	return nil
}

// Remove drops the named layer. Removing an unknown layer is a no-op.
func (c *Composition) Remove(name string) {
	for i, l := range c.layers {
		if l.Name == name {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return
		}
	}
}

func (c *Composition) Destroy() {
	c.layers = nil
}
