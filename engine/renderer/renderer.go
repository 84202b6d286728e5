// Package renderer sequences frames against a backend. It owns no drawing
// logic: the frontend walks the layer composition and hands each enabled
// layer to the backend between BeginFrame and EndFrame.
package renderer

import (
	"github.com/lumen3d/lumen/engine/core"
	"github.com/lumen3d/lumen/engine/graphics"
)

type Renderer struct {
	backend Backend
	device  graphics.Device

	inFrame bool
}

func New(backend Backend, device graphics.Device) *Renderer {
	return &Renderer{
		backend: backend,
		device:  device,
	}
}

// FrameStart opens the frame on the backend.
func (r *Renderer) FrameStart(deltaTime float64) error {
	if err := r.backend.BeginFrame(deltaTime); err != nil {
		return err
	}
	r.inFrame = true
	return nil
}

// RenderComposition draws every enabled layer in order. Must run between
// FrameStart and FrameEnd.
func (r *Renderer) RenderComposition(comp *Composition, deltaTime float64) error {
	for _, layer := range comp.Layers() {
		if !layer.Enabled {
			continue
		}
		if err := r.backend.DrawLayer(layer, deltaTime); err != nil {
			core.LogError("failed to draw layer '%s': %s", layer.Name, err.Error())
			return err
		}
	}
	return nil
}

// FrameEnd closes the frame on the backend.
func (r *Renderer) FrameEnd(deltaTime float64) error {
	r.inFrame = false
	return r.backend.EndFrame(deltaTime)
}

// OnResize forwards a canvas resolution change to the backend.
func (r *Renderer) OnResize(width, height uint32) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) Destroy() error {
	return r.backend.Destroy()
}
