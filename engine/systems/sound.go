package systems

import (
	"github.com/lumen3d/lumen/engine/core"
)

// SoundSystem manages audio playback volume and the suspended state toggled
// by the visibility reactor: audio is suspended while the surface is hidden
// and resumed when it becomes visible again.
type SoundSystem struct {
	volume    float64
	suspended bool
	destroyed bool

	slots map[string]*SoundSlot
}

// SoundSlot is one named playable sound.
type SoundSlot struct {
	Name    string
	playing bool
	paused  bool
}

func NewSoundSystem() *SoundSystem {
	return &SoundSystem{
		volume: 1,
		slots:  make(map[string]*SoundSlot),
	}
}

func (s *SoundSystem) Name() string { return "sound" }

func (s *SoundSystem) Initialize() error     { return nil }
func (s *SoundSystem) PostInitialize() error { return nil }

func (s *SoundSystem) Update(deltaTime float64) error     { return nil }
func (s *SoundSystem) PostUpdate(deltaTime float64) error { return nil }

func (s *SoundSystem) Destroy() error {
	if s.destroyed {
		return nil
	}
	s.destroyed = true
	s.slots = nil
	return nil
}

// Suspend mutes playback without losing state. Idempotent.
func (s *SoundSystem) Suspend() {
	s.suspended = true
}

// Resume restores playback after a suspension. Idempotent.
func (s *SoundSystem) Resume() {
	s.suspended = false
}

func (s *SoundSystem) Suspended() bool {
	return s.suspended
}

func (s *SoundSystem) SetVolume(volume float64) {
	s.volume = volume
}

func (s *SoundSystem) Volume() float64 {
	return s.volume
}

// AddSlot registers a named sound.
func (s *SoundSystem) AddSlot(name string) *SoundSlot {
	slot := &SoundSlot{Name: name}
	s.slots[name] = slot
	return slot
}

// Play starts the named slot. Unknown names warn and return nil.
func (s *SoundSystem) Play(name string) *SoundSlot {
	slot, ok := s.slots[name]
	if !ok {
		core.LogWarn("no sound slot named '%s'", name)
		return nil
	}
	slot.playing = true
	slot.paused = false
	return slot
}

// Pause pauses the named slot. Unknown names warn and return false.
func (s *SoundSystem) Pause(name string) bool {
	slot, ok := s.slots[name]
	if !ok {
		core.LogWarn("no sound slot named '%s'", name)
		return false
	}
	if !slot.playing {
		return false
	}
	slot.paused = true
	return true
}

// Stop stops the named slot. Unknown names warn and return false.
func (s *SoundSystem) Stop(name string) bool {
	slot, ok := s.slots[name]
	if !ok {
		core.LogWarn("no sound slot named '%s'", name)
		return false
	}
	slot.playing = false
	slot.paused = false
	return true
}

func (slot *SoundSlot) IsPlaying() bool {
	return slot != nil && slot.playing && !slot.paused
}

func (slot *SoundSlot) IsPaused() bool {
	return slot != nil && slot.paused
}
