// Package xr integrates an externally-owned immersive session with the
// frame loop. While a session is active it supplies its own frame-request
// primitive and a per-frame render gate, and canvas resizing is suppressed.
package xr

// Session is the immersive (VR/AR) session collaborator. The frame payload
// passed through the callbacks is opaque to the engine.
type Session interface {
	// RequestFrame schedules fn for the session's next frame and returns an
	// opaque handle.
	RequestFrame(fn func(timestamp float64, frame interface{})) uint64
	// CancelFrame cancels a scheduled frame. Unknown handles are a no-op.
	CancelFrame(id uint64)
	// ShouldRender reports whether the given frame should actually render.
	// Sessions signal false during tracking loss.
	ShouldRender(frame interface{}) bool
	End() error
}

// Manager tracks whether an immersive session is presenting.
type Manager struct {
	session Session
}

func NewManager() *Manager {
	return &Manager{}
}

// Active reports whether a session is currently presenting.
func (m *Manager) Active() bool {
	return m != nil && m.session != nil
}

// StartSession begins presenting through the given session.
func (m *Manager) StartSession(s Session) {
	m.session = s
}

// EndSession stops presenting. Safe to call with no active session.
func (m *Manager) EndSession() error {
	if m.session == nil {
		return nil
	}
	err := m.session.End()
	m.session = nil
	return err
}

// ShouldRender reports whether the frame should render. Frames outside a
// session, or ticks with no session frame attached, always render.
func (m *Manager) ShouldRender(frame interface{}) bool {
	if !m.Active() || frame == nil {
		return true
	}
	return m.session.ShouldRender(frame)
}

// RequestFrame schedules the next frame through the active session.
// Returns 0 when no session is active.
func (m *Manager) RequestFrame(fn func(timestamp float64, frame interface{})) uint64 {
	if !m.Active() {
		return 0
	}
	return m.session.RequestFrame(fn)
}

// CancelFrame cancels a session-scheduled frame.
func (m *Manager) CancelFrame(id uint64) {
	if m.Active() {
		m.session.CancelFrame(id)
	}
}
