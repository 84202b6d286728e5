package core

// EventCode identifies a lifecycle event fired by the application. The set is
// closed: payload fields in EventContext are fixed per code, which keeps
// dispatch checkable at compile time instead of routing on event names.
type EventCode int

const (
	// Application has begun its start sequence.
	EventStart EventCode = iota
	// Component systems have run their Initialize hooks.
	EventInitialize
	// Component systems have run their PostInitialize hooks.
	EventPostInitialize
	// Component systems have run their PostPostInitialize hooks.
	EventPostPostInitialize
	// A preload batch is about to begin.
	EventPreloadStart
	// A preload batch advanced. Fraction holds completion in [0, 1].
	EventPreloadProgress
	// A preload batch finished. Fired exactly once per batch.
	EventPreloadEnd
	// All engine libraries finished loading. Fired once per application.
	EventLibrariesLoaded
	// Simulation step completed. DeltaTime holds the scaled delta in seconds.
	EventUpdate
	// A tick began. Ms holds the raw interval since the previous tick.
	EventFrameUpdate
	// Update finished; render is about to be considered.
	EventFrameRender
	// Render pass is about to run.
	EventPreRender
	// Render pass finished.
	EventPostRender
	// The whole frame finished. Timestamp holds the tick timestamp.
	EventFrameEnd
	// The application is tearing down.
	EventDestroy
	// The window client area changed. Width/Height hold the new size.
	EventResized
	// The surface became visible or hidden. Visible holds the new state.
	EventVisibilityChanged

	eventCodeMax
)

// EventContext carries the payload for a fired event. Only the fields
// documented for the event's code are meaningful.
type EventContext struct {
	Type      EventCode
	DeltaTime float64
	Ms        float64
	Fraction  float64
	Timestamp float64
	Width     uint32
	Height    uint32
	Visible   bool
	Data      interface{}
}

type EventHandler func(context EventContext)

// EventBus is a per-application dispatch table. All firing happens on the
// frame thread, so no locking is needed.
type EventBus struct {
	handlers [eventCodeMax][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// On registers a handler for the given code. Handlers run in registration
// order when the code fires.
func (b *EventBus) On(code EventCode, handler EventHandler) {
	if code < 0 || code >= eventCodeMax {
		LogWarn("attempted to subscribe to unknown event code %d", code)
		return
	}
	b.handlers[code] = append(b.handlers[code], handler)
}

// Fire invokes every handler registered for the context's code.
func (b *EventBus) Fire(context EventContext) {
	if context.Type < 0 || context.Type >= eventCodeMax {
		LogWarn("attempted to fire unknown event code %d", context.Type)
		return
	}
	for _, h := range b.handlers[context.Type] {
		h(context)
	}
}

// Clear drops every registered handler. Called during application teardown
// so late subscribers cannot observe a half-destroyed instance.
func (b *EventBus) Clear() {
	for i := range b.handlers {
		b.handlers[i] = nil
	}
}
