package core

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key code definitions
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_ENTER     KeyCode = 0x0D
	KEY_TAB       KeyCode = 0x09
	KEY_SHIFT     KeyCode = 0x10
	KEY_PAUSE     KeyCode = 0x13
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_END       KeyCode = 0x23
	KEY_HOME      KeyCode = 0x24
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_INSERT    KeyCode = 0x2D
	KEY_DELETE    KeyCode = 0x2E
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_L         KeyCode = 0x4C
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Z         KeyCode = 0x5A
	KEY_MAX_KEYS  KeyCode = 0x100
)

// InputDevice is one pollable input source (keyboard, mouse, gamepad).
// Poll runs at the end of every frame update, after all simulation code has
// had a chance to read the previous state.
type InputDevice interface {
	Name() string
	Poll(state *InputState)
}

type keyboardState struct {
	keys [KEY_MAX_KEYS]bool
}

type mouseState struct {
	x, y    int32
	buttons [BUTTON_MAX_BUTTONS]bool
}

// InputState holds the current and previous frame's input snapshots for one
// application. All mutation happens on the frame thread.
type InputState struct {
	devices []InputDevice

	keyboardCurrent  keyboardState
	keyboardPrevious keyboardState
	mouseCurrent     mouseState
	mousePrevious    mouseState
}

func NewInputState() *InputState {
	return &InputState{}
}

// AddDevice registers a device for end-of-frame polling.
func (in *InputState) AddDevice(device InputDevice) {
	in.devices = append(in.devices, device)
}

// Devices returns the registered devices in polling order.
func (in *InputState) Devices() []InputDevice {
	return in.devices
}

// Update copies current state to previous and polls every attached device.
// Always the last thing to run in a frame update, so anything that wants to
// record input has already done so.
func (in *InputState) Update(deltaTime float64) {
	in.keyboardPrevious = in.keyboardCurrent
	in.mousePrevious = in.mouseCurrent
	for _, d := range in.devices {
		d.Poll(in)
	}
}

// Detach drops every registered device. Used during application teardown.
func (in *InputState) Detach() {
	in.devices = nil
}

func (in *InputState) ProcessKey(key KeyCode, pressed bool) {
	if key >= KEY_MAX_KEYS {
		return
	}
	in.keyboardCurrent.keys[key] = pressed
}

func (in *InputState) ProcessButton(button Button, pressed bool) {
	if button >= BUTTON_MAX_BUTTONS {
		return
	}
	in.mouseCurrent.buttons[button] = pressed
}

func (in *InputState) ProcessMouseMove(x, y int32) {
	in.mouseCurrent.x = x
	in.mouseCurrent.y = y
}

func (in *InputState) IsKeyDown(key KeyCode) bool {
	if key >= KEY_MAX_KEYS {
		return false
	}
	return in.keyboardCurrent.keys[key]
}

func (in *InputState) IsKeyUp(key KeyCode) bool {
	return !in.IsKeyDown(key)
}

func (in *InputState) WasKeyDown(key KeyCode) bool {
	if key >= KEY_MAX_KEYS {
		return false
	}
	return in.keyboardPrevious.keys[key]
}

func (in *InputState) IsButtonDown(button Button) bool {
	if button >= BUTTON_MAX_BUTTONS {
		return false
	}
	return in.mouseCurrent.buttons[button]
}

func (in *InputState) WasButtonDown(button Button) bool {
	if button >= BUTTON_MAX_BUTTONS {
		return false
	}
	return in.mousePrevious.buttons[button]
}

func (in *InputState) MousePosition() (int32, int32) {
	return in.mouseCurrent.x, in.mouseCurrent.y
}
