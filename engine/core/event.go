package core

// Event model. Platform layers translate native events into these.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize carries the new framebuffer size in pixels.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventCursorMoved carries the cursor in framebuffer pixels, origin top-left.
type EventCursorMoved struct{ X, Y float64 }

func (EventCursorMoved) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Action Action
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventKey struct {
	Key    Key
	Action Action
	Mods   Mod
}

func (EventKey) isEvent() {}

// EventFrameTick is sent once the platform queue is drained for this cycle.
type EventFrameTick struct{}

func (EventFrameTick) isEvent() {}

type Action int

const (
	ActionRelease Action = iota
	ActionPress
	ActionRepeat
)

// Down reports a press or a held-key repeat.
func (a Action) Down() bool { return a != ActionRelease }

func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRepeat:
		return "repeat"
	default:
		return "release"
	}
}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Key enum. Letters and digits are contiguous so platforms can map ranges.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
