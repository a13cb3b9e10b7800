package terminal

// Key names a recognized keyboard input.
type Key int

const (
	KeyNull Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeySpace

	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft

	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyDelete
	KeyInsert

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyChar marks a regular rune key; the rune itself is in KeyEvent.Rune.
	KeyChar
)

// Mod is a bitset of modifier keys held during a key event.
type Mod int

const (
	ModNone  Mod = 0
	ModCtrl  Mod = 1 << 0
	ModAlt   Mod = 1 << 1
	ModShift Mod = 1 << 2
)

// KeyEvent is a single keyboard input.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Mod
}

// IsCtrlC reports whether ev is the Ctrl+C interrupt chord the app's
// default exit-on-interrupt behaviour watches for.
func (ev KeyEvent) IsCtrlC() bool {
	return ev.Key == KeyChar && ev.Rune == 'c' && ev.Mod&ModCtrl != 0
}

// MouseButton identifies which mouse button an event concerns.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// MouseAction is the kind of mouse activity reported by MouseEvent.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseDrag
	MouseMove
	MouseScrollUp
	MouseScrollDown
)

// MouseEvent is a single mouse input, decoded from an SGR (1006) mouse
// report.
type MouseEvent struct {
	X, Y   int
	Action MouseAction
	Button MouseButton
	Ctrl, Shift, Alt bool
}

// ScrollDelta returns the (dx, dy) a scroll MouseEvent implies; zero for
// any non-scroll action.
func (ev MouseEvent) ScrollDelta() (dx, dy int) {
	switch ev.Action {
	case MouseScrollUp:
		return 0, -1
	case MouseScrollDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Event is whatever a single read from the input stream produced: exactly
// one of Key or Mouse is non-nil.
type Event struct {
	Key   *KeyEvent
	Mouse *MouseEvent
}
