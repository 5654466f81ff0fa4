// Package host models the host side of the platform boundary: a
// normalized, pull-based event stream plus the ebiten-backed window,
// input and presentation implementation.
package host

// Sym is a normalized host keysym. Printable keys are their ASCII
// value (lowercase for letters); named keys sit above the ASCII range.
type Sym int

// SymNone marks a host key with no normalized keysym.
const SymNone Sym = 0

const (
	SymUp Sym = 0x100 + iota
	SymDown
	SymLeft
	SymRight
	SymEnter
	SymEscape
	SymTab
	SymBackspace
	SymShift
	SymCtrl
	SymAlt
)

// Axis identifies a logical joystick axis.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// HatPosition is one of the nine digital hat states.
type HatPosition int

const (
	HatCentered HatPosition = iota
	HatUp
	HatUpRight
	HatRight
	HatDownRight
	HatDown
	HatDownLeft
	HatLeft
	HatUpLeft
)

// ComposeHat builds the hat position named by a set of digital
// direction states. Opposing directions cancel out.
func ComposeHat(up, down, left, right bool) HatPosition {
	if up && down {
		up, down = false, false
	}
	if left && right {
		left, right = false, false
	}
	switch {
	case up && left:
		return HatUpLeft
	case up && right:
		return HatUpRight
	case down && left:
		return HatDownLeft
	case down && right:
		return HatDownRight
	case up:
		return HatUp
	case down:
		return HatDown
	case left:
		return HatLeft
	case right:
		return HatRight
	}
	return HatCentered
}

// Event is a single normalized host input or window event.
type Event interface {
	hostEvent()
}

// KeyEvent is a keyboard key going down or up.
type KeyEvent struct {
	Sym     Sym
	Pressed bool
}

// AxisEvent is an analog joystick axis report in raw int16 range.
type AxisEvent struct {
	Axis  Axis
	Value int16
}

// HatEvent is a digital hat position report.
type HatEvent struct {
	Pos HatPosition
}

// ButtonEvent is a numbered joystick button going down or up.
type ButtonEvent struct {
	Index   int
	Pressed bool
}

// VisibilityEvent reports the window becoming hidden or shown.
type VisibilityEvent struct {
	Visible bool
}

// QuitEvent reports a host request to terminate. It is advisory; the
// caller decides whether to act on it.
type QuitEvent struct{}

func (KeyEvent) hostEvent()        {}
func (AxisEvent) hostEvent()       {}
func (HatEvent) hostEvent()        {}
func (ButtonEvent) hostEvent()     {}
func (VisibilityEvent) hostEvent() {}
func (QuitEvent) hostEvent()       {}

// Source yields the host events observed since the previous call, in
// the order the host reported them. With wait set, a Source that
// supports idle waiting may block until at least one event arrives;
// tick-driven sources treat wait as a no-op.
type Source interface {
	Poll(wait bool) []Event
}
