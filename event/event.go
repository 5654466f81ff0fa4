// Package event defines the canonical input event model shared between
// the platform layer and the emulator core. The translator produces
// events; the core's input handler consumes them in emission order.
package event

// Type distinguishes key/button presses from releases.
type Type int

const (
	Press Type = iota
	Release
)

// String returns the string representation of the event type.
func (t Type) String() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		return "Unknown"
	}
}

// Code identifies a canonical key or button. Printable ASCII keys are
// their own code (lowercase for letters), so the scancode table only
// needs entries for keys without an ASCII identity.
type Code int

// CodeNone is the "no event" code. Translating an unrecognized host
// key yields CodeNone and the translator emits nothing.
const CodeNone Code = 0

// Named codes sit above the ASCII range.
const (
	CodeUp Code = 0x100 + iota
	CodeDown
	CodeLeft
	CodeRight
	CodeEnter
	CodeEscape
	CodeTab
	CodeBackspace
	CodeShift
	CodeCtrl
	CodeAlt
	CodeJoyUp
	CodeJoyDown
	CodeJoyLeft
	CodeJoyRight
	CodeJoy0 // base for numbered joystick buttons
)

// Joy returns the canonical code for numbered joystick button n.
func Joy(n int) Code {
	return CodeJoy0 + Code(n)
}

// Event is one canonical press or release.
type Event struct {
	Type Type
	Code Code
}

// Sink receives canonical events from the translator. Post is
// append-only: it must not block and must not drop events. Capacity
// is the sink's concern, not the translator's.
type Sink interface {
	Post(Event)
}
