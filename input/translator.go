package input

import (
	"github.com/radicalten/gnuboy/event"
	"github.com/radicalten/gnuboy/host"
)

// AxisState is the debounced position of one logical axis.
type AxisState int

const (
	AxisNegative AxisState = iota // left or up
	AxisCentered
	AxisPositive // right or down
)

// Tunable defaults. The commit threshold is about 10% of the int16
// axis range, wide enough that stick jitter near zero cannot cause
// event storms.
const (
	DefaultCommitThreshold = 3276
	DefaultMaxButtons      = 16
)

// axisCodes maps (axis, state) to the directional code that state
// holds down. Centered holds nothing.
var axisCodes = [2][3]event.Code{
	host.AxisHorizontal: {AxisNegative: event.CodeJoyLeft, AxisPositive: event.CodeJoyRight},
	host.AxisVertical:   {AxisNegative: event.CodeJoyUp, AxisPositive: event.CodeJoyDown},
}

// hatStates decomposes each digital hat position into the pair of
// (horizontal, vertical) axis states it represents. Applying both
// axes every time means leaving a diagonal through a cardinal
// releases the axis that returned to center.
var hatStates = [9][2]AxisState{
	host.HatCentered:  {AxisCentered, AxisCentered},
	host.HatUp:        {AxisCentered, AxisNegative},
	host.HatUpRight:   {AxisPositive, AxisNegative},
	host.HatRight:     {AxisPositive, AxisCentered},
	host.HatDownRight: {AxisPositive, AxisPositive},
	host.HatDown:      {AxisCentered, AxisPositive},
	host.HatDownLeft:  {AxisNegative, AxisPositive},
	host.HatLeft:      {AxisNegative, AxisCentered},
	host.HatUpLeft:    {AxisNegative, AxisNegative},
}

// Translator converts normalized host input events into canonical
// press/release events and posts them to a Sink. One Translator owns
// all of the input subsystem's mutable state, so the debounce logic
// can be exercised in isolation, without a live host device.
type Translator struct {
	// Keymap is the scancode table used by Key.
	Keymap Keymap

	// CommitThreshold is the symmetric analog dead-zone bound.
	CommitThreshold int16

	// MaxButtons bounds the numbered button space; indices at or
	// beyond it are silently dropped.
	MaxButtons int

	sink event.Sink
	axes [2]AxisState
}

// NewTranslator creates a translator posting into sink, with the
// default keymap and tunables, and both axes centered.
func NewTranslator(sink event.Sink) *Translator {
	t := &Translator{
		Keymap:          DefaultKeymap(),
		CommitThreshold: DefaultCommitThreshold,
		MaxButtons:      DefaultMaxButtons,
		sink:            sink,
	}
	t.Reset()
	return t
}

// Reset returns both axes to centered without emitting events.
func (t *Translator) Reset() {
	t.axes[host.AxisHorizontal] = AxisCentered
	t.axes[host.AxisVertical] = AxisCentered
}

// Axis returns the current debounced state of one axis.
func (t *Translator) Axis(axis host.Axis) AxisState {
	return t.axes[axis]
}

// ApplyAxis commits a new debounced state for one axis. Re-reporting
// the current state is a no-op; hosts report axis motion at high
// frequency and repeats must never re-fire events. A real transition
// always releases the old direction before pressing the new one.
func (t *Translator) ApplyAxis(axis host.Axis, state AxisState) {
	cur := t.axes[axis]
	if cur == state {
		return
	}
	if code := axisCodes[axis][cur]; code != event.CodeNone {
		t.sink.Post(event.Event{Type: event.Release, Code: code})
	}
	t.axes[axis] = state
	if code := axisCodes[axis][state]; code != event.CodeNone {
		t.sink.Post(event.Event{Type: event.Press, Code: code})
	}
}

// ApplyAnalog commits a raw analog axis reading. Values beyond the
// commit threshold in either direction commit to that direction;
// values inside the dead zone commit to centered.
func (t *Translator) ApplyAnalog(axis host.Axis, value int16) {
	switch {
	case value > t.CommitThreshold:
		t.ApplyAxis(axis, AxisPositive)
	case value < -t.CommitThreshold:
		t.ApplyAxis(axis, AxisNegative)
	default:
		t.ApplyAxis(axis, AxisCentered)
	}
}

// ApplyHat commits a digital hat position by decomposing it into both
// axis states and applying each.
func (t *Translator) ApplyHat(pos host.HatPosition) {
	if pos < 0 || int(pos) >= len(hatStates) {
		return
	}
	s := hatStates[pos]
	t.ApplyAxis(host.AxisHorizontal, s[0])
	t.ApplyAxis(host.AxisVertical, s[1])
}

// Button maps a numbered joystick button 1:1 to a canonical event.
// Indices at or beyond MaxButtons are dropped.
func (t *Translator) Button(index int, pressed bool) {
	if index < 0 || index >= t.MaxButtons {
		return
	}
	typ := event.Release
	if pressed {
		typ = event.Press
	}
	t.sink.Post(event.Event{Type: typ, Code: event.Joy(index)})
}

// Key runs a host keysym through the scancode table. Unmapped keys
// produce no event.
func (t *Translator) Key(sym host.Sym, pressed bool) {
	code := t.Keymap.Translate(sym)
	if code == event.CodeNone {
		return
	}
	typ := event.Release
	if pressed {
		typ = event.Press
	}
	t.sink.Post(event.Event{Type: typ, Code: code})
}

// Handle dispatches one normalized host input event. Window events
// are not input and are ignored here.
func (t *Translator) Handle(ev host.Event) {
	switch e := ev.(type) {
	case host.KeyEvent:
		t.Key(e.Sym, e.Pressed)
	case host.AxisEvent:
		t.ApplyAnalog(e.Axis, e.Value)
	case host.HatEvent:
		t.ApplyHat(e.Pos)
	case host.ButtonEvent:
		t.Button(e.Index, e.Pressed)
	}
}
