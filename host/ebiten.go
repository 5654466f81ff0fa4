package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options configure the ebiten host window and input handling.
type Options struct {
	Title      string
	NativeW    int
	NativeH    int
	Scale      int  // window magnification over native resolution
	Fullscreen bool
	AltEnter   bool // alt+enter toggles fullscreen
	Joystick   bool // poll gamepads at all
	WindowW    int  // geometry override; 0 means NativeW*Scale
	WindowH    int
}

// Ebiten is a host Source and Presenter backed by the ebiten runtime.
// Presentation scales on the draw side, so the surface pair stays at
// native resolution regardless of the requested window scale.
//
// Ebiten is tick-driven: Poll diffs the current input state against
// the previous tick instead of draining a host queue, and wait has
// nothing to block on.
type Ebiten struct {
	opts Options

	keys       []ebiten.Key // scratch for inpututil appends
	gamepads   []ebiten.GamepadID
	pad        ebiten.GamepadID
	hasPad     bool
	hat        HatPosition
	minimized  bool
	fullscreen bool

	pending   []byte
	pitch     int
	offscreen *ebiten.Image
}

// NewEbiten applies the window options and returns the host. The
// window itself comes up inside ebiten.RunGame; a display-subsystem
// failure surfaces as RunGame's error and is fatal to the caller.
func NewEbiten(opts Options) *Ebiten {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	w, h := opts.WindowW, opts.WindowH
	if w <= 0 || h <= 0 {
		w, h = opts.NativeW*opts.Scale, opts.NativeH*opts.Scale
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w, h)
	if opts.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	// Close requests become QuitEvents; termination stays with the caller.
	ebiten.SetWindowClosingHandled(true)

	return &Ebiten{
		opts:       opts,
		fullscreen: opts.Fullscreen,
	}
}

// SetTitle sets the window title.
func (e *Ebiten) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Poll drains the host state changes for the current tick into
// normalized events: window state first, then keyboard, then joystick,
// preserving a stable order within the tick. wait is accepted for
// Source compatibility only.
func (e *Ebiten) Poll(wait bool) []Event {
	_ = wait
	var evs []Event

	if ebiten.IsWindowBeingClosed() {
		evs = append(evs, QuitEvent{})
	}

	min := ebiten.IsWindowMinimized()
	if min != e.minimized {
		e.minimized = min
		evs = append(evs, VisibilityEvent{Visible: !min})
	}

	if e.opts.AltEnter &&
		ebiten.IsKeyPressed(ebiten.KeyAlt) &&
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		e.fullscreen = !e.fullscreen
		ebiten.SetFullscreen(e.fullscreen)
	}

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		if sym, ok := KeySym(k); ok {
			evs = append(evs, KeyEvent{Sym: sym, Pressed: true})
		}
	}
	e.keys = inpututil.AppendJustReleasedKeys(e.keys[:0])
	for _, k := range e.keys {
		if sym, ok := KeySym(k); ok {
			evs = append(evs, KeyEvent{Sym: sym, Pressed: false})
		}
	}

	if e.opts.Joystick {
		evs = e.pollGamepad(evs)
	}
	return evs
}

// pollGamepad reads the first standard-layout gamepad. No gamepad is
// not an error: the input subsystem degrades to keyboard-only for the
// tick. Axis values are re-reported every tick; the translator's
// debouncing makes repeats free.
func (e *Ebiten) pollGamepad(evs []Event) []Event {
	e.gamepads = ebiten.AppendGamepadIDs(e.gamepads[:0])
	found := false
	for _, id := range e.gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			if !e.hasPad || id != e.pad {
				e.hat = HatCentered
			}
			e.pad, e.hasPad, found = id, true, true
			break
		}
	}
	if !found {
		if e.hasPad {
			// Device went away: report centered so held directions release.
			e.hasPad = false
			e.hat = HatCentered
			evs = append(evs,
				HatEvent{Pos: HatCentered},
				AxisEvent{Axis: AxisHorizontal, Value: 0},
				AxisEvent{Axis: AxisVertical, Value: 0},
			)
		}
		return evs
	}

	// The digital d-pad composes the hat position.
	hat := ComposeHat(
		ebiten.IsStandardGamepadButtonPressed(e.pad, ebiten.StandardGamepadButtonLeftTop),
		ebiten.IsStandardGamepadButtonPressed(e.pad, ebiten.StandardGamepadButtonLeftBottom),
		ebiten.IsStandardGamepadButtonPressed(e.pad, ebiten.StandardGamepadButtonLeftLeft),
		ebiten.IsStandardGamepadButtonPressed(e.pad, ebiten.StandardGamepadButtonLeftRight),
	)
	if hat != e.hat {
		e.hat = hat
		evs = append(evs, HatEvent{Pos: hat})
	}

	ax := ebiten.StandardGamepadAxisValue(e.pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ay := ebiten.StandardGamepadAxisValue(e.pad, ebiten.StandardGamepadAxisLeftStickVertical)
	evs = append(evs,
		AxisEvent{Axis: AxisHorizontal, Value: axisValue(ax)},
		AxisEvent{Axis: AxisVertical, Value: axisValue(ay)},
	)

	for i, b := range joyButtons {
		if inpututil.IsStandardGamepadButtonJustPressed(e.pad, b) {
			evs = append(evs, ButtonEvent{Index: i, Pressed: true})
		}
		if inpututil.IsStandardGamepadButtonJustReleased(e.pad, b) {
			evs = append(evs, ButtonEvent{Index: i, Pressed: false})
		}
	}
	return evs
}

// axisValue converts an ebiten axis reading in [-1, 1] to the raw
// int16 range the translator's dead zone works in.
func axisValue(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
