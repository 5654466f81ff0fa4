// Package video owns the double-buffered pixel surface pair the
// emulator core renders into and the presenter contract that gets the
// finished frames onto the host display.
package video

import (
	"errors"
	"fmt"
	"log"
)

// Channel describes how one color channel packs into a pixel.
type Channel struct {
	Loss  uint8 // bits discarded from an 8-bit source value
	Shift uint8 // left shift into the packed pixel
}

// PixelFormat describes the pixel layout of a surface.
type PixelFormat struct {
	PixelSize int // bytes per pixel
	Channels  [3]Channel
	Indexed   bool
}

// RGBA8888 is 32-bit byte-order RGBA, the format ebiten's WritePixels
// consumes directly.
var RGBA8888 = PixelFormat{
	PixelSize: 4,
	Channels: [3]Channel{
		{Loss: 0, Shift: 0},
		{Loss: 0, Shift: 8},
		{Loss: 0, Shift: 16},
	},
}

// RGB565 is 16-bit packed high color.
var RGB565 = PixelFormat{
	PixelSize: 2,
	Channels: [3]Channel{
		{Loss: 3, Shift: 11},
		{Loss: 2, Shift: 5},
		{Loss: 3, Shift: 0},
	},
}

// Frame describes the surface currently open for writing: where the
// pixels live and how to pack them. Pix is borrowed — it is valid only
// between Begin and the matching End, and End clears it so a retained
// descriptor cannot alias the next frame's buffer.
type Frame struct {
	Pix             []byte
	W, H            int
	Pitch           int
	PixelSize       int
	Channels        [3]Channel
	Indexed         bool
	DelegateScaling bool
	Enabled         bool
	Dirty           bool
}

// Target receives the frame descriptor whenever surface geometry or
// format changes, including first init. The emulator core's render
// target implements this.
type Target interface {
	SetFrame(*Frame)
}

// Presenter blits a completed surface to the host-visible output.
type Presenter interface {
	Present(pix []byte, pitch int) error
}

// ScalingPresenter is implemented by presenters that magnify on the
// host side, letting internal surfaces stay at native resolution.
type ScalingPresenter interface {
	Presenter
	DelegatesScaling() bool
}

// SurfaceManager owns two alternating pixel buffers sized to the
// native emulated resolution. Exactly one buffer is front at a time;
// the core writes into it between Begin and End, and End hands the
// finished frame to the presenter and flips the roles.
//
// Everything here runs on one logical thread; the Begin/End pairing is
// the only mutation discipline the surface pair needs.
type SurfaceManager struct {
	presenter Presenter
	target    Target
	logf      func(format string, args ...any)

	bufs    [2][]byte
	front   int
	pitch   int
	enabled bool
	inFrame bool
	frame   Frame
}

// New creates a surface manager presenting through p. A nil presenter
// is allowed; frames are then flipped without being shown.
func New(p Presenter) *SurfaceManager {
	return &SurfaceManager{
		presenter: p,
		logf:      log.Printf,
		enabled:   true,
	}
}

// SetTarget registers the render target that receives descriptor
// republications. If the surfaces are already initialized the target
// is published to immediately.
func (m *SurfaceManager) SetTarget(t Target) {
	m.target = t
	if t != nil && m.bufs[0] != nil {
		t.SetFrame(&m.frame)
	}
}

// SetLogf replaces the error log hook. The default is log.Printf.
func (m *SurfaceManager) SetLogf(logf func(format string, args ...any)) {
	m.logf = logf
}

// Init allocates the surface pair at the native emulated resolution
// and republishes the frame descriptor. Geometry and format are fixed
// until the next Init; changing either means calling Init again.
func (m *SurfaceManager) Init(w, h, depth int) error {
	if m.inFrame {
		return errors.New("surface: init during open frame")
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("surface: invalid geometry %dx%d", w, h)
	}
	var format PixelFormat
	switch depth {
	case 32:
		format = RGBA8888
	case 16:
		format = RGB565
	default:
		return fmt.Errorf("surface: unsupported color depth %d", depth)
	}

	pitch := w * format.PixelSize
	for i := range m.bufs {
		m.bufs[i] = make([]byte, pitch*h)
	}
	m.front = 0
	m.pitch = pitch

	delegate := false
	if sp, ok := m.presenter.(ScalingPresenter); ok {
		delegate = sp.DelegatesScaling()
	}

	m.frame = Frame{
		W:               w,
		H:               h,
		Pitch:           pitch,
		PixelSize:       format.PixelSize,
		Channels:        format.Channels,
		Indexed:         format.Indexed,
		DelegateScaling: delegate,
		Enabled:         m.enabled,
	}
	if m.target != nil {
		m.target.SetFrame(&m.frame)
	}
	return nil
}

// Begin opens exclusive write access to the front buffer and returns
// the frame descriptor. Every Begin must be paired with an End, on
// every path; WithFrame does the pairing automatically.
func (m *SurfaceManager) Begin() (*Frame, error) {
	if m.bufs[0] == nil {
		return nil, errors.New("surface: not initialized")
	}
	if m.inFrame {
		return nil, errors.New("surface: frame already open")
	}
	m.inFrame = true
	m.frame.Pix = m.bufs[m.front]
	return &m.frame, nil
}

// End closes the frame. While enabled the completed surface goes to
// the presenter; a present failure is logged and the frame dropped.
// The front/back roles flip either way, so a hidden window or a failed
// blit never stalls the alternation or re-exposes a stale frame.
func (m *SurfaceManager) End() error {
	if !m.inFrame {
		return errors.New("surface: End without Begin")
	}
	m.inFrame = false
	pix := m.frame.Pix
	m.frame.Pix = nil

	var err error
	if m.enabled && m.presenter != nil {
		if err = m.presenter.Present(pix, m.pitch); err != nil {
			m.logf("video: dropping frame: %v", err)
		}
	}
	m.front = 1 - m.front
	return err
}

// WithFrame runs fn with an open frame and guarantees the End on every
// exit path, including errors and panics inside fn.
func (m *SurfaceManager) WithFrame(fn func(*Frame) error) (err error) {
	f, err := m.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if eerr := m.End(); err == nil {
			err = eerr
		}
	}()
	return fn(f)
}

// SetEnabled gates presentation. Host window visibility drives this:
// minimized/hidden disables, shown/restored enables. While disabled,
// End skips the presenter but keeps flipping.
func (m *SurfaceManager) SetEnabled(on bool) {
	m.enabled = on
	m.frame.Enabled = on
}

// Enabled reports whether frames are currently presented.
func (m *SurfaceManager) Enabled() bool {
	return m.enabled
}

// Front returns the index of the buffer currently in the front role.
func (m *SurfaceManager) Front() int {
	return m.front
}
