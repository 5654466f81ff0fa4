// Command gnuboy runs the platform layer standalone with a test-pattern
// core, exercising the full pipeline: config, window, poll loop, input
// translation and double-buffered presentation. The real emulator core
// plugs in where the pattern writer sits.
package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"

	"github.com/radicalten/gnuboy/config"
	"github.com/radicalten/gnuboy/event"
	"github.com/radicalten/gnuboy/host"
	"github.com/radicalten/gnuboy/input"
	"github.com/radicalten/gnuboy/platform"
	"github.com/radicalten/gnuboy/video"
)

// Native Game Boy LCD resolution.
const (
	nativeW = 160
	nativeH = 144
)

// game adapts the platform loop and the placeholder core to ebiten's
// Game interface.
type game struct {
	host  *host.Ebiten
	loop  *platform.Loop
	queue *event.Queue
	surf  *video.SurfaceManager
	frame int
}

func (g *game) Update() error {
	if g.loop.Poll(false) {
		return ebiten.Termination
	}

	for _, ev := range g.queue.Drain() {
		log.Printf("input: %v %#x", ev.Type, int(ev.Code))
	}

	g.frame++
	return g.surf.WithFrame(func(f *video.Frame) error {
		pattern(f, g.frame)
		return nil
	})
}

func (g *game) Draw(screen *ebiten.Image) {
	g.host.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.host.Layout(outsideWidth, outsideHeight)
}

// pattern writes a scrolling RGBA gradient through the descriptor.
func pattern(f *video.Frame, frame int) {
	for y := 0; y < f.H; y++ {
		row := f.Pix[y*f.Pitch:]
		for x := 0; x < f.W; x++ {
			p := row[x*f.PixelSize:]
			p[0] = byte(x*255/f.W + frame)
			p[1] = byte(y * 255 / f.H)
			p[2] = byte(frame)
			p[3] = 0xff
		}
	}
}

// logTarget prints the republished frame descriptor; a real core's
// renderer registers here instead.
type logTarget struct{}

func (logTarget) SetFrame(f *video.Frame) {
	log.Printf("video: %dx%d pitch=%d pelsize=%d delegate=%v",
		f.W, f.H, f.Pitch, f.PixelSize, f.DelegateScaling)
}

func main() {
	cfg := config.Default()
	if path, err := config.DefaultPath(); err == nil {
		if loaded, err := config.Load(path); err != nil {
			log.Printf("config: %v, using defaults", err)
		} else {
			cfg = loaded
		}
	}

	h := host.NewEbiten(host.Options{
		Title:      "gnuboy",
		NativeW:    nativeW,
		NativeH:    nativeH,
		Scale:      cfg.Scale,
		Fullscreen: cfg.Fullscreen,
		AltEnter:   cfg.AltEnter,
		Joystick:   cfg.Joystick,
		WindowW:    cfg.VMode[0],
		WindowH:    cfg.VMode[1],
	})

	queue := &event.Queue{}
	tr := input.NewTranslator(queue)
	tr.CommitThreshold = int16(cfg.JoyCommitThreshold)
	tr.MaxButtons = cfg.MaxJoyButtons

	// The ebiten present path renders 32-bit high color and lets the
	// hardware do the scaling; other configured depths are overridden.
	if cfg.VMode[2] != 32 {
		log.Printf("video: overriding configured depth %d with 32", cfg.VMode[2])
	}
	surf := video.New(h)
	surf.SetTarget(logTarget{})
	if err := surf.Init(nativeW, nativeH, 32); err != nil {
		fatalf("video init: %v", err)
	}

	g := &game{
		host:  h,
		loop:  &platform.Loop{Source: h, Translator: tr, Surfaces: surf},
		queue: queue,
		surf:  surf,
	}

	// Display subsystem failure is fatal: there is nothing to run
	// without a surface.
	if err := ebiten.RunGame(g); err != nil {
		fatalf("display unavailable: %v", err)
	}
}

// fatalf reports a startup-fatal error to the user and exits.
func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	dialog.Message("%s", msg).Title("gnuboy").Error()
	log.Fatal(msg)
}
