// Package platform ties the host boundary together: one poll loop that
// drains host events and routes them to the input translator and the
// display surface manager.
package platform

import (
	"github.com/radicalten/gnuboy/host"
	"github.com/radicalten/gnuboy/input"
	"github.com/radicalten/gnuboy/video"
)

// Loop is the per-tick poll loop. Everything runs on one logical
// thread: canonical events reach the sink in exactly the order the
// host reported their causes.
type Loop struct {
	Source     host.Source
	Translator *input.Translator
	Surfaces   *video.SurfaceManager
}

// Poll drains the source once and dispatches every event. wait asks
// the source to block until at least one event arrives, for idle
// power saving where the host supports it.
//
// The return value reports whether the host requested termination.
// Acting on it is the caller's decision; the loop itself never
// terminates anything.
func (l *Loop) Poll(wait bool) (quit bool) {
	for _, ev := range l.Source.Poll(wait) {
		switch e := ev.(type) {
		case host.VisibilityEvent:
			if l.Surfaces != nil {
				l.Surfaces.SetEnabled(e.Visible)
			}
		case host.QuitEvent:
			quit = true
		default:
			if l.Translator != nil {
				l.Translator.Handle(ev)
			}
		}
	}
	return quit
}
