package platform

import (
	"testing"

	"github.com/radicalten/gnuboy/event"
	"github.com/radicalten/gnuboy/host"
	"github.com/radicalten/gnuboy/input"
	"github.com/radicalten/gnuboy/video"
)

// scriptSource plays back one batch of events per Poll call.
type scriptSource struct {
	batches  [][]host.Event
	lastWait bool
}

func (s *scriptSource) Poll(wait bool) []host.Event {
	s.lastWait = wait
	if len(s.batches) == 0 {
		return nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch
}

type nullPresenter struct{}

func (nullPresenter) Present(pix []byte, pitch int) error { return nil }

func newTestLoop(t *testing.T, batches ...[]host.Event) (*Loop, *scriptSource, *event.Queue, *video.SurfaceManager) {
	t.Helper()
	src := &scriptSource{batches: batches}
	q := &event.Queue{}
	surf := video.New(nullPresenter{})
	if err := surf.Init(160, 144, 32); err != nil {
		t.Fatalf("Init: %v", err)
	}
	l := &Loop{
		Source:     src,
		Translator: input.NewTranslator(q),
		Surfaces:   surf,
	}
	return l, src, q, surf
}

func TestPollDispatchOrder(t *testing.T) {
	l, _, q, _ := newTestLoop(t, []host.Event{
		host.KeyEvent{Sym: 'a', Pressed: true},
		host.AxisEvent{Axis: host.AxisHorizontal, Value: 5000},
		host.KeyEvent{Sym: 'a', Pressed: false},
		host.ButtonEvent{Index: 0, Pressed: true},
	})

	if quit := l.Poll(false); quit {
		t.Error("Poll() = quit, want no quit")
	}

	want := []event.Event{
		{Type: event.Press, Code: 'a'},
		{Type: event.Press, Code: event.CodeJoyRight},
		{Type: event.Release, Code: 'a'},
		{Type: event.Press, Code: event.Joy(0)},
	}
	got := q.Drain()
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPollVisibilityDrivesSurfaces(t *testing.T) {
	l, _, _, surf := newTestLoop(t,
		[]host.Event{host.VisibilityEvent{Visible: false}},
		[]host.Event{host.VisibilityEvent{Visible: true}},
	)

	l.Poll(false)
	if surf.Enabled() {
		t.Error("surfaces enabled after hidden event, want disabled")
	}
	l.Poll(false)
	if !surf.Enabled() {
		t.Error("surfaces disabled after shown event, want enabled")
	}
}

func TestPollQuitIsAdvisory(t *testing.T) {
	// Events after the quit signal in the same drain are still
	// dispatched; quit is only reported to the caller.
	l, _, q, _ := newTestLoop(t, []host.Event{
		host.QuitEvent{},
		host.KeyEvent{Sym: 'q', Pressed: true},
	})

	if quit := l.Poll(false); !quit {
		t.Error("Poll() = no quit, want quit")
	}
	if got := q.Drain(); len(got) != 1 || got[0].Code != 'q' {
		t.Errorf("events after quit = %v, want the pending key press", got)
	}
}

func TestPollForwardsWait(t *testing.T) {
	l, src, _, _ := newTestLoop(t)

	l.Poll(true)
	if !src.lastWait {
		t.Error("wait flag not forwarded to the source")
	}
	l.Poll(false)
	if src.lastWait {
		t.Error("wait flag stuck on")
	}
}

func TestPollEmptyDrain(t *testing.T) {
	l, _, q, _ := newTestLoop(t)
	if quit := l.Poll(false); quit {
		t.Error("Poll() on empty source = quit, want no quit")
	}
	if q.Len() != 0 {
		t.Errorf("events posted on empty drain: %d", q.Len())
	}
}
