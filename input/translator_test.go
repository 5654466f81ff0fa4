package input

import (
	"testing"

	"github.com/radicalten/gnuboy/event"
	"github.com/radicalten/gnuboy/host"
)

func newTestTranslator() (*Translator, *event.Queue) {
	q := &event.Queue{}
	return NewTranslator(q), q
}

func wantEvents(t *testing.T, q *event.Queue, want []event.Event) {
	t.Helper()
	got := q.Drain()
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %d events %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestApplyAxisIdempotent(t *testing.T) {
	tr, q := newTestTranslator()

	tr.ApplyAxis(host.AxisHorizontal, AxisPositive)
	wantEvents(t, q, []event.Event{{Type: event.Press, Code: event.CodeJoyRight}})

	// Re-reporting the same state must never re-fire events.
	tr.ApplyAxis(host.AxisHorizontal, AxisPositive)
	wantEvents(t, q, nil)

	tr.ApplyAxis(host.AxisHorizontal, AxisCentered)
	tr.ApplyAxis(host.AxisHorizontal, AxisCentered)
	wantEvents(t, q, []event.Event{{Type: event.Release, Code: event.CodeJoyRight}})
}

func TestApplyAxisReleaseBeforePress(t *testing.T) {
	tr, q := newTestTranslator()

	tr.ApplyAxis(host.AxisHorizontal, AxisPositive)
	tr.ApplyAxis(host.AxisHorizontal, AxisNegative)

	wantEvents(t, q, []event.Event{
		{Type: event.Press, Code: event.CodeJoyRight},
		{Type: event.Release, Code: event.CodeJoyRight},
		{Type: event.Press, Code: event.CodeJoyLeft},
	})
}

func TestApplyAxisVerticalCodes(t *testing.T) {
	tr, q := newTestTranslator()

	tr.ApplyAxis(host.AxisVertical, AxisNegative)
	tr.ApplyAxis(host.AxisVertical, AxisPositive)

	wantEvents(t, q, []event.Event{
		{Type: event.Press, Code: event.CodeJoyUp},
		{Type: event.Release, Code: event.CodeJoyUp},
		{Type: event.Press, Code: event.CodeJoyDown},
	})
}

func TestApplyHatMatchesAxisCalls(t *testing.T) {
	// A hat report of up-right must emit exactly what the two
	// single-axis calls emit from centered/centered.
	hat, hatQ := newTestTranslator()
	hat.ApplyHat(host.HatUpRight)

	axes, axesQ := newTestTranslator()
	axes.ApplyAxis(host.AxisHorizontal, AxisPositive)
	axes.ApplyAxis(host.AxisVertical, AxisNegative)

	got, want := hatQ.Drain(), axesQ.Drain()
	if len(got) != len(want) {
		t.Fatalf("hat emitted %v, axis calls emitted %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestApplyHatDiagonalToCardinal(t *testing.T) {
	tr, q := newTestTranslator()

	tr.ApplyHat(host.HatUpRight)
	q.Drain()

	// Moving to plain up releases the horizontal direction that left
	// the diagonal.
	tr.ApplyHat(host.HatUp)
	wantEvents(t, q, []event.Event{
		{Type: event.Release, Code: event.CodeJoyRight},
	})

	tr.ApplyHat(host.HatCentered)
	wantEvents(t, q, []event.Event{
		{Type: event.Release, Code: event.CodeJoyUp},
	})
}

func TestApplyHatAllPositionsSettle(t *testing.T) {
	// Walking through every hat position and back to centered leaves
	// nothing held: presses and releases must balance per code.
	tr, q := newTestTranslator()
	positions := []host.HatPosition{
		host.HatUp, host.HatUpRight, host.HatRight, host.HatDownRight,
		host.HatDown, host.HatDownLeft, host.HatLeft, host.HatUpLeft,
		host.HatCentered,
	}
	for _, pos := range positions {
		tr.ApplyHat(pos)
	}

	held := map[event.Code]int{}
	for _, ev := range q.Drain() {
		if ev.Type == event.Press {
			held[ev.Code]++
		} else {
			held[ev.Code]--
		}
	}
	for code, n := range held {
		if n != 0 {
			t.Errorf("code %#x left with balance %d, want 0", int(code), n)
		}
	}
	if tr.Axis(host.AxisHorizontal) != AxisCentered || tr.Axis(host.AxisVertical) != AxisCentered {
		t.Errorf("axes not centered after settling: h=%v v=%v",
			tr.Axis(host.AxisHorizontal), tr.Axis(host.AxisVertical))
	}
}

func TestApplyAnalogSequence(t *testing.T) {
	tr, q := newTestTranslator()
	if tr.CommitThreshold != 3276 {
		t.Fatalf("default CommitThreshold = %d, want 3276", tr.CommitThreshold)
	}

	// The 0 sample is a no-op from centered, the repeated +4000 is
	// debounced, the later 0 releases right, and -4000 presses left.
	for _, v := range []int16{0, 4000, 4000, 0, -4000} {
		tr.ApplyAnalog(host.AxisHorizontal, v)
	}

	wantEvents(t, q, []event.Event{
		{Type: event.Press, Code: event.CodeJoyRight},
		{Type: event.Release, Code: event.CodeJoyRight},
		{Type: event.Press, Code: event.CodeJoyLeft},
	})
}

func TestApplyAnalogDeadZoneBoundary(t *testing.T) {
	tr, q := newTestTranslator()

	// Exactly the threshold stays inside the dead zone.
	tr.ApplyAnalog(host.AxisHorizontal, 3276)
	wantEvents(t, q, nil)

	tr.ApplyAnalog(host.AxisHorizontal, 3277)
	wantEvents(t, q, []event.Event{{Type: event.Press, Code: event.CodeJoyRight}})

	tr.ApplyAnalog(host.AxisHorizontal, -3277)
	wantEvents(t, q, []event.Event{
		{Type: event.Release, Code: event.CodeJoyRight},
		{Type: event.Press, Code: event.CodeJoyLeft},
	})
}

func TestButtonBounds(t *testing.T) {
	tr, q := newTestTranslator()

	tr.Button(0, true)
	tr.Button(15, true)
	tr.Button(16, true) // beyond the bound, dropped
	tr.Button(-1, true)
	tr.Button(0, false)

	wantEvents(t, q, []event.Event{
		{Type: event.Press, Code: event.Joy(0)},
		{Type: event.Press, Code: event.Joy(15)},
		{Type: event.Release, Code: event.Joy(0)},
	})
}

func TestKeyDispatch(t *testing.T) {
	tr, q := newTestTranslator()

	tr.Key(host.SymUp, true)
	tr.Key('a', true)
	tr.Key(0x7fff, true) // unmapped, no event
	tr.Key('a', false)

	wantEvents(t, q, []event.Event{
		{Type: event.Press, Code: event.CodeUp},
		{Type: event.Press, Code: 'a'},
		{Type: event.Release, Code: 'a'},
	})
}

func TestHandleDispatch(t *testing.T) {
	tr, q := newTestTranslator()

	events := []host.Event{
		host.KeyEvent{Sym: host.SymEnter, Pressed: true},
		host.AxisEvent{Axis: host.AxisHorizontal, Value: 5000},
		host.HatEvent{Pos: host.HatDown},
		host.ButtonEvent{Index: 2, Pressed: true},
		host.VisibilityEvent{Visible: false}, // not input, ignored
	}
	for _, ev := range events {
		tr.Handle(ev)
	}

	wantEvents(t, q, []event.Event{
		{Type: event.Press, Code: event.CodeEnter},
		{Type: event.Press, Code: event.CodeJoyRight},
		{Type: event.Press, Code: event.CodeJoyDown},
		{Type: event.Press, Code: event.Joy(2)},
	})
}

func TestResetEmitsNothing(t *testing.T) {
	tr, q := newTestTranslator()

	tr.ApplyAxis(host.AxisHorizontal, AxisPositive)
	q.Drain()

	tr.Reset()
	wantEvents(t, q, nil)
	if tr.Axis(host.AxisHorizontal) != AxisCentered {
		t.Errorf("horizontal axis after Reset = %v, want centered", tr.Axis(host.AxisHorizontal))
	}
}
