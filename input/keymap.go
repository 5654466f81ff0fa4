// Package input translates normalized host input into canonical
// press/release events: a scancode table for the keyboard and a
// debouncing tri-state machine per joystick axis.
package input

import (
	"github.com/radicalten/gnuboy/event"
	"github.com/radicalten/gnuboy/host"
)

// Entry pairs a host keysym with the canonical code it produces.
type Entry struct {
	Sym  host.Sym
	Code event.Code
}

// Keymap is an ordered scancode table. Lookups scan linearly and the
// first match wins. The table stays small and lookups happen
// per-keystroke, not per-frame, so the O(n) scan is fine.
type Keymap []Entry

// DefaultKeymap covers the keys without an ASCII identity; printable
// digits and letters fall through Translate unchanged.
func DefaultKeymap() Keymap {
	return Keymap{
		{host.SymUp, event.CodeUp},
		{host.SymDown, event.CodeDown},
		{host.SymLeft, event.CodeLeft},
		{host.SymRight, event.CodeRight},
		{host.SymEnter, event.CodeEnter},
		{host.SymEscape, event.CodeEscape},
		{host.SymTab, event.CodeTab},
		{host.SymBackspace, event.CodeBackspace},
		{host.SymShift, event.CodeShift},
		{host.SymCtrl, event.CodeCtrl},
		{host.SymAlt, event.CodeAlt},
	}
}

// Translate maps a host keysym to its canonical code. Unmatched ASCII
// digits and lowercase letters map to themselves; anything else maps
// to CodeNone and produces no event.
func (m Keymap) Translate(sym host.Sym) event.Code {
	for _, e := range m {
		if e.Sym == sym {
			return e.Code
		}
	}
	if sym >= '0' && sym <= '9' {
		return event.Code(sym)
	}
	if sym >= 'a' && sym <= 'z' {
		return event.Code(sym)
	}
	return event.CodeNone
}
