package host

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// keySyms maps ebiten keys to normalized keysyms. Letters map to their
// lowercase ASCII value so the scancode table's identity fallback
// applies to them directly.
var keySyms = map[ebiten.Key]Sym{
	ebiten.KeyA: 'a',
	ebiten.KeyB: 'b',
	ebiten.KeyC: 'c',
	ebiten.KeyD: 'd',
	ebiten.KeyE: 'e',
	ebiten.KeyF: 'f',
	ebiten.KeyG: 'g',
	ebiten.KeyH: 'h',
	ebiten.KeyI: 'i',
	ebiten.KeyJ: 'j',
	ebiten.KeyK: 'k',
	ebiten.KeyL: 'l',
	ebiten.KeyM: 'm',
	ebiten.KeyN: 'n',
	ebiten.KeyO: 'o',
	ebiten.KeyP: 'p',
	ebiten.KeyQ: 'q',
	ebiten.KeyR: 'r',
	ebiten.KeyS: 's',
	ebiten.KeyT: 't',
	ebiten.KeyU: 'u',
	ebiten.KeyV: 'v',
	ebiten.KeyW: 'w',
	ebiten.KeyX: 'x',
	ebiten.KeyY: 'y',
	ebiten.KeyZ: 'z',

	ebiten.KeyDigit0: '0',
	ebiten.KeyDigit1: '1',
	ebiten.KeyDigit2: '2',
	ebiten.KeyDigit3: '3',
	ebiten.KeyDigit4: '4',
	ebiten.KeyDigit5: '5',
	ebiten.KeyDigit6: '6',
	ebiten.KeyDigit7: '7',
	ebiten.KeyDigit8: '8',
	ebiten.KeyDigit9: '9',

	ebiten.KeySpace:        ' ',
	ebiten.KeyComma:        ',',
	ebiten.KeyPeriod:       '.',
	ebiten.KeySlash:        '/',
	ebiten.KeySemicolon:    ';',
	ebiten.KeyApostrophe:   '\'',
	ebiten.KeyMinus:        '-',
	ebiten.KeyEqual:        '=',
	ebiten.KeyLeftBracket:  '[',
	ebiten.KeyRightBracket: ']',

	ebiten.KeyArrowUp:    SymUp,
	ebiten.KeyArrowDown:  SymDown,
	ebiten.KeyArrowLeft:  SymLeft,
	ebiten.KeyArrowRight: SymRight,
	ebiten.KeyEnter:      SymEnter,
	ebiten.KeyEscape:     SymEscape,
	ebiten.KeyTab:        SymTab,
	ebiten.KeyBackspace:  SymBackspace,
	ebiten.KeyShift:      SymShift,
	ebiten.KeyControl:    SymCtrl,
	ebiten.KeyAlt:        SymAlt,
}

// KeySym returns the normalized keysym for an ebiten key. Keys with no
// normalized form return SymNone and false.
func KeySym(k ebiten.Key) (Sym, bool) {
	sym, ok := keySyms[k]
	return sym, ok
}

// joyButtons orders the standard gamepad buttons into the numbered
// button space. The d-pad is excluded: it feeds the hat path instead.
var joyButtons = []ebiten.StandardGamepadButton{
	ebiten.StandardGamepadButtonRightBottom,      // 0: A / Cross
	ebiten.StandardGamepadButtonRightRight,       // 1: B / Circle
	ebiten.StandardGamepadButtonRightLeft,        // 2: X / Square
	ebiten.StandardGamepadButtonRightTop,         // 3: Y / Triangle
	ebiten.StandardGamepadButtonFrontTopLeft,     // 4: L1
	ebiten.StandardGamepadButtonFrontTopRight,    // 5: R1
	ebiten.StandardGamepadButtonFrontBottomLeft,  // 6: L2
	ebiten.StandardGamepadButtonFrontBottomRight, // 7: R2
	ebiten.StandardGamepadButtonCenterLeft,       // 8: Select
	ebiten.StandardGamepadButtonCenterRight,      // 9: Start
	ebiten.StandardGamepadButtonLeftStick,        // 10: L3
	ebiten.StandardGamepadButtonRightStick,       // 11: R3
}
