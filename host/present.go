package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// DelegatesScaling reports that presentation magnifies on the host
// side, so internal surfaces stay at native resolution.
func (e *Ebiten) DelegatesScaling() bool {
	return true
}

// Present stages a completed 32-bit surface for the next Draw.
// Implements the video Presenter contract.
func (e *Ebiten) Present(pix []byte, pitch int) error {
	need := pitch * e.opts.NativeH
	if need <= 0 || len(pix) < need {
		return fmt.Errorf("present: short frame: have %d bytes, need %d", len(pix), need)
	}
	if len(e.pending) != need {
		e.pending = make([]byte, need)
	}
	copy(e.pending, pix[:need])
	e.pitch = pitch
	return nil
}

// Draw blits the staged surface to the screen with aspect-preserving
// nearest-neighbor scaling, centered. Call from the ebiten Game's
// Draw method.
func (e *Ebiten) Draw(screen *ebiten.Image) {
	if e.pending == nil || e.pitch == 0 {
		return
	}

	w := e.pitch / 4
	h := e.opts.NativeH
	if e.offscreen == nil || e.offscreen.Bounds().Dx() != w || e.offscreen.Bounds().Dy() != h {
		e.offscreen = ebiten.NewImage(w, h)
	}
	e.offscreen.WritePixels(e.pending)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scaleX := float64(sw) / float64(w)
	scaleY := float64(sh) / float64(h)
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(sw)-float64(w)*scale)/2,
		(float64(sh)-float64(h)*scale)/2,
	)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(e.offscreen, op)
}

// Layout implements the ebiten.Game layout contract: returning the
// outside size keeps scaling under Draw's control.
func (e *Ebiten) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
