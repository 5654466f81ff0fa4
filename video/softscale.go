package video

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// SoftScaler presents by copying the native RGBA surface into a source
// image and scaling it into an output image with nearest-neighbor
// sampling. It serves hosts that cannot magnify cheaply themselves;
// DelegatesScaling is false so the surface manager records that the
// output stage is not doing the work.
//
// Only 32-bit RGBA surfaces are supported.
type SoftScaler struct {
	srcH int
	src  *image.RGBA
	dst  *image.RGBA
}

// NewSoftScaler creates a scaler from the native resolution to the
// given output size.
func NewSoftScaler(srcW, srcH, dstW, dstH int) *SoftScaler {
	return &SoftScaler{
		srcH: srcH,
		src:  image.NewRGBA(image.Rect(0, 0, srcW, srcH)),
		dst:  image.NewRGBA(image.Rect(0, 0, dstW, dstH)),
	}
}

// DelegatesScaling implements ScalingPresenter.
func (s *SoftScaler) DelegatesScaling() bool {
	return false
}

// Present copies the surface into the source image and scales it into
// the output image.
func (s *SoftScaler) Present(pix []byte, pitch int) error {
	if pitch != s.src.Stride {
		return fmt.Errorf("soft scale: pitch %d does not match surface stride %d", pitch, s.src.Stride)
	}
	need := pitch * s.srcH
	if len(pix) < need {
		return fmt.Errorf("soft scale: short frame: have %d bytes, need %d", len(pix), need)
	}
	copy(s.src.Pix, pix[:need])
	draw.NearestNeighbor.Scale(s.dst, s.dst.Bounds(), s.src, s.src.Bounds(), draw.Src, nil)
	return nil
}

// Output returns the scaled image produced by the last Present. The
// image is reused between frames.
func (s *SoftScaler) Output() *image.RGBA {
	return s.dst
}
