package sim

import (
	"image"
	"math"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// alphaThreshold is the minimum alpha counted as opaque.
const alphaThreshold = 127

// Mask is a per-pixel opacity grid, one pixel per world unit.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// MaskFromImage builds a mask from an image's alpha channel.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA returns 16-bit alpha
			m.bits[y*m.w+x] = a>>8 > alphaThreshold
		}
	}
	return m
}

// Bounds returns the mask size.
func (m *Mask) Bounds() (int, int) {
	return m.w, m.h
}

// Opaque reports whether the pixel at (x, y) is set.
// Out-of-range pixels are transparent.
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Set sets or clears a pixel.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = v
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

var _ core.Shape = (*Mask)(nil)

// opaqueAt samples a possibly-nil mask stretched over a box of size (w, h).
// A nil mask is a solid box.
func opaqueAt(m *Mask, w, h int, x, y int) bool {
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	if m == nil {
		return true
	}
	if m.w == w && m.h == h {
		return m.Opaque(x, y)
	}
	if w == 0 || h == 0 {
		return false
	}
	return m.Opaque(x*m.w/w, y*m.h/h)
}

// pixelRect snaps a world rectangle to whole pixels.
func pixelRect(r core.Rect) image.Rectangle {
	x := int(math.Floor(r.X))
	y := int(math.Floor(r.Y))
	return image.Rect(x, y, x+int(math.Round(r.W)), y+int(math.Round(r.H)))
}

// MaskOverlap reports whether two masked rectangles share an opaque pixel.
// Positions are snapped to whole pixels, so the result does not depend on
// argument order.
func MaskOverlap(a core.Rect, ma *Mask, b core.Rect, mb *Mask) bool {
	pa, pb := pixelRect(a), pixelRect(b)
	in := pa.Intersect(pb)
	if in.Empty() {
		return false
	}
	if ma == nil && mb == nil {
		return true
	}
	for y := in.Min.Y; y < in.Max.Y; y++ {
		for x := in.Min.X; x < in.Max.X; x++ {
			if opaqueAt(ma, pa.Dx(), pa.Dy(), x-pa.Min.X, y-pa.Min.Y) &&
				opaqueAt(mb, pb.Dx(), pb.Dy(), x-pb.Min.X, y-pb.Min.Y) {
				return true
			}
		}
	}
	return false
}
