package sprite

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/arcade-sim/internal/sim"
)

// Rasterize scales the art to w×h and rotates it by angle degrees
// (clockwise) around the center. The output keeps the w×h bounds; corners
// rotated outside are clipped.
func Rasterize(a Art, w, h int, angle float64) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	src := a.Image()
	sw, sh := a.Size()
	if w <= 0 || h <= 0 || sw == 0 || sh == 0 {
		return dst
	}

	if angle == 0 {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
		return dst
	}

	// Maps source pixels to destination pixels: scale to w×h, then rotate
	// around the destination center.
	sx := float64(w) / float64(sw)
	sy := float64(h) / float64(sh)
	rad := angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	cx, cy := float64(w)/2, float64(h)/2

	// Translate source center to origin, scale, rotate, translate back
	scx, scy := float64(sw)/2, float64(sh)/2
	m := f64.Aff3{
		cos * sx, -sin * sy, 0,
		sin * sx, cos * sy, 0,
	}
	m[2] = cx - (m[0]*scx + m[1]*scy)
	m[5] = cy - (m[3]*scx + m[4]*scy)

	draw.NearestNeighbor.Transform(dst, m, src, src.Bounds(), draw.Over, nil)
	return dst
}

// Mask builds a collision mask for the art at w×h.
func Mask(a Art, w, h int, angle float64) *sim.Mask {
	return sim.MaskFromImage(Rasterize(a, w, h, angle))
}

// MaskNamed builds a mask for a built-in silhouette.
func MaskNamed(name string, w, h int, angle float64) (*sim.Mask, error) {
	a, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return Mask(a, w, h, angle), nil
}
