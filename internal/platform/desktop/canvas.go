package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// palette maps core colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       colornames.Lightgray,
	core.ColorRed:           colornames.Firebrick,
	core.ColorGreen:         colornames.Forestgreen,
	core.ColorYellow:        colornames.Goldenrod,
	core.ColorBlue:          colornames.Royalblue,
	core.ColorMagenta:       colornames.Darkmagenta,
	core.ColorCyan:          colornames.Darkcyan,
	core.ColorWhite:         colornames.Whitesmoke,
	core.ColorBrightRed:     colornames.Red,
	core.ColorBrightGreen:   colornames.Lime,
	core.ColorBrightYellow:  colornames.Yellow,
	core.ColorBrightBlue:    colornames.Deepskyblue,
	core.ColorBrightMagenta: colornames.Magenta,
	core.ColorBrightCyan:    colornames.Cyan,
	core.ColorBrightWhite:   colornames.White,
	core.ColorOrange:        colornames.Orange,
	core.ColorGray:          colornames.Gray,
}

var (
	background = colornames.Black
	panelFill  = color.RGBA{A: 210}
)

// rgba returns the palette color scaled by alpha.
func rgba(c core.Color, alpha float64) color.RGBA {
	base, ok := palette[c]
	if !ok {
		base = palette[core.ColorDefault]
	}
	a := core.ClampF(alpha, 0, 1)
	// Premultiplied
	return color.RGBA{
		R: uint8(float64(base.R) * a),
		G: uint8(float64(base.G) * a),
		B: uint8(float64(base.B) * a),
		A: uint8(255 * a),
	}
}

// Canvas draws into an Ebitengine image. The logical screen size equals
// the game viewport, so world units map to pixels one to one.
type Canvas struct {
	dst    *ebiten.Image
	view   core.Size
	face   text.Face
	lineH  float64
	shapes map[core.Shape]*ebiten.Image
}

// NewCanvas creates a canvas using the built-in bitmap font.
func NewCanvas() *Canvas {
	return &Canvas{
		face:   text.NewGoXFace(basicfont.Face7x13),
		lineH:  13,
		shapes: make(map[core.Shape]*ebiten.Image),
	}
}

// Target sets the image drawn by the following calls.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Begin clears the target.
func (c *Canvas) Begin(view core.Size) {
	c.view = view
	c.dst.Fill(background)
}

// FillRect fills a rectangle.
func (c *Canvas) FillRect(r core.Rect, col core.Color, alpha float64) {
	if alpha <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col, alpha), false)
}

// FillShape draws the opaque pixels of s stretched over r.
func (c *Canvas) FillShape(r core.Rect, s core.Shape, col core.Color, alpha float64) {
	if s == nil {
		c.FillRect(r, col, alpha)
		return
	}
	img := c.shapeImage(s)
	if img == nil || alpha <= 0 {
		return
	}
	sw, sh := s.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(sw), r.H/float64(sh))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(rgba(col, 1))
	op.ColorScale.ScaleAlpha(float32(alpha))
	c.dst.DrawImage(img, op)
}

// shapeImage returns a cached white silhouette of s.
func (c *Canvas) shapeImage(s core.Shape) *ebiten.Image {
	if img, ok := c.shapes[s]; ok {
		return img
	}
	w, h := s.Bounds()
	if w == 0 || h == 0 {
		return nil
	}
	pix := make([]byte, 4*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.Opaque(x, y) {
				i := 4 * (y*w + x)
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xff, 0xff, 0xff, 0xff
			}
		}
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	c.shapes[s] = img
	return img
}

// Text draws a string with its top-left corner at (x, y).
func (c *Canvas) Text(x, y float64, s string, col core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(col, 1))
	op.LineSpacing = c.lineH
	text.Draw(c.dst, s, c.face, op)
}

// TextCentered draws a string centered horizontally on row y.
func (c *Canvas) TextCentered(y float64, s string, col core.Color) {
	w := text.Advance(s, c.face)
	c.Text((c.view.W-w)/2, y, s, col)
}

// Panel draws a translucent box with an outline.
func (c *Canvas) Panel(r core.Rect) {
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), panelFill, false)
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, palette[core.ColorWhite], false)
}
