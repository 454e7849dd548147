package core

import "math"

// Shape is an opacity silhouette sampled in its own pixel space.
// Masks built from sprites implement it.
type Shape interface {
	Bounds() (w, h int)
	Opaque(x, y int) bool
}

// Canvas is the render backend a game draws into.
// All coordinates are world units inside the viewport passed to Begin;
// the backend decides how world units map to cells or pixels.
type Canvas interface {
	// Begin clears the target and sets the visible world area.
	Begin(view Size)

	// FillRect fills a rectangle. Alpha in [0, 1] controls opacity.
	FillRect(r Rect, c Color, alpha float64)

	// FillShape fills the opaque part of a shape stretched over r.
	FillShape(r Rect, s Shape, c Color, alpha float64)

	// Text draws a string with its top-left corner at (x, y).
	Text(x, y float64, text string, c Color)

	// TextCentered draws a string horizontally centered at row y.
	TextCentered(y float64, text string, c Color)

	// Panel draws an opaque framed box, used for modal overlays.
	Panel(r Rect)
}

// ShadeGlyph maps an opacity to a block glyph.
// Returns 0 for fully transparent.
func ShadeGlyph(alpha float64) rune {
	switch {
	case alpha >= 0.75:
		return '█'
	case alpha >= 0.5:
		return '▓'
	case alpha >= 0.25:
		return '▒'
	case alpha > 0:
		return '░'
	default:
		return 0
	}
}

// ScreenCanvas projects world coordinates onto a character Screen.
type ScreenCanvas struct {
	screen *Screen
	view   Size
	sx, sy float64 // cells per world unit
}

// NewScreenCanvas creates a canvas drawing into s.
func NewScreenCanvas(s *Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: s, view: Size{W: 1, H: 1}, sx: 1, sy: 1}
}

// Screen returns the underlying cell buffer.
func (c *ScreenCanvas) Screen() *Screen {
	return c.screen
}

// Begin clears the screen and recomputes the projection.
func (c *ScreenCanvas) Begin(view Size) {
	if view.W <= 0 || view.H <= 0 {
		view = Size{W: float64(c.screen.Width()), H: float64(c.screen.Height())}
	}
	c.view = view
	c.sx = float64(c.screen.Width()) / view.W
	c.sy = float64(c.screen.Height()) / view.H
	c.screen.Clear()
}

// Cells returns the cell rectangle covered by a world rectangle.
// Any non-empty world rectangle covers at least one cell.
func (c *ScreenCanvas) Cells(r Rect) CellRect {
	x0 := int(math.Floor(r.X * c.sx))
	y0 := int(math.Floor(r.Y * c.sy))
	x1 := int(math.Ceil(r.Right() * c.sx))
	y1 := int(math.Ceil(r.Bottom() * c.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// FillRect fills every cell the rectangle touches with a shade glyph.
func (c *ScreenCanvas) FillRect(r Rect, col Color, alpha float64) {
	glyph := ShadeGlyph(alpha)
	if glyph == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	cr := c.Cells(r)
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			c.screen.SetColored(x, y, glyph, col)
		}
	}
}

// FillShape fills the cells whose centers land on an opaque shape pixel.
func (c *ScreenCanvas) FillShape(r Rect, s Shape, col Color, alpha float64) {
	if s == nil {
		c.FillRect(r, col, alpha)
		return
	}
	glyph := ShadeGlyph(alpha)
	sw, sh := s.Bounds()
	if glyph == 0 || r.W <= 0 || r.H <= 0 || sw == 0 || sh == 0 {
		return
	}
	cr := c.Cells(r)
	for y := cr.Y; y < cr.Bottom(); y++ {
		wy := (float64(y) + 0.5) / c.sy
		py := int((wy - r.Y) * float64(sh) / r.H)
		if py < 0 || py >= sh {
			continue
		}
		for x := cr.X; x < cr.Right(); x++ {
			wx := (float64(x) + 0.5) / c.sx
			px := int((wx - r.X) * float64(sw) / r.W)
			if px < 0 || px >= sw {
				continue
			}
			if s.Opaque(px, py) {
				c.screen.SetColored(x, y, glyph, col)
			}
		}
	}
}

// Text draws a string starting at the cell containing (x, y).
func (c *ScreenCanvas) Text(x, y float64, text string, col Color) {
	c.screen.DrawText(int(math.Floor(x*c.sx)), int(math.Floor(y*c.sy)), text, col)
}

// TextCentered draws a string centered on the row containing y.
func (c *ScreenCanvas) TextCentered(y float64, text string, col Color) {
	cx := (c.screen.Width() - len([]rune(text))) / 2
	c.screen.DrawText(cx, int(math.Floor(y*c.sy)), text, col)
}

// Panel blanks the covered cells and draws a box outline.
func (c *ScreenCanvas) Panel(r Rect) {
	cr := c.Cells(r)
	c.screen.DrawRect(cr, ' ')
	c.screen.DrawBox(cr)
}
