package core

import "testing"

// checker is a 2x2 shape with opaque top-left and bottom-right pixels.
type checker struct{}

func (checker) Bounds() (int, int) { return 2, 2 }

func (checker) Opaque(x, y int) bool { return x == y }

func TestShadeGlyph(t *testing.T) {
	tests := []struct {
		alpha    float64
		expected rune
	}{
		{1.0, '█'},
		{0.8, '█'},
		{0.6, '▓'},
		{0.3, '▒'},
		{0.1, '░'},
		{0, 0},
		{-1, 0},
	}

	for _, tc := range tests {
		if got := ShadeGlyph(tc.alpha); got != tc.expected {
			t.Errorf("ShadeGlyph(%v) = %q, expected %q", tc.alpha, got, tc.expected)
		}
	}
}

func TestScreenCanvasProjection(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewScreenCanvas(s)
	c.Begin(Size{W: 800, H: 600})

	// 800x600 world onto 80x24 cells: 10 units per column, 25 per row
	cr := c.Cells(NewRect(100, 50, 50, 50))
	expected := CellRect{X: 10, Y: 2, W: 5, H: 2}
	if cr != expected {
		t.Errorf("Cells() = %+v, expected %+v", cr, expected)
	}

	// Tiny rects still cover one cell
	tiny := c.Cells(NewRect(401, 301, 1, 1))
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny rect should cover one cell, got %+v", tiny)
	}
}

func TestScreenCanvasFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewScreenCanvas(s)
	c.Begin(Size{W: 100, H: 100})

	c.FillRect(NewRect(20, 20, 20, 20), ColorGreen, 1)
	cell := s.GetCell(2, 2)
	if cell.Rune != '█' || cell.Color != ColorGreen {
		t.Errorf("expected green block at (2, 2), got %+v", cell)
	}
	if s.Get(4, 4) != ' ' {
		t.Error("FillRect should not spill outside the rect")
	}

	// Transparent fill draws nothing
	c.FillRect(NewRect(60, 60, 20, 20), ColorRed, 0)
	if s.Get(6, 6) != ' ' {
		t.Error("zero alpha should not draw")
	}
}

func TestScreenCanvasFillShape(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewScreenCanvas(s)
	c.Begin(Size{W: 10, H: 10})

	c.FillShape(NewRect(0, 0, 4, 4), checker{}, ColorWhite, 1)

	// Top-left quadrant opaque, top-right transparent
	if s.Get(0, 0) != '█' || s.Get(1, 1) != '█' {
		t.Error("opaque quadrant should be drawn")
	}
	if s.Get(3, 0) != ' ' || s.Get(0, 3) != ' ' {
		t.Error("transparent quadrant should be skipped")
	}
	if s.Get(3, 3) != '█' {
		t.Error("bottom-right quadrant should be drawn")
	}
}

func TestScreenCanvasBeginClears(t *testing.T) {
	s := NewScreen(5, 5)
	c := NewScreenCanvas(s)
	s.DrawText(0, 2, "xxxxx", ColorRed)

	c.Begin(Size{W: 5, H: 5})
	if s.GetCell(2, 2) != (Cell{Rune: ' '}) {
		t.Error("Begin should clear the screen")
	}
}

func TestScreenCanvasText(t *testing.T) {
	s := NewScreen(20, 4)
	c := NewScreenCanvas(s)
	c.Begin(Size{W: 200, H: 40})

	c.Text(20, 10, "Hi", ColorYellow)
	if s.Get(2, 1) != 'H' || s.Get(3, 1) != 'i' || s.GetCell(2, 1).Color != ColorYellow {
		t.Errorf("Text not at expected cell, screen:\n%s", s)
	}

	c.TextCentered(30, "abcd", ColorDefault)
	if s.Get(8, 3) != 'a' {
		t.Errorf("TextCentered not centered, screen:\n%s", s)
	}
}
