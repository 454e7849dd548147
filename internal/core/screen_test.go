package core

import "testing"

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' ', Color: ColorDefault}) {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '#', ColorRed)

	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red '#'", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '@')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should use the default color")
	}

	// Clear resets colors too
	s.Clear()
	if s.GetCell(1, 1) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Errorf("Clear should reset cell, got %+v", s.GetCell(1, 1))
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(3, 3)
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != (Cell{Rune: ' '}) {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
	if s.String() != "   \n   \n   " {
		t.Errorf("out-of-range writes leaked: %q", s.String())
	}
}

func TestScreenDrawTextColorsAndClips(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(3, 0, "Hello", ColorCyan)

	if s.String() != "   Hel" {
		t.Errorf("String() = %q, expected clipped text", s.String())
	}
	for x := 3; x < 6; x++ {
		if s.GetCell(x, 0).Color != ColorCyan {
			t.Errorf("cell %d should be cyan", x)
		}
	}
}

func TestScreenPanelCells(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 1, "xxxxxx", ColorRed)
	r := CellRect{X: 1, Y: 0, W: 4, H: 3}
	s.DrawRect(r, ' ')
	s.DrawBox(r)

	want := " ┌──┐ \n" +
		"x│  │x\n" +
		" └──┘ \n" +
		"      "
	if got := s.String(); got != want {
		t.Errorf("box:\n%s\nexpected:\n%s", got, want)
	}
	// Blanked interior drops the old color
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Errorf("interior cell kept color %v", s.GetCell(2, 1).Color)
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorGreen)

	s.Resize(3, 2)
	if s.String() != "Hel\n   " {
		t.Errorf("after shrink = %q", s.String())
	}

	s.Resize(6, 2)
	if s.GetCell(1, 0) != (Cell{Rune: 'e', Color: ColorGreen}) {
		t.Errorf("content and color should survive growing, got %+v", s.GetCell(1, 0))
	}
	if s.Get(4, 0) != ' ' {
		t.Error("cells cut by the shrink should not come back")
	}
}
