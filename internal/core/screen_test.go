package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, '@')
	if s.Get(5, 5) != '@' {
		t.Errorf("Get(5, 5) = %q, expected '@'", s.Get(5, 5))
	}

	// Out of bounds writes are ignored
	s.Set(-1, 5, 'x')
	s.Set(5, -1, 'x')
	s.Set(10, 5, 'x')
	s.Set(5, 10, 'x')

	// Out of bounds reads return space
	if s.Get(-1, 5) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
	if s.Get(10, 5) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '#', ColorGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell color = %d, expected ColorGreen", cell.Color)
	}

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out-of-bounds GetCell should return space cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, '@', ColorRed)
	s.Clear()

	if s.Get(5, 5) != ' ' {
		t.Error("Clear should reset cells to space")
	}
	if s.GetCell(5, 5).Color != ColorDefault {
		t.Error("Clear should reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")

	expected := "hello"
	for i, r := range expected {
		if s.Get(2+i, 1) != r {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", r, 2+i, s.Get(2+i, 1))
		}
	}

	// Text extending beyond the right edge is clipped
	s.DrawText(18, 2, "overflow")
	if s.Get(18, 2) != 'o' || s.Get(19, 2) != 'v' {
		t.Error("DrawText should draw up to the edge")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawHLine(1, 5, 5, '-', ColorDefault)
	for x := 1; x < 6; x++ {
		if s.Get(x, 5) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 5)", x)
		}
	}

	s.DrawVLine(8, 2, 4, '|', ColorDefault)
	for y := 2; y < 6; y++ {
		if s.Get(8, y) != '|' {
			t.Errorf("DrawVLine: expected '|' at (8, %d)", y)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawBox(1, 1, 5, 4, ColorDefault)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("DrawBox top corners missing")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox bottom corners missing")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges missing")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, '@')

	s.Resize(20, 15)

	if s.Width() != 20 || s.Height() != 15 {
		t.Errorf("Resize: got %dx%d, expected 20x15", s.Width(), s.Height())
	}
	// Content is discarded on resize
	if s.Get(5, 5) != ' ' {
		t.Error("Resize should clear the buffer")
	}

	// Resize to the same size is a no-op
	s.Set(1, 1, 'x')
	s.Resize(20, 15)
	if s.Get(1, 1) != 'x' {
		t.Error("Resize to the same dimensions should preserve content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() should have 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "a  ")
	}
	if lines[1] != "  b" {
		t.Errorf("line 1 = %q, expected %q", lines[1], "  b")
	}
}
