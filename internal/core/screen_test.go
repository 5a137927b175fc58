package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("screen size = %dx%d, want 10x5", s.Width(), s.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen not blank at (%d, %d)", x, y)
			}
		}
	}
}

func TestSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3, 2) = %q, want '#'", got)
	}

	// Out-of-bounds writes are ignored, reads return a blank.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, want ' '", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10, 0) = %q, want ' '", got)
	}
}

func TestSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '*', Gray(200))
	cell := s.GetCell(1, 1)
	if cell.Rune != '*' {
		t.Errorf("cell rune = %q, want '*'", cell.Rune)
	}
	if cell.Color != Gray(200) {
		t.Errorf("cell color = %v, want %v", cell.Color, Gray(200))
	}

	if got := s.GetCell(0, 0).Color; !got.IsDefault() {
		t.Errorf("untouched cell color = %v, want default", got)
	}
}

func TestClearResetsCells(t *testing.T) {
	s := NewScreen(4, 4)
	s.Fill('#')
	s.SetBackground(RGB(10, 20, 30))

	s.Clear()

	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("cell after Clear = %q, want ' '", got)
	}
	// Clear wipes cells but leaves the background alone.
	if s.Background() != RGB(10, 20, 30) {
		t.Error("Clear reset the background color")
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(6, 4)

	if s.Width() != 6 || s.Height() != 4 {
		t.Fatalf("resized to %dx%d, want 6x4", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("surviving cell = %q, want 'A'", got)
	}

	s.Resize(12, 8)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("cell lost when growing = %q, want 'A'", got)
	}
	if got := s.Get(11, 7); got != ' ' {
		t.Errorf("new area not blank: %q", got)
	}
}

func TestDrawCircle(t *testing.T) {
	s := NewScreen(11, 11)
	s.DrawCircle(5, 5, 2, 'o', Gray(100))

	// Center and axis-aligned edge cells are inside the disc.
	for _, p := range [][2]int{{5, 5}, {3, 5}, {7, 5}, {5, 3}, {5, 7}, {4, 4}} {
		if got := s.Get(p[0], p[1]); got != 'o' {
			t.Errorf("Get(%d, %d) = %q, want 'o'", p[0], p[1], got)
		}
	}

	// Corners of the bounding square are outside.
	for _, p := range [][2]int{{3, 3}, {7, 7}, {3, 7}, {7, 3}} {
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, want blank", p[0], p[1], got)
		}
	}
}

func TestDrawCircleRadiusZero(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawCircle(2, 2, 0, '*', Gray(50))

	if got := s.Get(2, 2); got != '*' {
		t.Errorf("center cell = %q, want '*'", got)
	}
	if got := s.Get(3, 2); got != ' ' {
		t.Errorf("neighbor cell = %q, want blank", got)
	}
}

func TestDrawCircleClipped(t *testing.T) {
	s := NewScreen(5, 5)

	// Off-screen center must not panic; only the overlap is drawn.
	s.DrawCircle(0, 0, 2, 'o', Gray(100))
	s.DrawCircle(-10, -10, 2, 'o', Gray(100))

	if got := s.Get(0, 0); got != 'o' {
		t.Errorf("Get(0, 0) = %q, want 'o'", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if got := s.Row(1); !strings.Contains(got, "hi") {
		t.Errorf("Row(1) = %q, want to contain \"hi\"", got)
	}

	// Clipped text must not panic.
	s.DrawText(8, 1, "overflow")
	if got := s.Get(9, 1); got != 'v' {
		t.Errorf("Get(9, 1) = %q, want 'v'", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "ab")

	if got := s.Get(4, 1); got != 'a' {
		t.Errorf("Get(4, 1) = %q, want 'a'", got)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if got := s.Get(1, 1); got != '┌' {
		t.Errorf("top-left = %q, want '┌'", got)
	}
	if got := s.Get(5, 4); got != '┘' {
		t.Errorf("bottom-right = %q, want '┘'", got)
	}
	if got := s.Get(3, 1); got != '─' {
		t.Errorf("top edge = %q, want '─'", got)
	}
	if got := s.Get(1, 2); got != '│' {
		t.Errorf("left edge = %q, want '│'", got)
	}
	if got := s.Get(3, 2); got != ' ' {
		t.Errorf("interior = %q, want blank", got)
	}
}

func TestString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
