package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 5)

	if s.Width() != 20 {
		t.Errorf("Width() = %d, expected 20", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, expected 5", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '●', ColorRed, AttrReverse)
	c := s.GetCell(5, 5)
	if c.Rune != '●' || c.Color != ColorRed || !c.Attr.Has(AttrReverse) {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}
	if s.Get(5, 5) != '●' {
		t.Errorf("Get(5, 5) = %q", s.Get(5, 5))
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out of bounds Set leaked into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.Clear()

	if got := s.String(); got != "    \n    " {
		t.Errorf("String() after Clear = %q", got)
	}
}

func TestDrawTextClipsAndCounts(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(2, 0, "héllo")

	if got := s.Row(0); got != "  hél" {
		t.Errorf("Row(0) = %q, expected %q", got, "  hél")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorYellow)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centred text should keep its colour")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, want)
	}
}

func TestResizeBlanks(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(1, 1, 'x')
	s.Resize(5, 2)

	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size after Resize = %dx%d", s.Width(), s.Height())
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("Resize should blank the buffer")
	}
}

func TestRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(7); got != "   " {
		t.Errorf("Row(7) = %q", got)
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionSelect)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	if !f.Has(ActionSelect) || !f.Has(ActionLeft) {
		t.Error("frame lost an action")
	}
	if f.Has(ActionHint) || f.Has(ActionNone) {
		t.Error("frame reports an action that was not set")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionSelect: "Select",
		ActionHint:   "Hint",
		Action(99):   "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
