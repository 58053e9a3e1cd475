package controls

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type fakeTarget struct {
	intents  core.Intents
	restarts int
	drags    []float64
}

func (f *fakeTarget) SetIntent(a core.Action, held bool) { f.intents.Set(a, held) }
func (f *fakeTarget) RequestRestart()                    { f.restarts++ }
func (f *fakeTarget) DragTo(x float64)                   { f.drags = append(f.drags, x) }

// 60x20 field at the origin with a 3-row bar below it; field is 480x320.
func testLayout() (Bar, Viewport) {
	bar := NewBar(0, 20, 60, 3)
	view := Viewport{Screen: core.NewRect(0, 0, 60, 20), FieldW: 480, FieldH: 320}
	return bar, view
}

func TestBarHitTest(t *testing.T) {
	bar, _ := testLayout()

	tests := []struct {
		x, y float64
		want core.Action
	}{
		{5, 21, core.ActionLeft},
		{30, 21, core.ActionRestart},
		{55, 22, core.ActionRight},
		{30, 10, core.ActionNone},
		{60, 21, core.ActionNone},
	}

	for _, tt := range tests {
		if got := bar.HitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%g, %g) = %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPointerHoldsDirectionUntilRelease(t *testing.T) {
	bar, view := testLayout()
	p := NewPointer(bar, view)
	target := &fakeTarget{}

	p.Press(5, 21, target)
	if !target.intents.MoveLeft {
		t.Fatal("Pressing ◀ should hold the left intent")
	}
	if p.Held() != core.ActionLeft {
		t.Errorf("Expected held left, got %s", p.Held())
	}

	p.Release(target)
	if target.intents.MoveLeft {
		t.Error("Release should clear the left intent")
	}
}

func TestPointerRestart(t *testing.T) {
	bar, view := testLayout()
	p := NewPointer(bar, view)
	target := &fakeTarget{}

	p.Press(30, 21, target)
	p.Release(target)

	if target.restarts != 1 {
		t.Errorf("Expected one restart request, got %d", target.restarts)
	}
	if target.intents != (core.Intents{}) {
		t.Error("Restart button should not hold an intent")
	}
}

func TestPointerDrag(t *testing.T) {
	bar, view := testLayout()
	p := NewPointer(bar, view)
	target := &fakeTarget{}

	p.Press(30, 10, target)
	if !p.Dragging() {
		t.Fatal("Press inside the field should start a drag")
	}
	p.Move(15, 12, target)
	p.Release(target)
	p.Move(45, 12, target)

	want := []float64{240, 120}
	if len(target.drags) != len(want) {
		t.Fatalf("Expected drags %v, got %v", want, target.drags)
	}
	for i := range want {
		if target.drags[i] != want[i] {
			t.Errorf("drag[%d] = %g, want %g", i, target.drags[i], want[i])
		}
	}
}

func TestPointerPressReleasesPrevious(t *testing.T) {
	bar, view := testLayout()
	p := NewPointer(bar, view)
	target := &fakeTarget{}

	p.Press(5, 21, target)
	p.Press(55, 21, target)

	if target.intents.MoveLeft {
		t.Error("A new press should release the previous button")
	}
	if !target.intents.MoveRight {
		t.Error("Expected the right intent held")
	}
}

func TestViewportToField(t *testing.T) {
	view := Viewport{Screen: core.NewRect(10, 5, 60, 20), FieldW: 480, FieldH: 320}

	fx, fy := view.ToField(40, 15)
	if fx != 240 || fy != 160 {
		t.Errorf("ToField(40, 15) = (%g, %g), want (240, 160)", fx, fy)
	}

	empty := Viewport{}
	if fx, fy := empty.ToField(1, 1); fx != 0 || fy != 0 {
		t.Error("Empty viewport should map to the origin")
	}
}
