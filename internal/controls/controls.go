// Package controls maps pointer input (mouse or touch) onto the on-screen
// buttons and the paddle drag. It works in screen units, so the same code
// serves terminal cells and window pixels.
package controls

import "github.com/vovakirdan/tui-breakout/internal/core"

// Target receives the effects of pointer input. *breakout.Session
// satisfies it.
type Target interface {
	SetIntent(a core.Action, held bool)
	RequestRestart()
	DragTo(x float64)
}

// Button is one on-screen control.
type Button struct {
	Action core.Action
	Label  string
	Rect   core.Rect
}

// Bar is the row of buttons under the field: ◀, Restart, ▶.
type Bar struct {
	Buttons []Button
}

// NewBar splits the given area into three equal buttons.
func NewBar(x, y, w, h float64) Bar {
	third := w / 3
	return Bar{Buttons: []Button{
		{Action: core.ActionLeft, Label: "◀", Rect: core.NewRect(x, y, third, h)},
		{Action: core.ActionRestart, Label: "Restart", Rect: core.NewRect(x+third, y, third, h)},
		{Action: core.ActionRight, Label: "▶", Rect: core.NewRect(x+2*third, y, w-2*third, h)},
	}}
}

// HitTest returns the action of the button under (x, y), or ActionNone.
func (b Bar) HitTest(x, y float64) core.Action {
	for _, btn := range b.Buttons {
		if btn.Rect.Contains(x, y) {
			return btn.Action
		}
	}
	return core.ActionNone
}

// Viewport is where the field is drawn on screen.
type Viewport struct {
	Screen core.Rect // Field area in screen units
	FieldW float64   // Field width in field units
	FieldH float64
}

// ToField converts a screen point to field units.
func (v Viewport) ToField(x, y float64) (float64, float64) {
	if v.Screen.W <= 0 || v.Screen.H <= 0 {
		return 0, 0
	}
	fx := (x - v.Screen.X) * v.FieldW / v.Screen.W
	fy := (y - v.Screen.Y) * v.FieldH / v.Screen.H
	return fx, fy
}

// Pointer tracks one pointer from press to release. Pressing a direction
// button holds its intent until release; pressing Restart requests a
// restart once; pressing inside the field starts a drag.
type Pointer struct {
	bar      Bar
	view     Viewport
	held     core.Action
	dragging bool
}

// NewPointer creates a pointer tracker for the given layout.
func NewPointer(bar Bar, view Viewport) *Pointer {
	return &Pointer{bar: bar, view: view}
}

// SetLayout updates the layout after a resize. Any press in progress is
// kept.
func (p *Pointer) SetLayout(bar Bar, view Viewport) {
	p.bar = bar
	p.view = view
}

// Bar returns the current button layout.
func (p *Pointer) Bar() Bar {
	return p.bar
}

// Held returns the direction action held by the pointer, if any.
func (p *Pointer) Held() core.Action {
	return p.held
}

// Dragging reports whether the pointer is dragging the paddle.
func (p *Pointer) Dragging() bool {
	return p.dragging
}

// Press handles a pointer going down at (x, y).
func (p *Pointer) Press(x, y float64, t Target) {
	p.Release(t)

	switch a := p.bar.HitTest(x, y); a {
	case core.ActionLeft, core.ActionRight:
		p.held = a
		t.SetIntent(a, true)
		return
	case core.ActionRestart:
		t.RequestRestart()
		return
	}

	if p.view.Screen.Contains(x, y) {
		p.dragging = true
		p.Move(x, y, t)
	}
}

// Move handles pointer motion. Only a drag reacts to it.
func (p *Pointer) Move(x, y float64, t Target) {
	if !p.dragging {
		return
	}
	fx, _ := p.view.ToField(x, y)
	t.DragTo(fx)
}

// Release ends whatever the pointer was doing.
func (p *Pointer) Release(t Target) {
	if p.held != core.ActionNone {
		t.SetIntent(p.held, false)
		p.held = core.ActionNone
	}
	p.dragging = false
}
