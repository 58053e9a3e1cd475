package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mousePointer is the pointer ID used for the mouse. Touch IDs are
// non-negative.
const mousePointer = -1

type pointerKind int

const (
	pointerPress pointerKind = iota
	pointerMove
	pointerRelease
)

// pointerEvent is one mouse or touch change within a frame.
type pointerEvent struct {
	id   int
	kind pointerKind
	x, y float64
}

// frameInput is everything the game reads from the devices in one Update.
type frameInput struct {
	left    bool // Held this frame
	right   bool
	restart bool // Pressed this frame
	quit    bool

	pointers []pointerEvent
}

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput polls keyboard, mouse and touch state. Window keys report
// real releases, so they map straight onto the intents.
func readInput() frameInput {
	in := frameInput{
		left:    anyPressed(leftKeys),
		right:   anyPressed(rightKeys),
		restart: anyJustPressed(restartKeys),
		quit:    anyJustPressed(quitKeys),
	}

	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.pointers = append(in.pointers, pointerEvent{id: mousePointer, kind: pointerPress, x: float64(mx), y: float64(my)})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		in.pointers = append(in.pointers, pointerEvent{id: mousePointer, kind: pointerRelease})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		in.pointers = append(in.pointers, pointerEvent{id: mousePointer, kind: pointerMove, x: float64(mx), y: float64(my)})
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.pointers = append(in.pointers, pointerEvent{id: int(id), kind: pointerPress, x: float64(x), y: float64(y)})
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		if inpututil.TouchPressDuration(id) == 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		in.pointers = append(in.pointers, pointerEvent{id: int(id), kind: pointerMove, x: float64(x), y: float64(y)})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		in.pointers = append(in.pointers, pointerEvent{id: int(id), kind: pointerRelease})
	}

	return in
}
