package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// palette maps core colors to screen colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {0, 0, 0, 255},
	core.ColorWhite:   {238, 238, 238, 255},
	core.ColorBlue:    {0, 149, 221, 255},
	core.ColorRed:     {255, 0, 0, 255},
	core.ColorGray:    {90, 90, 90, 255},
	core.ColorYellow:  {255, 214, 0, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorWhite]
}

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// textScale enlarges the loss message to roughly a 24px font.
const textScale = 1.5

// ImageSurface draws field units onto an ebiten image, offset by Origin.
// One field unit is one logical pixel.
type ImageSurface struct {
	dst     *ebiten.Image
	originX float32
	originY float32
	fieldW  float32
	fieldH  float32
}

var _ breakout.Surface = (*ImageSurface)(nil)

// NewImageSurface creates a surface for a fieldW x fieldH field whose top
// left corner sits at (x, y).
func NewImageSurface(x, y, fieldW, fieldH float64) *ImageSurface {
	return &ImageSurface{
		originX: float32(x),
		originY: float32(y),
		fieldW:  float32(fieldW),
		fieldH:  float32(fieldH),
	}
}

// Bind sets the image the next frame is drawn on.
func (s *ImageSurface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

// Clear paints the field background.
func (s *ImageSurface) Clear() {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, s.originX, s.originY, s.fieldW, s.fieldH, palette[core.ColorDefault], false)
}

// FillRect draws a filled rectangle in field units.
func (s *ImageSurface) FillRect(x, y, w, h float64, c core.Color) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, s.originX+float32(x), s.originY+float32(y), float32(w), float32(h), rgba(c), false)
}

// FillCircle draws a filled circle in field units.
func (s *ImageSurface) FillCircle(cx, cy, r float64, c core.Color) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledCircle(s.dst, s.originX+float32(cx), s.originY+float32(cy), float32(r), rgba(c), true)
}

// FillText draws text centered on x. The debug font is white only, so the
// text is printed onto a scratch image and tinted.
func (s *ImageSurface) FillText(x, y float64, text string, c core.Color) {
	if s.dst == nil || text == "" {
		return
	}

	n := len([]rune(text))
	scratch := ebiten.NewImage(n*glyphW, glyphH)
	defer scratch.Deallocate()
	ebitenutil.DebugPrint(scratch, text)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	w := float64(n*glyphW) * textScale
	h := float64(glyphH) * textScale
	op.GeoM.Translate(float64(s.originX)+x-w/2, float64(s.originY)+y-h/2)
	op.ColorScale.ScaleWithColor(rgba(c))
	s.dst.DrawImage(scratch, op)
}
