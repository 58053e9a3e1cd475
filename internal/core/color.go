package core

// Color represents a foreground color for a drawn shape or screen cell.
type Color uint8

// Field palette.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBlue
	ColorRed
	ColorGray
	ColorYellow
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorGray:
		return "gray"
	case ColorYellow:
		return "yellow"
	default:
		return "default"
	}
}
