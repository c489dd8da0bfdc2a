package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorOrange
	ColorPink  // #ff99cc
	ColorLime  // #66ff66
	ColorSky   // #3399ff
	ColorLilac // #d6d1f5, playfield background
)

// String returns the color name, used in logs.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorPink:
		return "pink"
	case ColorLime:
		return "lime"
	case ColorSky:
		return "sky"
	case ColorLilac:
		return "lilac"
	default:
		return "unknown"
	}
}
