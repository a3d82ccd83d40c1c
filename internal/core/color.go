package core

// Color represents a foreground color for a screen cell.
// Frontends map it to ANSI 256-color codes.
type Color uint8

// Palette used by the maze themes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ANSI returns the ANSI 256-color code for the color, or "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightYellow:
		return "11"
	case ColorBrightBlue:
		return "12"
	case ColorBrightWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}
