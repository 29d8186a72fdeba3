package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorGray
	ColorDarkGray
	ColorOrange
	ColorBlue
	ColorRed
	ColorBrightWhite
)

// String returns the lowercase color name used in configuration files.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "dark-gray"
	case ColorOrange:
		return "orange"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}
