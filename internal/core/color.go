package core

// Color is a foreground colour key for a screen cell.
// The platform maps each key to an ANSI 256-colour style.
type Color uint8

// Colour keys. The tail of the list exists for the 2048 tile palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorRose
	ColorTeal
	ColorSlate
	ColorMauve
	ColorMaroon
)
