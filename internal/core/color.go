package core

// Color is the foreground of a screen cell. Games name colors; the
// terminal platform owns the mapping to ANSI codes.
type Color uint8

// Colors used by the games, their labels and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
