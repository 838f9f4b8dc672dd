package core

// Color is a foreground color for a screen cell, mapped to an ANSI 256-color
// code by the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorBrightWhite
	ColorOrange
	ColorGray
)
