// Package color provides small helpers for coloring terminal output using
// ANSI escape sequences. Functions here return formatted strings; callers
// decide whether color is appropriate (see internal/terminal) and bind the
// plain variants when it is not.
//
//nolint:revive // package name conflicts with standard library
package color

import "fmt"

// ANSI color codes
const (
	resetCode     = "\033[0m"
	redCode       = "\033[31m"
	greenCode     = "\033[32m"
	yellowCode    = "\033[33m"
	whiteCode     = "\033[37m"
	grayCode      = "\033[90m" // Bright black/gray
	highlightCode = "\033[1;2;37m"
)

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code. The code
// may combine attributes, e.g. "\033[1;31m" for bold red.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// Sprintf formats according to a format specifier and wraps the result in
// the receiver's escape sequence.
func (c Color) Sprintf(format string, args ...any) string {
	return c(fmt.Sprintf(format, args...))
}

// Predefined color functions
var (
	// Red colors text in red
	Red = NewColor(redCode)

	// Green colors text in green
	Green = NewColor(greenCode)

	// Yellow colors text in yellow
	Yellow = NewColor(yellowCode)

	// White colors text in white
	White = NewColor(whiteCode)

	// Gray colors text in gray (bright black)
	Gray = NewColor(grayCode)

	// Highlight emphasizes text in bold dim white, used for the library
	// names in the missing-dependency report.
	Highlight = NewColor(highlightCode)
)

// NoColor returns text unchanged. It satisfies the Color signature so it can
// stand in wherever a color function is expected.
func NoColor(text string) string {
	return text
}

// ConditionalColor returns c when enabled and NoColor otherwise, letting
// callers bind the color decision once instead of branching at every call
// site.
func ConditionalColor(c Color, enabled bool) Color {
	if enabled {
		return c
	}
	return NoColor
}
