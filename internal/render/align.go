// Package render provides display-width aware text utilities: measuring,
// padding, alignment, truncation and line wrapping.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align provides text alignment utilities
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Measure returns the display width of a string
// This correctly handles emoji and wide characters (e.g., CJK)
func Measure(s string) int {
	return runewidth.StringWidth(s)
}

// Blank returns a string of spaces of the given width
func Blank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}

// PadLeft adds padding to the left of a string
func PadLeft(s string, width int) string {
	return Blank(width-Measure(s)) + s
}

// PadRight adds padding to the right of a string
func PadRight(s string, width int) string {
	return s + Blank(width-Measure(s))
}

// PadCenter centers a string within the given width. An odd remainder goes
// to the right.
func PadCenter(s string, width int) string {
	padding := width - Measure(s)
	if padding <= 0 {
		return s
	}
	leftPadding := padding / 2
	return Blank(leftPadding) + s + Blank(padding-leftPadding)
}

// Pad aligns s within width. Strings already at least width wide are
// returned unchanged.
func Pad(s string, width int, align Align) string {
	switch align {
	case AlignRight:
		return PadLeft(s, width)
	case AlignCenter:
		return PadCenter(s, width)
	default:
		return PadRight(s, width)
	}
}

// Truncate truncates a string to the given display width
func Truncate(s string, width int) string {
	if Measure(s) <= width {
		return s
	}
	var sb strings.Builder
	currentWidth := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > width {
			break
		}
		sb.WriteRune(r)
		currentWidth += rw
	}
	return sb.String()
}

// Fit truncates s to width and aligns it, so the result is exactly width
// columns wide. A wide character cut in half is replaced by padding.
func Fit(s string, width int, align Align) string {
	return Pad(Truncate(s, width), width, align)
}
