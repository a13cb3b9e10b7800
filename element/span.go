package element

import "canopy/style"

// Span is one inline run of styled text within a Line.
type Span struct {
	Text  string
	Style style.Style
}

// Line is an ordered sequence of Spans rendered on one row.
type Line []Span

// PlainLine builds a single-span line with the given style.
func PlainLine(text string, st style.Style) Line {
	return Line{{Text: text, Style: st}}
}
