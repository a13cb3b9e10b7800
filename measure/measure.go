// Package measure provides Unicode-display-width-aware text measurement:
// display width, wrapping, truncation, and padding. The layout engine uses
// this package's Intrinsic/WrapLines to obtain the intrinsic size of
// text leaves.
package measure

import (
	"strings"

	"github.com/unilibs/uniwidth"

	"canopy/style"
)

// RuneWidth returns the terminal display width of a single rune: 2 for
// wide glyphs (CJK ideographs, fullwidth forms, most emoji), 0 for
// zero-width (combining marks, many control characters), 1 otherwise.
func RuneWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// IsWide reports whether r occupies two terminal cells.
func IsWide(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of s (sum of rune widths,
// ignoring newlines — callers measuring multi-line text should split on
// "\n" first and take the max of each line's StringWidth).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// Lines splits s on "\n" into its constituent lines, the unit intrinsic
// measurement and wrapping both operate on.
func Lines(s string) []string {
	return strings.Split(s, "\n")
}

// MaxLineWidth returns the widest line's display width across s.
func MaxLineWidth(s string) int {
	max := 0
	for _, line := range Lines(s) {
		if w := StringWidth(line); w > max {
			max = w
		}
	}
	return max
}

// Intrinsic returns the unconstrained (width, height) of s: the maximum
// display width across its lines, and its line count.
func Intrinsic(s string) (width, height int) {
	lines := Lines(s)
	for _, line := range lines {
		if w := StringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// WrapLines wraps s to fit within maxWidth cells per line, honoring the
// given wrap mode. TextWrapWrap performs word-wrap with a hard break for
// any single word wider than maxWidth; the Truncate* modes instead return
// each original line truncated (see Truncate).
func WrapLines(s string, maxWidth int, mode style.TextWrap) []string {
	lines := Lines(s)
	if maxWidth <= 0 {
		out := make([]string, len(lines))
		for i := range lines {
			out[i] = ""
		}
		return out
	}
	if mode != style.TextWrapWrap {
		out := make([]string, len(lines))
		for i, line := range lines {
			out[i] = Truncate(line, maxWidth, mode)
		}
		return out
	}

	var out []string
	for _, line := range lines {
		out = append(out, wrapOneLine(line, maxWidth)...)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

func wrapOneLine(line string, maxWidth int) []string {
	if StringWidth(line) <= maxWidth {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	curW := 0

	flush := func() {
		result = append(result, cur.String())
		cur.Reset()
		curW = 0
	}

	words := strings.Split(line, " ")
	for wi, word := range words {
		wordW := StringWidth(word)
		sep := 0
		if cur.Len() > 0 {
			sep = 1
		}

		if wordW > maxWidth {
			// Hard-break a word wider than the whole line.
			if cur.Len() > 0 {
				flush()
			}
			for _, r := range word {
				rw := RuneWidth(r)
				if curW+rw > maxWidth && curW > 0 {
					flush()
				}
				cur.WriteRune(r)
				curW += rw
			}
			if wi < len(words)-1 {
				cur.WriteByte(' ')
				curW++
			}
			continue
		}

		if curW+sep+wordW > maxWidth {
			flush()
			cur.WriteString(word)
			curW = wordW
		} else {
			if sep == 1 {
				cur.WriteByte(' ')
				curW++
			}
			cur.WriteString(word)
			curW += wordW
		}
	}
	if cur.Len() > 0 || len(result) == 0 {
		flush()
	}
	return result
}

// Truncate shortens line to fit within maxWidth cells per the given wrap
// mode (one of the Truncate* variants); TextWrapWrap is treated as
// TextWrapTruncateEnd. A truncated line gets a single-cell "…" marker at
// the truncation point when room allows.
func Truncate(line string, maxWidth int, mode style.TextWrap) string {
	if maxWidth <= 0 {
		return ""
	}
	if StringWidth(line) <= maxWidth {
		return line
	}
	runes := []rune(line)

	switch mode {
	case style.TextWrapTruncateStart:
		return truncateFromRunes(runes, maxWidth, true, false)
	case style.TextWrapTruncateMiddle:
		return truncateMiddle(runes, maxWidth)
	default: // TruncateEnd, Truncate(Wrap) fallback
		return truncateFromRunes(runes, maxWidth, false, true)
	}
}

func truncateFromRunes(runes []rune, maxWidth int, fromStart, marker bool) string {
	markerW := 0
	if maxWidth > 1 {
		markerW = 1
	}
	budget := maxWidth - markerW

	if fromStart {
		// Keep the suffix that fits, prefixed with the marker.
		var kept []rune
		w := 0
		for i := len(runes) - 1; i >= 0; i-- {
			rw := RuneWidth(runes[i])
			if w+rw > budget {
				break
			}
			kept = append([]rune{runes[i]}, kept...)
			w += rw
		}
		if markerW > 0 {
			return "…" + string(kept)
		}
		return string(kept)
	}

	var kept []rune
	w := 0
	for _, r := range runes {
		rw := RuneWidth(r)
		if w+rw > budget {
			break
		}
		kept = append(kept, r)
		w += rw
	}
	if markerW > 0 {
		return string(kept) + "…"
	}
	return string(kept)
}

func truncateMiddle(runes []rune, maxWidth int) string {
	if maxWidth <= 1 {
		return truncateFromRunes(runes, maxWidth, false, true)
	}
	budget := maxWidth - 1
	headBudget := budget / 2
	tailBudget := budget - headBudget

	var head []rune
	w := 0
	for _, r := range runes {
		rw := RuneWidth(r)
		if w+rw > headBudget {
			break
		}
		head = append(head, r)
		w += rw
	}

	var tail []rune
	w = 0
	for i := len(runes) - 1; i >= 0; i-- {
		rw := RuneWidth(runes[i])
		if w+rw > tailBudget {
			break
		}
		tail = append([]rune{runes[i]}, tail...)
		w += rw
	}

	return string(head) + "…" + string(tail)
}

// Pad pads s with trailing spaces until it reaches width cells of display
// width (never truncates — callers that need a hard width should Truncate
// first).
func Pad(s string, width int) string {
	w := StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
