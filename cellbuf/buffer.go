// Package cellbuf implements the buffered cell grid the renderer paints
// into: a fixed-size grid of styled runes, a clip-rectangle stack that
// bounds writes to a sub-region, and an ANSI/SGR serializer that emits a
// terminal row with the minimum number of style-change escapes. A
// double-width rune occupies two cells, the second carrying the reserved
// zero rune as a placeholder the serializer skips over.
package cellbuf

import (
	"strings"

	"canopy/measure"
	"canopy/style"
)

// placeholder marks the trailing cell of a double-width glyph. The
// serializer emits nothing for it — the glyph's own escape sequence already
// advanced the terminal's cursor across both columns.
const placeholder = rune(0)

// Cell is one grid position: a rune (or the placeholder) and its style.
// Comparable by value, so two frames' cells can be diffed with ==.
type Cell struct {
	Ch    rune
	Style style.Style
}

// Rect is an integer cell-space rectangle used for clipping.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Buffer is a fixed-size grid of styled cells, the unit the renderer paints
// into and the terminal driver diffs frame-to-frame.
type Buffer struct {
	Width, Height int
	Cells         []Cell

	clipStack []Rect
}

// New returns a cleared buffer of the given size.
func New(width, height int) *Buffer {
	b := &Buffer{Width: width, Height: height, Cells: make([]Cell, width*height)}
	b.Clear()
	return b
}

// Clear resets every cell to a blank space in the default style.
func (b *Buffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Ch: ' '}
	}
}

// Resize grows or shrinks the buffer, preserving the overlapping region.
func (b *Buffer) Resize(width, height int) {
	newCells := make([]Cell, width*height)
	for i := range newCells {
		newCells[i] = Cell{Ch: ' '}
	}
	minH, minW := min(b.Height, height), min(b.Width, width)
	for y := 0; y < minH; y++ {
		copy(newCells[y*width:y*width+minW], b.Cells[y*b.Width:y*b.Width+minW])
	}
	b.Width, b.Height, b.Cells = width, height, newCells
}

func (b *Buffer) bounds() Rect { return Rect{W: b.Width, H: b.Height} }

// PushClip intersects (x, y, w, h) with the current clip (or the full
// buffer, if the stack is empty) and pushes the result. Writes outside the
// active clip are silently dropped.
func (b *Buffer) PushClip(x, y, w, h int) {
	cur := b.activeClip()
	b.clipStack = append(b.clipStack, cur.intersect(Rect{X: x, Y: y, W: w, H: h}))
}

// PopClip restores the previous clip rectangle.
func (b *Buffer) PopClip() {
	if len(b.clipStack) > 0 {
		b.clipStack = b.clipStack[:len(b.clipStack)-1]
	}
}

func (b *Buffer) activeClip() Rect {
	if len(b.clipStack) == 0 {
		return b.bounds()
	}
	return b.clipStack[len(b.clipStack)-1]
}

// Get returns the cell at (x, y), or the zero Cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Cell{}
	}
	return b.Cells[y*b.Width+x]
}

// Set writes a single rune at (x, y) honoring the active clip; a wide rune
// also occupies (x+1, y) with the reserved placeholder, clipped
// independently. A wide glyph whose second cell would land outside the
// buffer or the active clip is written as a space instead. Overwriting
// either half of an existing wide glyph clears the whole glyph first, so no
// orphan placeholder or half-overwritten glyph survives a subsequent write.
func (b *Buffer) Set(x, y int, ch rune, st style.Style) {
	clip := b.activeClip()
	if !clip.contains(x, y) || x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.clearWideAt(x, y)
	w := measure.RuneWidth(ch)
	if w == 2 {
		if x+1 >= b.Width || !clip.contains(x+1, y) {
			b.Cells[y*b.Width+x] = Cell{Ch: ' ', Style: st}
			return
		}
		b.clearWideAt(x+1, y)
		b.Cells[y*b.Width+x] = Cell{Ch: ch, Style: st}
		b.Cells[y*b.Width+x+1] = Cell{Ch: placeholder, Style: st}
		return
	}
	b.Cells[y*b.Width+x] = Cell{Ch: ch, Style: st}
}

// clearWideAt removes whichever wide glyph touches (x, y), whether (x, y) is
// the glyph's origin cell or its placeholder, replacing both halves with an
// unstyled space. Safe to call on a cell that isn't part of a wide glyph.
func (b *Buffer) clearWideAt(x, y int) {
	idx := y*b.Width + x
	if b.Cells[idx].Ch == placeholder {
		if x > 0 {
			b.Cells[idx-1] = Cell{Ch: ' '}
		}
		b.Cells[idx] = Cell{Ch: ' '}
		return
	}
	if measure.RuneWidth(b.Cells[idx].Ch) == 2 && x+1 < b.Width {
		b.Cells[idx+1] = Cell{Ch: ' '}
	}
}

// WriteString writes s starting at (x, y), advancing by each rune's display
// width, and returns the number of cells advanced. Embedded newlines are
// not treated specially — callers writing multi-line content call
// WriteString once per line (package render does the line splitting).
func (b *Buffer) WriteString(x, y int, s string, st style.Style) int {
	cur := x
	for _, r := range s {
		b.Set(cur, y, r, st)
		cur += measure.RuneWidth(r)
	}
	return cur - x
}

// Fill paints ch/st across the rectangle (x, y, w, h), honoring the clip.
func (b *Buffer) Fill(x, y, w, h int, ch rune, st style.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; {
			rw := measure.RuneWidth(ch)
			b.Set(col, row, ch, st)
			if rw < 1 {
				rw = 1
			}
			col += rw
		}
	}
}

// RowEqual reports whether row y is identical between b and other — the
// comparison the terminal driver's row-level diff relies on instead of a
// per-cell diff.
func (b *Buffer) RowEqual(other *Buffer, y int) bool {
	if other == nil || b.Width != other.Width || y >= b.Height || y >= other.Height {
		return false
	}
	aRow := b.Cells[y*b.Width : (y+1)*b.Width]
	bRow := other.Cells[y*other.Width : (y+1)*other.Width]
	for i := range aRow {
		if aRow[i] != bRow[i] {
			return false
		}
	}
	return true
}

// RowBlank reports whether row y is entirely spaces in the default style —
// used by static-content extraction to skip emitting empty lines.
func (b *Buffer) RowBlank(y int) bool {
	if y < 0 || y >= b.Height {
		return true
	}
	for _, c := range b.Cells[y*b.Width : (y+1)*b.Width] {
		if c.Ch != ' ' && c.Ch != placeholder && c.Ch != 0 {
			return false
		}
		if c.Style != (style.Style{}) {
			return false
		}
	}
	return true
}

// RenderRow serializes row y as printable text with embedded SGR escapes,
// emitting a style-change sequence only when consecutive cells' SGR codes
// differ. A reset is written only when leaving a styled run, and once at
// the end if the row ends styled. Placeholder cells contribute nothing —
// the preceding wide glyph already advanced the terminal's cursor across
// both columns.
func (b *Buffer) RenderRow(y int) string {
	if y < 0 || y >= b.Height {
		return ""
	}
	var sb strings.Builder
	row := b.Cells[y*b.Width : (y+1)*b.Width]

	var active string
	for _, c := range row {
		if c.Ch == placeholder {
			continue
		}
		ch := c.Ch
		if ch == 0 {
			ch = ' '
		}
		if codes := sgrCodes(c.Style); codes != active {
			if active != "" {
				sb.WriteString("\x1b[0m")
			}
			sb.WriteString(codes)
			active = codes
		}
		sb.WriteRune(ch)
	}
	if active != "" {
		sb.WriteString("\x1b[0m")
	}
	return sb.String()
}

// Render serializes the whole buffer to ANSI text with CRLF row separators,
// as used for one-shot output such as tests, rather than the terminal
// driver's row-diff painting (the static-content commit uses RenderRow). Trailing
// unstyled-space runs within a row and wholly-blank trailing rows are
// dropped; a cell carrying explicit styling counts as content even when its
// glyph is a space.
func (b *Buffer) Render() string {
	last := b.Height - 1
	for last >= 0 && b.RowBlank(last) {
		last--
	}
	if last < 0 {
		return ""
	}
	var sb strings.Builder
	for y := 0; y <= last; y++ {
		sb.WriteString(strings.TrimRight(b.RenderRow(y), " "))
		if y < last {
			sb.WriteString("\r\n")
		}
	}
	return sb.String()
}

func sgrCodes(st style.Style) string {
	var params []string
	if st.Bold {
		params = append(params, "1")
	}
	if st.Dim {
		params = append(params, "2")
	}
	if st.Italic {
		params = append(params, "3")
	}
	if st.Underline {
		params = append(params, "4")
	}
	if st.Inverse {
		params = append(params, "7")
	}
	if st.Strikethrough {
		params = append(params, "9")
	}
	if st.Color.IsSet() {
		params = append(params, st.Color.FgCode())
	}
	if st.BackgroundColor.IsSet() {
		params = append(params, st.BackgroundColor.BgCode())
	}
	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
