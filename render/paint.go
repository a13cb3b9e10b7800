// Package render paints a laid-out element tree into a cellbuf.Buffer:
// background fill, border, text/spans, then children, translated by the
// element's scroll offset and clipped to its content box when its overflow
// on either axis is Hidden or Scroll. Supports
// seven named border styles with per-side colour/enable flags, and the
// element model's Text/Spans leaves.
package render

import (
	"canopy/cellbuf"
	"canopy/element"
	"canopy/layout"
	"canopy/measure"
	"canopy/style"
)

// Paint walks root, painting every visited element into buf at the
// rectangle layout.Compute assigned it. rects must come from a Compute call
// against the same tree; elements missing from rects (shouldn't happen for
// a tree Compute actually visited) are skipped.
func Paint(buf *cellbuf.Buffer, root element.Element, rects map[element.ID]layout.Rect) {
	paintNode(buf, root, rects, 0, 0)
}

func paintNode(buf *cellbuf.Buffer, el element.Element, rects map[element.ID]layout.Rect, dx, dy float64) {
	st := el.GetStyle()
	if st.Display == style.DisplayNone {
		return
	}
	rect, ok := rects[el.ID()]
	if !ok {
		return
	}
	x, y, w, h := (rect.X + dx), (rect.Y + dy), rect.W, rect.H
	ix, iy, iw, ih := int(x), int(y), int(w), int(h)

	if st.BackgroundColor.IsSet() {
		buf.Fill(ix, iy, iw, ih, ' ', backgroundStyle(st))
	}

	contentX, contentY, contentW, contentH := ix, iy, iw, ih
	if st.HasBorder() {
		drawBorder(buf, st, ix, iy, iw, ih)
		contentX++
		contentY++
		contentW -= 2
		contentH -= 2
	}
	contentX += int(st.Padding.Left)
	contentY += int(st.Padding.Top)
	contentW -= int(st.Padding.Horizontal())
	contentH -= int(st.Padding.Vertical())
	if contentW < 0 {
		contentW = 0
	}
	if contentH < 0 {
		contentH = 0
	}

	if el.Kind() == element.KindText {
		paintText(buf, el, st, contentX, contentY, contentW, contentH)
		return
	}

	clip := st.OverflowX == style.OverflowHidden || st.OverflowY == style.OverflowHidden ||
		st.OverflowX == style.OverflowScroll || st.OverflowY == style.OverflowScroll
	if clip {
		buf.PushClip(contentX, contentY, contentW, contentH)
		defer buf.PopClip()
	}

	scrollX, scrollY := el.ScrollOffset()
	childDX, childDY := dx-float64(scrollX), dy-float64(scrollY)
	for _, c := range el.Children() {
		paintNode(buf, c, rects, childDX, childDY)
	}
}

func backgroundStyle(st style.Style) style.Style {
	return style.Style{BackgroundColor: st.BackgroundColor}
}

func paintText(buf *cellbuf.Buffer, el element.Element, st style.Style, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if el.IsSpans() {
		paintSpans(buf, el.Lines(), x, y, w, h)
		return
	}
	lines := measure.WrapLines(el.Text(), w, st.TextWrap)
	for i, line := range lines {
		if i >= h {
			break
		}
		buf.WriteString(x, y+i, line, st)
	}
}

func paintSpans(buf *cellbuf.Buffer, lines []element.Line, x, y, w, h int) {
	for i, line := range lines {
		if i >= h {
			break
		}
		cur := x
		remaining := w
		for _, span := range line {
			if remaining <= 0 {
				break
			}
			text := measure.Truncate(span.Text, remaining, style.TextWrapTruncateEnd)
			advanced := buf.WriteString(cur, y+i, text, span.Style)
			cur += advanced
			remaining -= advanced
		}
	}
}

func drawBorder(buf *cellbuf.Buffer, st style.Style, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g := style.Glyphs(st.BorderStyle)
	dim := st.BorderDim

	topSt := sideStyle(st, st.BorderTopColor, dim)
	rightSt := sideStyle(st, st.BorderRightColor, dim)
	bottomSt := sideStyle(st, st.BorderBottomColor, dim)
	leftSt := sideStyle(st, st.BorderLeftColor, dim)

	if st.BorderTop {
		buf.Set(x, y, g.TopLeft, topSt)
		for col := x + 1; col < x+w-1; col++ {
			buf.Set(col, y, g.Horizontal, topSt)
		}
		if w > 1 {
			buf.Set(x+w-1, y, g.TopRight, topSt)
		}
	}
	if st.BorderBottom && h > 1 {
		by := y + h - 1
		buf.Set(x, by, g.BottomLeft, bottomSt)
		for col := x + 1; col < x+w-1; col++ {
			buf.Set(col, by, g.Horizontal, bottomSt)
		}
		if w > 1 {
			buf.Set(x+w-1, by, g.BottomRight, bottomSt)
		}
	}
	if st.BorderLeft {
		for row := y + 1; row < y+h-1; row++ {
			buf.Set(x, row, g.Vertical, leftSt)
		}
	}
	if st.BorderRight && w > 1 {
		for row := y + 1; row < y+h-1; row++ {
			buf.Set(x+w-1, row, g.Vertical, rightSt)
		}
	}
}

func sideStyle(st style.Style, color style.Color, dim bool) style.Style {
	c := color
	if !c.IsSet() {
		c = st.BorderColor
	}
	if !c.IsSet() {
		c = st.Color
	}
	return style.Style{Color: c, Dim: dim}
}
