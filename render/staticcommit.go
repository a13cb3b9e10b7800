package render

import (
	"canopy/cellbuf"
	"canopy/element"
	"canopy/layout"
)

// ExtractStatic walks root for is_static elements with at least one child
// (an empty Static element means its items were already committed in a
// prior frame) and returns each one rendered to lines of text with
// embedded SGR escapes (one per non-blank row), in document order.
func ExtractStatic(root element.Element, width int) []string {
	var lines []string
	extractRecursive(root, width, &lines)
	return lines
}

func extractRecursive(el element.Element, width int, lines *[]string) {
	if el.GetStyle().IsStatic && len(el.Children()) > 0 {
		rects := layout.Compute(el, width, staticRenderHeight)
		w, h := boundsOf(el, rects, width)
		buf := cellbuf.New(w, h)
		Paint(buf, el, rects)
		for row := 0; row < h; row++ {
			if buf.RowBlank(row) {
				continue
			}
			*lines = append(*lines, buf.RenderRow(row))
		}
	}
	for _, c := range el.Children() {
		extractRecursive(c, width, lines)
	}
}

// staticRenderHeight bounds the throwaway layout pass used only to size a
// static element's own rendered output; the element's own computed height
// is read back from the result, so this just needs to be "large enough".
const staticRenderHeight = 4096

func boundsOf(el element.Element, rects map[element.ID]layout.Rect, fallbackW int) (int, int) {
	r, ok := rects[el.ID()]
	if !ok {
		return fallbackW, 1
	}
	w, h := int(r.W), int(r.H)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// FilterStatic returns a copy of root with every is_static subtree removed,
// leaving only the dynamic content that the normal per-frame paint loop
// re-renders.
func FilterStatic(el element.Element) element.Element {
	children := el.Children()
	kept := make([]element.Element, 0, len(children))
	for _, c := range children {
		if c.GetStyle().IsStatic {
			continue
		}
		kept = append(kept, FilterStatic(c))
	}
	return el.WithChildren(kept...)
}
