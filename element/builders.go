package element

import "canopy/style"

// NewRoot builds the frame's root element, with id Root and style.New().
// There must be exactly one per frame. Compute and Paint do not check
// KindRoot: Compute sizes whatever element it is given to the viewport on
// each axis its style leaves auto, then lays out its children like any
// other container's.
func NewRoot(children ...Element) Element {
	return Element{id: Root, kind: KindRoot, style: style.New(), children: children}
}

// Box builds a styled container with the given children. Direction,
// border, and padding are all just Style fields, so every shape of
// container is this one constructor plus a Style value.
func Box(st style.Style, children ...Element) Element {
	return Element{id: NewID(), kind: KindContainer, style: st, children: children}
}

// Row is sugar for Box with FlexDirection: Row.
func Row(children ...Element) Element {
	st := style.New()
	st.FlexDirection = style.Row
	return Box(st, children...)
}

// Column is sugar for Box with FlexDirection: Column.
func Column(children ...Element) Element {
	st := style.New()
	st.FlexDirection = style.Column
	return Box(st, children...)
}

// Text builds a plain-text leaf.
func Text(s string, st style.Style) Element {
	return Element{id: NewID(), kind: KindText, style: st, text: s}
}

// Spans builds a multi-line, multi-span text leaf.
func Spans(lines []Line, st style.Style) Element {
	return Element{id: NewID(), kind: KindText, style: st, lines: lines}
}

// WithKey returns a copy of e carrying the given reconciliation key.
func (e Element) WithKey(key string) Element {
	e.key = key
	return e
}

// WithScroll returns a copy of e with the given scroll offsets. Negative
// offsets are clamped to zero.
func (e Element) WithScroll(x, y int) Element {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	e.scrollOffsetX, e.scrollOffsetY = x, y
	return e
}

// WithChildren returns a copy of e with its children replaced.
func (e Element) WithChildren(children ...Element) Element {
	e.children = children
	return e
}
