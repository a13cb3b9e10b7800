// Package element implements the immutable styled tree the rest of canopy
// operates on: containers, text leaves, and the root. Trees are rebuilt
// wholesale every frame; stability across frames comes from the hook slot
// table (package hooks) and from optional reconciliation keys on children,
// not from mutating a retained tree.
package element

import (
	"sync/atomic"

	"canopy/style"
)

// Kind is the element's role in the tree.
type Kind int

const (
	KindRoot Kind = iota
	KindContainer
	KindText
)

// ID is a process-unique, monotonically allocated element identifier.
// The reserved value Root is used exactly once per frame, for the frame's
// root element.
type ID uint64

// Root is the reserved id of the frame's root element.
const Root ID = 0

var nextID uint64 = 1

// NewID allocates the next process-unique element id.
func NewID() ID {
	return ID(atomic.AddUint64(&nextID, 1))
}

// Element is an immutable node in the tree built by a render callback.
// A leaf has either Text or Spans set, never both; a KindText element has
// no children.
type Element struct {
	id       ID
	kind     Kind
	style    Style
	children []Element

	text  string
	lines []Line // lazy sequence of styled lines, mutually exclusive with text

	scrollOffsetX, scrollOffsetY int
	key                          string
}

// Style is re-exported so callers need not import the style package
// directly for the common case; it is an alias, not a copy.
type Style = style.Style

// ID returns the element's process-unique id.
func (e Element) ID() ID { return e.id }

// Kind returns the element's kind.
func (e Element) Kind() Kind { return e.kind }

// GetStyle returns the element's style value.
func (e Element) GetStyle() Style { return e.style }

// Children returns the element's ordered children. The returned slice must
// not be mutated by callers.
func (e Element) Children() []Element { return e.children }

// Text returns the plain-text content, if any.
func (e Element) Text() string { return e.text }

// IsSpans reports whether this leaf carries styled spans rather than
// plain text.
func (e Element) IsSpans() bool { return len(e.lines) > 0 }

// Lines returns the styled-span lines, if any.
func (e Element) Lines() []Line { return e.lines }

// ScrollOffset returns the element's (x, y) scroll offset.
func (e Element) ScrollOffset() (int, int) { return e.scrollOffsetX, e.scrollOffsetY }

// Key returns the element's reconciliation key, or "" if unset.
func (e Element) Key() string { return e.key }
