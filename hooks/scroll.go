package hooks

// ScrollState is the scroll position and extent of a scrollable area. The
// offsets are fed to element.Element.WithScroll; render.Paint reads them to
// translate a scrollable subtree's children, while layout ignores them.
type ScrollState struct {
	OffsetX, OffsetY              int
	ContentWidth, ContentHeight   int
	ViewportWidth, ViewportHeight int
}

func (s ScrollState) maxOffsetY() int {
	if d := s.ContentHeight - s.ViewportHeight; d > 0 {
		return d
	}
	return 0
}

func (s ScrollState) maxOffsetX() int {
	if d := s.ContentWidth - s.ViewportWidth; d > 0 {
		return d
	}
	return 0
}

func (s ScrollState) clamp() ScrollState {
	if s.OffsetY > s.maxOffsetY() {
		s.OffsetY = s.maxOffsetY()
	}
	if s.OffsetX > s.maxOffsetX() {
		s.OffsetX = s.maxOffsetX()
	}
	return s
}

// CanScrollUp reports whether the viewport is scrolled away from the top.
func (s ScrollState) CanScrollUp() bool { return s.OffsetY > 0 }

// CanScrollDown reports whether there is more content below the viewport.
func (s ScrollState) CanScrollDown() bool { return s.OffsetY < s.maxOffsetY() }

// VisibleRange returns the [start, end) row range of content currently in
// the viewport.
func (s ScrollState) VisibleRange() (int, int) {
	start := s.OffsetY
	end := s.OffsetY + s.ViewportHeight
	if end > s.ContentHeight {
		end = s.ContentHeight
	}
	return start, end
}

// ScrollPercentY returns the vertical scroll position as a 0..1 fraction.
func (s ScrollState) ScrollPercentY() float64 {
	max := s.maxOffsetY()
	if max == 0 {
		return 0
	}
	return float64(s.OffsetY) / float64(max)
}

// ScrollHandle is the mutable handle UseScroll returns: a signal-backed
// ScrollState plus the scroll operations a component wires to key or mouse
// handlers.
type ScrollHandle struct {
	state *Signal[ScrollState]
}

// Get returns the current scroll state.
func (h ScrollHandle) Get() ScrollState { return h.state.Get() }

// SetContentSize updates the scrollable content's extent, clamping the
// current offset if it now overshoots.
func (h ScrollHandle) SetContentSize(width, height int) {
	h.state.Update(func(s ScrollState) ScrollState {
		s.ContentWidth, s.ContentHeight = width, height
		return s.clamp()
	})
}

// SetViewportSize updates the visible viewport's extent, clamping the
// current offset if it now overshoots.
func (h ScrollHandle) SetViewportSize(width, height int) {
	h.state.Update(func(s ScrollState) ScrollState {
		s.ViewportWidth, s.ViewportHeight = width, height
		return s.clamp()
	})
}

// ScrollUp moves the vertical offset up by lines, clamped at zero.
func (h ScrollHandle) ScrollUp(lines int) {
	h.state.Update(func(s ScrollState) ScrollState {
		s.OffsetY -= lines
		if s.OffsetY < 0 {
			s.OffsetY = 0
		}
		return s
	})
}

// ScrollDown moves the vertical offset down by lines, clamped at the
// content's max offset.
func (h ScrollHandle) ScrollDown(lines int) {
	h.state.Update(func(s ScrollState) ScrollState {
		s.OffsetY += lines
		return s.clamp()
	})
}

// ScrollToTop resets the vertical offset to zero.
func (h ScrollHandle) ScrollToTop() {
	h.state.Update(func(s ScrollState) ScrollState {
		s.OffsetY = 0
		return s
	})
}

// ScrollToBottom moves the vertical offset to the content's max offset.
func (h ScrollHandle) ScrollToBottom() {
	h.state.Update(func(s ScrollState) ScrollState {
		s.OffsetY = s.maxOffsetY()
		return s
	})
}

// PageUp scrolls up by one viewport height (or one line, if the viewport
// height is unset).
func (h ScrollHandle) PageUp() {
	s := h.Get()
	lines := s.ViewportHeight
	if lines < 1 {
		lines = 1
	}
	h.ScrollUp(lines)
}

// PageDown scrolls down by one viewport height (or one line, if the
// viewport height is unset).
func (h ScrollHandle) PageDown() {
	s := h.Get()
	lines := s.ViewportHeight
	if lines < 1 {
		lines = 1
	}
	h.ScrollDown(lines)
}

// ScrollToItem nudges the offset just far enough that item index becomes
// visible, like a list box keeping the selection in view.
func (h ScrollHandle) ScrollToItem(index int) {
	h.state.Update(func(s ScrollState) ScrollState {
		if index < s.OffsetY {
			s.OffsetY = index
		} else if s.ViewportHeight > 0 && index >= s.OffsetY+s.ViewportHeight {
			s.OffsetY = index - (s.ViewportHeight - 1)
			if s.OffsetY < 0 {
				s.OffsetY = 0
			}
		}
		return s.clamp()
	})
}

// UseScroll returns the stable ScrollHandle for this call site, backed by a
// Signal slot so scroll position survives across renders and every update
// also requests a repaint.
func UseScroll(r *Runtime) ScrollHandle {
	sig := UseState(r, func() ScrollState { return ScrollState{} })
	return ScrollHandle{state: sig}
}
