package hooks

import "canopy/terminal"

// UseInput registers handler to receive every key event delivered during
// this frame's lifetime. Registration does not persist: a component that
// stops calling UseInput stops receiving events on the very next render.
func UseInput(r *Runtime, handler func(terminal.KeyEvent)) {
	r.mu.Lock()
	r.inputHandlers = append(r.inputHandlers, handler)
	r.mu.Unlock()
}

// UseMouse registers handler to receive every mouse event delivered during
// this frame's lifetime, and marks mouse capture as wanted for this frame.
// Mouse capture is enabled only when at least one mouse handler is
// registered for the current frame.
func UseMouse(r *Runtime, handler func(terminal.MouseEvent)) {
	r.mu.Lock()
	r.mouseHandlers = append(r.mouseHandlers, handler)
	r.mouseEnabled = true
	r.mu.Unlock()
}
