// Package hooks implements a per-render slot runtime: a
// BeginRender -> use-hook* -> EndRender -> RunEffects cycle that gives
// stateful, effectful behaviour to an otherwise-stateless render callback,
// plus input/mouse dispatch, focus management, and a cross-thread
// render-request channel. Slots are addressed by call order, not by a
// dependency graph: slot n in render k+1 must correspond to slot n in
// render k, the same way every other call-order hook system works.
package hooks

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"canopy/terminal"
)

// depsHash is the stored fingerprint of an effect's dependency list.
type depsHash uint64

// hashDeps combines deps in order into a single fingerprint; an empty list
// hashes to 0 (effect fires once).
func hashDeps(deps []any) depsHash {
	if len(deps) == 0 {
		return 0
	}
	h := xxhash.New()
	for _, d := range deps {
		fmt.Fprintf(h, "%#v|", d)
	}
	return depsHash(h.Sum64())
}

type effectSlot struct {
	hash    depsHash
	known   bool
	cleanup func()
}

type pendingEffect struct {
	slot int
	hash depsHash
	run  func() func()
}

// Runtime is the per-component hook-slot table. The library currently has a
// single process-wide component (the application's render callback), so one
// Runtime suffices for an entire App.
type Runtime struct {
	mu sync.Mutex

	slots  []any
	cursor int

	pending []pendingEffect

	inputHandlers []func(terminal.KeyEvent)
	mouseHandlers []func(terminal.MouseEvent)
	mouseEnabled  bool

	focus *FocusManager

	renderRequest chan struct{}
}

// New returns an empty Runtime ready for its first BeginRender.
func New() *Runtime {
	return &Runtime{
		focus:         newFocusManager(),
		renderRequest: make(chan struct{}, 1),
	}
}

// BeginRender resets the slot cursor and clears the transient per-frame
// registrations (input/mouse handlers, mouse-enabled flag, focus roster).
// Slot storage itself (signals, effect records) persists across renders.
func (r *Runtime) BeginRender() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursor = 0
	r.inputHandlers = nil
	r.mouseHandlers = nil
	r.mouseEnabled = false
	r.focus.clear()
}

// EndRender marks the end of the use-hook* sequence for this frame. Hook
// call-order consistency is the caller's responsibility; this is a no-op
// checkpoint kept for symmetry with the begin/use/end/run cycle.
func (r *Runtime) EndRender() {}

// RunEffects runs cleanups for any effect whose dependency hash changed this
// render, then runs the new effect bodies, stashing their returned
// cleanups. Called once per frame after EndRender.
func (r *Runtime) RunEffects() {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, p := range pending {
		r.mu.Lock()
		slot := r.slots[p.slot].(*effectSlot)
		r.mu.Unlock()

		if slot.cleanup != nil {
			slot.cleanup()
		}
		cleanup := p.run()

		r.mu.Lock()
		slot.hash, slot.known, slot.cleanup = p.hash, true, cleanup
		r.mu.Unlock()
	}
}

// RequestRender signals that the world changed and a new frame should be
// painted. Safe to call from any goroutine; multiple requests between ticks
// coalesce into the single buffered slot.
func (r *Runtime) RequestRender() {
	select {
	case r.renderRequest <- struct{}{}:
	default:
	}
}

// RenderRequests returns the channel the event loop drains each tick.
func (r *Runtime) RenderRequests() <-chan struct{} { return r.renderRequest }

// MouseEnabled reports whether any component registered a mouse handler
// this render — the app enables terminal mouse capture only then.
func (r *Runtime) MouseEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mouseEnabled
}

// DispatchKey invokes every handler registered via UseInput this frame, in
// registration order, then requests a render. Runs on the render thread,
// never the event thread, so handlers may touch render-thread state
// freely.
func (r *Runtime) DispatchKey(ev terminal.KeyEvent) {
	r.mu.Lock()
	handlers := append([]func(terminal.KeyEvent){}, r.inputHandlers...)
	r.mu.Unlock()
	for _, h := range handlers {
		h(ev)
	}
	r.RequestRender()
}

// DispatchMouse invokes every handler registered via UseMouse this frame, in
// registration order, then requests a render.
func (r *Runtime) DispatchMouse(ev terminal.MouseEvent) {
	r.mu.Lock()
	handlers := append([]func(terminal.MouseEvent){}, r.mouseHandlers...)
	r.mu.Unlock()
	for _, h := range handlers {
		h(ev)
	}
	r.RequestRender()
}

// nextFocusID hands out process-wide unique focusable ids.
var focusIDCounter uint64

func nextFocusID() uint64 { return atomic.AddUint64(&focusIDCounter, 1) }
