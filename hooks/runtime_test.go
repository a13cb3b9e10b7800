package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy/terminal"
)

func TestUseStatePreservesAcrossRenders(t *testing.T) {
	r := New()

	r.BeginRender()
	count := UseState(r, func() int { return 0 })
	r.EndRender()
	count.Set(5)

	r.BeginRender()
	same := UseState(r, func() int { return 999 })
	r.EndRender()

	assert.Same(t, count, same)
	assert.Equal(t, 5, same.Get())
}

func TestSignalSetAlwaysRequestsRender(t *testing.T) {
	r := New()
	r.BeginRender()
	sig := UseState(r, func() int { return 1 })
	r.EndRender()

	drain(r)
	sig.Set(1)
	assert.True(t, requested(r))

	drain(r)
	sig.Set(2)
	assert.True(t, requested(r))
}

func TestSignalSetSilentDoesNotRequestRender(t *testing.T) {
	r := New()
	r.BeginRender()
	sig := UseState(r, func() int { return 1 })
	r.EndRender()

	drain(r)
	sig.SetSilent(2)
	assert.False(t, requested(r))
	assert.Equal(t, 2, sig.Get())
}

func TestUseEffectRunsOnceForStableDeps(t *testing.T) {
	r := New()
	runs := 0

	render := func(dep int) {
		r.BeginRender()
		UseEffect(r, func() func() { runs++; return nil }, dep)
		r.EndRender()
		r.RunEffects()
	}

	render(1)
	assert.Equal(t, 1, runs)
	render(1)
	assert.Equal(t, 1, runs, "effect should not rerun for unchanged deps")
	render(2)
	assert.Equal(t, 2, runs, "effect should rerun when deps change")
}

func TestUseEffectRunsCleanupBeforeNextRun(t *testing.T) {
	r := New()
	var cleanedUp bool

	render := func(dep int) {
		r.BeginRender()
		UseEffect(r, func() func() {
			return func() { cleanedUp = true }
		}, dep)
		r.EndRender()
		r.RunEffects()
	}

	render(1)
	assert.False(t, cleanedUp)
	render(2)
	assert.True(t, cleanedUp)
}

func TestUseEffectOnceRunsOnlyOnFirstRender(t *testing.T) {
	r := New()
	runs := 0

	render := func() {
		r.BeginRender()
		UseEffectOnce(r, func() func() { runs++; return nil })
		r.EndRender()
		r.RunEffects()
	}

	render()
	assert.Equal(t, 1, runs)
	render()
	assert.Equal(t, 1, runs, "UseEffectOnce should not rerun on later renders")
	render()
	assert.Equal(t, 1, runs, "UseEffectOnce should not rerun on later renders")
}

func TestUseEffectOnceConsumesExactlyOneSlotEveryRender(t *testing.T) {
	r := New()
	var seen int

	render := func() {
		r.BeginRender()
		UseEffectOnce(r, func() func() { return nil })
		state := UseState(r, func() int { return 7 })
		UseEffect(r, func() func() { seen++; return nil }, state.Get())
		r.EndRender()
		r.RunEffects()
	}

	render()
	render()
	render()

	require.Equal(t, 1, seen, "the trailing hook's slot must stay stable across renders")
}

func TestUseStateAndUseEffectShareSlotCursorCorrectly(t *testing.T) {
	r := New()
	var seenA, seenB int

	render := func() {
		r.BeginRender()
		a := UseState(r, func() int { return 10 })
		UseEffect(r, func() func() { seenA++; return nil }, a.Get())
		b := UseState(r, func() int { return 20 })
		UseEffect(r, func() func() { seenB++; return nil }, b.Get())
		r.EndRender()
		r.RunEffects()
	}

	render()
	render()

	require.Equal(t, 1, seenA)
	require.Equal(t, 1, seenB)
}

func TestDispatchKeyInvokesHandlersInOrder(t *testing.T) {
	r := New()
	var order []int

	r.BeginRender()
	UseInput(r, func(terminal.KeyEvent) { order = append(order, 1) })
	UseInput(r, func(terminal.KeyEvent) { order = append(order, 2) })
	r.EndRender()

	r.DispatchKey(terminal.KeyEvent{Key: terminal.KeyEnter})
	assert.Equal(t, []int{1, 2}, order)
	assert.True(t, requested(r))
}

func TestMouseEnabledOnlyWhenHandlerRegisteredThisFrame(t *testing.T) {
	r := New()

	r.BeginRender()
	assert.False(t, r.MouseEnabled())
	UseMouse(r, func(terminal.MouseEvent) {})
	assert.True(t, r.MouseEnabled())

	r.BeginRender()
	assert.False(t, r.MouseEnabled(), "mouse handler registration does not persist across renders")
}

func requested(r *Runtime) bool {
	select {
	case <-r.RenderRequests():
		return true
	default:
		return false
	}
}

func drain(r *Runtime) {
	for requested(r) {
	}
}
