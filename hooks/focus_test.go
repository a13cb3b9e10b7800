package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseFocusAutoFocusesFirstRegistrant(t *testing.T) {
	r := New()
	r.BeginRender()
	first := UseFocus(r, FocusOptions{IsActive: true, AutoFocus: true})
	second := UseFocus(r, FocusOptions{IsActive: true})
	r.EndRender()

	assert.True(t, first.IsFocused)
	assert.False(t, second.IsFocused)
}

func TestFocusNextCyclesActiveElements(t *testing.T) {
	fm := newFocusManager()
	id1 := nextFocusID()
	id2 := nextFocusID()
	id3 := nextFocusID()

	fm.register(id1, FocusOptions{IsActive: true, AutoFocus: true})
	fm.register(id2, FocusOptions{IsActive: true})
	fm.register(id3, FocusOptions{IsActive: true})

	assert.True(t, fm.isFocused(id1))
	fm.FocusNext()
	assert.True(t, fm.isFocused(id2))
	fm.FocusNext()
	assert.True(t, fm.isFocused(id3))
	fm.FocusNext()
	assert.True(t, fm.isFocused(id1), "should wrap around")

	fm.FocusPrevious()
	assert.True(t, fm.isFocused(id3))
}

func TestFocusSkipsInactiveElements(t *testing.T) {
	fm := newFocusManager()
	id1 := nextFocusID()
	id2 := nextFocusID()
	id3 := nextFocusID()

	fm.register(id1, FocusOptions{IsActive: true, AutoFocus: true})
	fm.register(id2, FocusOptions{IsActive: false})
	fm.register(id3, FocusOptions{IsActive: true})

	fm.FocusNext()
	assert.True(t, fm.isFocused(id3), "should skip the inactive element")
}

func TestFocusByCustomID(t *testing.T) {
	fm := newFocusManager()
	id1 := nextFocusID()
	id2 := nextFocusID()

	fm.register(id1, FocusOptions{IsActive: true, CustomID: "first", AutoFocus: true})
	fm.register(id2, FocusOptions{IsActive: true, CustomID: "second"})

	fm.Focus("second")
	assert.True(t, fm.isFocused(id2))
}

func TestFocusPersistsIndexAcrossRenders(t *testing.T) {
	r := New()

	r.BeginRender()
	UseFocus(r, FocusOptions{IsActive: true, AutoFocus: true})
	UseFocus(r, FocusOptions{IsActive: true})
	r.EndRender()
	r.focus.FocusNext()

	r.BeginRender()
	first := UseFocus(r, FocusOptions{IsActive: true})
	second := UseFocus(r, FocusOptions{IsActive: true})
	r.EndRender()

	assert.False(t, first.IsFocused)
	assert.True(t, second.IsFocused, "focused index (1) carries over, landing on the same call site")
}
