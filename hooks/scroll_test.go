package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollClampsToContentExtent(t *testing.T) {
	r := New()
	r.BeginRender()
	h := UseScroll(r)
	r.EndRender()

	h.SetContentSize(100, 50)
	h.SetViewportSize(80, 10)

	assert.Equal(t, 0, h.Get().OffsetY)
	assert.Equal(t, 40, h.Get().maxOffsetY())

	h.ScrollDown(100)
	assert.Equal(t, 40, h.Get().OffsetY, "should clamp to max offset")

	h.ScrollUp(100)
	assert.Equal(t, 0, h.Get().OffsetY)
}

func TestScrollToItemKeepsItemVisible(t *testing.T) {
	r := New()
	r.BeginRender()
	h := UseScroll(r)
	r.EndRender()

	h.SetContentSize(100, 50)
	h.SetViewportSize(80, 10)

	h.ScrollToItem(15)
	assert.Equal(t, 6, h.Get().OffsetY)

	h.ScrollToItem(3)
	assert.Equal(t, 3, h.Get().OffsetY)
}

func TestScrollPercentAndVisibleRange(t *testing.T) {
	r := New()
	r.BeginRender()
	h := UseScroll(r)
	r.EndRender()

	h.SetContentSize(100, 50)
	h.SetViewportSize(80, 10)

	assert.Equal(t, 0.0, h.Get().ScrollPercentY())
	h.ScrollToBottom()
	assert.Equal(t, 1.0, h.Get().ScrollPercentY())

	start, end := h.Get().VisibleRange()
	assert.Equal(t, 40, start)
	assert.Equal(t, 50, end)
}

func TestScrollPersistsAcrossRenders(t *testing.T) {
	r := New()
	r.BeginRender()
	h1 := UseScroll(r)
	r.EndRender()
	h1.SetContentSize(100, 50)
	h1.SetViewportSize(80, 10)
	h1.ScrollDown(5)

	r.BeginRender()
	h2 := UseScroll(r)
	r.EndRender()

	assert.Equal(t, 5, h2.Get().OffsetY)
}
