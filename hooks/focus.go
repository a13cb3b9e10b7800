package hooks

import "sync"

// FocusOptions configures a UseFocus registration.
type FocusOptions struct {
	AutoFocus bool
	IsActive  bool
	CustomID  string
}

// DefaultFocusOptions returns options for a normal, not-auto-focused,
// active focusable element.
func DefaultFocusOptions() FocusOptions {
	return FocusOptions{IsActive: true}
}

// FocusState is what UseFocus returns: whether this call site currently
// holds focus.
type FocusState struct {
	IsFocused bool
}

type focusEntry struct {
	id       uint64
	customID string
	isActive bool
}

// FocusManager tracks an ordered roster of focusable ids, rebuilt every
// render, with a focused index that persists across renders.
type FocusManager struct {
	mu           sync.Mutex
	elements     []focusEntry
	focusedIndex int
	hasFocus     bool
}

func newFocusManager() *FocusManager {
	return &FocusManager{focusedIndex: -1}
}

// clear empties the roster at the start of each render; the focused index
// itself is left alone so focus survives across the rebuild.
func (fm *FocusManager) clear() {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	fm.elements = fm.elements[:0]
}

func (fm *FocusManager) register(id uint64, opts FocusOptions) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	fm.elements = append(fm.elements, focusEntry{id: id, customID: opts.CustomID, isActive: opts.IsActive})
	if opts.AutoFocus && !fm.hasFocus && opts.IsActive {
		fm.focusedIndex = len(fm.elements) - 1
		fm.hasFocus = true
	}
}

func (fm *FocusManager) isFocused(id uint64) bool {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	if !fm.hasFocus || fm.focusedIndex < 0 || fm.focusedIndex >= len(fm.elements) {
		return false
	}
	return fm.elements[fm.focusedIndex].id == id
}

func (fm *FocusManager) activeIndices() []int {
	indices := make([]int, 0, len(fm.elements))
	for i, e := range fm.elements {
		if e.isActive {
			indices = append(indices, i)
		}
	}
	return indices
}

// FocusNext moves focus to the next active element, cyclically.
func (fm *FocusManager) FocusNext() {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	active := fm.activeIndices()
	if len(active) == 0 {
		return
	}
	cur := fm.focusedIndex
	pos := 0
	for i, idx := range active {
		if idx == cur {
			pos = i
			break
		}
	}
	fm.focusedIndex = active[(pos+1)%len(active)]
	fm.hasFocus = true
}

// FocusPrevious moves focus to the previous active element, cyclically.
func (fm *FocusManager) FocusPrevious() {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	active := fm.activeIndices()
	if len(active) == 0 {
		return
	}
	cur := fm.focusedIndex
	pos := 0
	for i, idx := range active {
		if idx == cur {
			pos = i
			break
		}
	}
	if pos == 0 {
		pos = len(active)
	}
	fm.focusedIndex = active[pos-1]
	fm.hasFocus = true
}

// Focus moves focus to the active element registered with the given custom
// id, if any.
func (fm *FocusManager) Focus(customID string) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	for i, e := range fm.elements {
		if e.customID == customID && e.isActive {
			fm.focusedIndex = i
			fm.hasFocus = true
			return
		}
	}
}

// UseFocus registers the call site as focusable for this render and
// reports whether it currently holds focus. The id itself is stable across
// renders (stored in a signal slot); the roster entry is rebuilt every
// render.
func UseFocus(r *Runtime, opts FocusOptions) FocusState {
	idSig := UseState(r, nextFocusID)
	id := idSig.Peek()
	r.focus.register(id, opts)
	return FocusState{IsFocused: r.focus.isFocused(id)}
}

// UseFocusManager returns the runtime's shared focus manager, for
// components that drive focus navigation (e.g. a Tab key handler).
func UseFocusManager(r *Runtime) *FocusManager { return r.focus }
