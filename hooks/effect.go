package hooks

// UseEffect registers fn to run after this frame's paint iff deps differ
// from the previous render's (or this is the slot's first render). fn may
// return a cleanup, run before the next invocation or never if the effect
// never fires again. deps is hashed as a whole with xxhash rather than
// compared element-by-element.
func UseEffect(r *Runtime, fn func() func(), deps ...any) {
	hash := hashDeps(deps)

	r.mu.Lock()
	idx := r.cursor
	r.cursor++

	var slot *effectSlot
	var shouldRun bool
	if idx < len(r.slots) {
		slot = r.slots[idx].(*effectSlot)
		shouldRun = !slot.known || slot.hash != hash
	} else {
		slot = &effectSlot{}
		r.slots = append(r.slots, slot)
		shouldRun = true
	}

	if shouldRun {
		r.pending = append(r.pending, pendingEffect{slot: idx, hash: hash, run: fn})
	}
	r.mu.Unlock()
}

// UseEffectOnce registers fn to run after the first frame only, with no
// dependency comparison on later renders. An empty dependency list always
// hashes to 0, so this is UseEffect with no deps: the effect slot's stored
// hash matches on every later render and shouldRun stays false. Consumes
// exactly one cursor slot, on every render.
func UseEffectOnce(r *Runtime, fn func() func()) {
	UseEffect(r, fn)
}
