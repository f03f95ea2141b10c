package rebound

import "iter"

// Arena is a slot based container addressed by generational Handles.
//
// Removing a value bumps the generation of its slot, so handles to removed
// values go stale instead of silently pointing at whatever reuses the slot.
// Slots are reused in LIFO order.
type Arena[T any] struct {
	slots []slot[T]
	free  []slotIndex
	count int
}

type slot[T any] struct {
	value T
	gen   generation
	live  bool
}

// Insert stores value and returns a fresh Handle for it.
func (a *Arena[T]) Insert(value T) Handle {
	var idx slotIndex

	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		// generations start at 1 so that the zero Handle stays invalid
		a.slots = append(a.slots, slot[T]{gen: 1})
		idx = slotIndex(len(a.slots) - 1)
	}

	s := &a.slots[idx]
	s.value = value
	s.live = true

	a.count += 1

	return makeHandle(idx, s.gen)
}

func (a *Arena[T]) slotOf(h Handle) *slot[T] {
	idx := h.index()
	if int(idx) >= len(a.slots) {
		return nil
	}

	s := &a.slots[idx]
	if !s.live || s.gen != h.generation() {
		return nil
	}

	return s
}

// Get returns a pointer to the value identified by h, or nil if h is stale
// or was never issued by this Arena.
func (a *Arena[T]) Get(h Handle) *T {
	s := a.slotOf(h)
	if s == nil {
		return nil
	}

	return &s.value
}

// Contains returns true if h identifies a live value.
func (a *Arena[T]) Contains(h Handle) bool {
	return a.slotOf(h) != nil
}

// Remove deletes the value identified by h and returns it.
// The slot generation is bumped, invalidating h and all of its copies.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	s := a.slotOf(h)
	if s == nil {
		var tZero T
		return tZero, false
	}

	value := s.value

	var tZero T
	s.value = tZero
	s.live = false
	s.gen += 1

	a.free = append(a.free, h.index())
	a.count -= 1

	return value, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.count
}

// All iterates over all live values in slot order.
// The Arena must not be modified during iteration.
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for idx := range a.slots {
			s := &a.slots[idx]
			if !s.live {
				continue
			}

			if !yield(makeHandle(slotIndex(idx), s.gen), &s.value) {
				return
			}
		}
	}
}
