package rebound

import "strconv"

// Handle identifies a slot in an Arena. It packs the slot index together
// with a generation counter so that a handle kept around after the slot was
// removed and reused can not be confused with the new occupant.
//
// The zero Handle is never returned by an Arena and is always invalid.
type Handle uint64

type slotIndex uint32
type generation uint32

const slotIndexBits = 32

func makeHandle(idx slotIndex, gen generation) Handle {
	return Handle(uint64(gen)<<slotIndexBits | uint64(idx))
}

func (h Handle) index() slotIndex {
	return slotIndex(uint32(h))
}

func (h Handle) generation() generation {
	return generation(uint32(uint64(h) >> slotIndexBits))
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// Valid returns false for the zero Handle.
func (h Handle) Valid() bool {
	return h > 0
}
