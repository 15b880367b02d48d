package fsm

import "github.com/TheBitDrifter/mask"

// StateMarker is a compact bitset over state ids, declaring the set of
// source states a given state may be entered from. It wraps
// mask.Mask — a StateMarker is exactly a mask sized to the state-id
// range, so there is no reason to hand-roll a second []uint64 bitset
// alongside the one the root package already depends on.
type StateMarker struct {
	bits mask.Mask
}

// NewStateMarker builds a marker with every id in trueStates set.
func NewStateMarker(trueStates ...int) StateMarker {
	var m StateMarker
	for _, id := range trueStates {
		m.Toggle(id)
	}
	return m
}

// Test reports whether id is set.
func (m StateMarker) Test(id int) bool {
	var probe mask.Mask
	probe.Mark(uint32(id))
	return m.bits.ContainsAll(probe)
}

// Toggle flips id's bit.
func (m *StateMarker) Toggle(id int) {
	var probe mask.Mask
	probe.Mark(uint32(id))
	if m.bits.ContainsAll(probe) {
		m.bits.Unmark(uint32(id))
	} else {
		m.bits.Mark(uint32(id))
	}
}
