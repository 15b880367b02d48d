package fsm

import "fmt"

// StateMachine owns a set of states and drives transitions between
// them: it ticks the active state's Update every frame, and when that
// Update signals it is willing to yield, evaluates transition
// candidates in insertion order.
type StateMachine[O Orientable] struct {
	name          string
	states        []State[O]
	stateIndex    map[int]int
	current       State[O]
	framesInState uint32
}

// NewStateMachine builds an empty machine; states are installed with AddState.
func NewStateMachine[O Orientable](name string) *StateMachine[O] {
	return &StateMachine[O]{name: name, stateIndex: make(map[int]int)}
}

// AddState installs state, recording its id->index slot and setting
// this machine as its non-owning parent. Installing two states with
// the same id is undefined; the later call wins the index slot.
func (m *StateMachine[O]) AddState(state State[O]) {
	m.stateIndex[state.ID()] = len(m.states)
	m.states = append(m.states, state)
	state.SetParent(m)
}

// SetInitialState makes the state registered under id current without
// running Enter/Leave, and resets the frame counter. Setting an
// unregistered id is fatal.
func (m *StateMachine[O]) SetInitialState(id int) {
	idx, ok := m.stateIndex[id]
	if !ok {
		panic(UnknownStateError{StateID: id})
	}
	m.current = m.states[idx]
	m.framesInState = 0
}

// SwitchCurrentState leaves the current state, enters target, makes
// target current, and resets the frame counter. Switching to a state
// not installed on this machine is undefined.
func (m *StateMachine[O]) SwitchCurrentState(owner O, target State[O]) {
	from := m.current
	if from != nil {
		from.Leave(owner, target.ID())
	}
	fromID := -1
	if from != nil {
		fromID = from.ID()
	}
	target.Enter(owner, fromID)
	m.current = target
	m.framesInState = 0
}

// Current returns the currently active state, or nil before any
// SetInitialState call.
func (m *StateMachine[O]) Current() State[O] { return m.current }

// FramesInState returns the number of updates since the last
// successful transition; 0 immediately after SetInitialState or
// SwitchCurrentState.
func (m *StateMachine[O]) FramesInState() uint32 { return m.framesInState }

// Name reports "machineName -> currentStateName (id)", descending
// through any nested NodeState's own active-child chain.
func (m *StateMachine[O]) Name() string {
	if m.current == nil {
		return m.name
	}
	if chained, ok := m.current.(interface{ ChainName() string }); ok {
		return fmt.Sprintf("%s -> %s", m.name, chained.ChainName())
	}
	return fmt.Sprintf("%s -> %s (%d)", m.name, m.current.Name(), m.current.ID())
}

// Update ticks the current state once. If it signals willingness to
// yield, transition candidates are evaluated. Unless a transition
// fired, the frame counter advances. Returns whether a transition
// fired this tick.
func (m *StateMachine[O]) Update(owner O) bool {
	if m.current == nil {
		return false
	}
	if m.current.Update(owner, m.framesInState) {
		if m.attemptTransition(owner) {
			return true
		}
	}
	m.framesInState++
	return false
}

// attemptTransition scans states in insertion order for the first one
// transitionable from the current state whose IsPossible returns a
// definite orientation, switches to it, and writes that orientation
// into the owner.
func (m *StateMachine[O]) attemptTransition(owner O) bool {
	for _, s := range m.states {
		if !s.TransitionableFrom().Test(m.current.ID()) {
			continue
		}
		orient := s.IsPossible(owner)
		if orient != Unspecified {
			owner.SetOrientation(orient)
			m.SwitchCurrentState(owner, s)
			return true
		}
	}
	return false
}
