package fsm

import "fmt"

// UnknownStateError reports a lookup or SetInitialState call against a
// state id never installed on the machine via AddState.
type UnknownStateError struct {
	StateID int
}

func (e UnknownStateError) Error() string {
	return fmt.Sprintf("fsm: unknown state id %d", e.StateID)
}

// DuplicateNameError reports a Registry.Register call for a name
// already bound to a different id.
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("fsm: name %q already registered", e.Name)
}
