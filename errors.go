package loom

import (
	"fmt"
	"reflect"
)

type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return fmt.Sprintf("storage is currently locked")
}

type EntityRelationError struct {
	child, parent Entity
}

func (e EntityRelationError) Error() string {
	return fmt.Sprintf("child (%v) already has parent %v", e.child, e.parent)
}

type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity: %T", e.Component)
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %T", e.Component)
}

// UnknownComponentError is returned by the Component Registry when a
// type that was never registered is looked up by id or by type.
type UnknownComponentError struct {
	Type reflect.Type
	ID   uint32
}

func (e UnknownComponentError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("unknown component type: %s", e.Type)
	}
	return fmt.Sprintf("unknown component id: %d", e.ID)
}

// MissingColumnError indicates an archetype was asked to emplace into,
// or move out of, a column it does not own. Surfacing during migration
// means the archetype mask and its live columns have desynchronized.
type MissingColumnError struct {
	ArchetypeID uint32
	ComponentID uint32
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf("archetype %d has no column for component %d", e.ArchetypeID, e.ComponentID)
}

// TypeMismatchError is returned when a value is written into a column
// allocated for a different type: Want is the column's type, Got the
// value's.
type TypeMismatchError struct {
	Want, Got reflect.Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: column holds %s, value is %s", e.Want, e.Got)
}

// IndexOutOfBoundsError is returned when a slot index is not less than
// the column/table length it indexes into.
type IndexOutOfBoundsError struct {
	Index, Len int
}

func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds (len %d)", e.Index, e.Len)
}

// UnknownStateError describes a state id with no registered state. No
// code in this package constructs it; the fsm package's StateMachine
// reports that condition with its own fsm.UnknownStateError.
type UnknownStateError struct {
	StateID int
}

func (e UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state id: %d", e.StateID)
}
