package loom

import (
	"sync"

	"github.com/TheBitDrifter/table"
)

// factory implements the factory pattern for loom components.
type factory struct{}

// Factory is the global factory instance for creating loom components.
var Factory factory

// NewStorage creates a new Storage instance with the given schema.
func (f factory) NewStorage(schema table.Schema) Storage {
	return newStorage(schema)
}

// NewQuery creates a new Query instance.
func (f factory) NewQuery() Query {
	return newQuery()
}

// NewCursor creates a new Cursor with the specified query and storage.
func (f factory) NewCursor(query QueryNode, storage Storage) *Cursor {
	return newCursor(query, storage)
}

// componentInstances holds the one AccessibleComponent minted per
// component id, so that every call to FactoryNewComponent[T] for the
// same T returns the same table.ElementType identity instead of a
// fresh one. Keyed by the Component Registry's id rather than
// reflect.Type directly, since that registry is already the thing
// deciding "has T been seen before."
var componentInstances sync.Map // uint32 -> any (AccessibleComponent[T])

// FactoryNewComponent creates the AccessibleComponent for type T,
// consulting the Component Registry (registry_components.go) to
// decide whether T has already been minted. The registry id, not a
// second ad hoc check, is what makes this one-shot-per-type: the
// first call for a given T registers it and builds its
// table.ElementType/Accessor, and every later call for that T
// resolves the same pair back out by id, so two call sites for the
// same component type always share one mask bit.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	id := RegisterComponent[T]()
	if cached, ok := componentInstances.Load(id); ok {
		return cached.(AccessibleComponent[T])
	}
	iden := table.FactoryNewElementType[T]()
	comp := AccessibleComponent[T]{
		Component: iden,
		Accessor:  table.FactoryNewAccessor[T](iden),
	}
	actual, _ := componentInstances.LoadOrStore(id, comp)
	return actual.(AccessibleComponent[T])
}

// FactoryNewCache creates a new Cache with the specified capacity.
func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
