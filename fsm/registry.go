package fsm

import "github.com/brinkfield/loom"

// Registry maps human-readable state names to the integer ids
// StateMachine and State operate on, backed by the root package's
// capacity-bounded Cache rather than a second hand-rolled map.
type Registry struct {
	names loom.Cache[int]
}

// NewRegistry builds a registry bounded to capacity distinct names.
func NewRegistry(capacity int) *Registry {
	return &Registry{names: loom.FactoryNewCache[int](capacity)}
}

// Register binds name to id. Registering the same name twice with a
// different id is rejected; re-registering with the same id is a no-op
// success, since it changes nothing observable.
func (r *Registry) Register(name string, id int) error {
	if existing, ok := r.names.GetIndex(name); ok {
		if *r.names.GetItem(existing) == id {
			return nil
		}
		return DuplicateNameError{Name: name}
	}
	_, err := r.names.Register(name, id)
	return err
}

// IDFor resolves name to its registered id.
func (r *Registry) IDFor(name string) (int, bool) {
	index, ok := r.names.GetIndex(name)
	if !ok {
		return 0, false
	}
	return *r.names.GetItem(index), true
}
