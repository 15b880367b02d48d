package loom

import (
	"reflect"
	"sync"

	"github.com/kamstrup/intmap"
)

// componentRegistry assigns a dense, stable id in [1, MaxID] to each
// component type the first time it is seen, and recovers the type back
// from the id afterwards. Registration is idempotent: registering the
// same type twice returns the same id, mirroring AlreadyAllocated's
// "recoverable no-op" policy rather than erroring.
type componentRegistry struct {
	mu     sync.Mutex
	byType map[reflect.Type]uint32
	byID   *intmap.Map[uint32, reflect.Type]
	nextID uint32
}

var globalComponentRegistry = newComponentRegistry()

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{
		byType: make(map[reflect.Type]uint32),
		byID:   intmap.New[uint32, reflect.Type](64),
	}
}

func (r *componentRegistry) register(t reflect.Type) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byType[t]; ok {
		return id
	}
	r.nextID++
	id := r.nextID
	r.byType[t] = id
	r.byID.Put(id, t)
	return id
}

func (r *componentRegistry) typeOf(id uint32) (reflect.Type, bool) {
	return r.byID.Get(id)
}

func (r *componentRegistry) maxID() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextID
}

// RegisterComponent assigns T a dense positive id the first time it is
// called for that type, and returns the same id on every later call.
// It is the runtime-registry variant of the component registry (the
// language has no recursive/variadic generics for a compile-time one).
func RegisterComponent[T any]() uint32 {
	return globalComponentRegistry.register(reflect.TypeFor[T]())
}

// IDOf is an alias for RegisterComponent, read at call sites that only
// want the id and don't care whether this is the first registration.
func IDOf[T any]() uint32 {
	return RegisterComponent[T]()
}

// TypeOf recovers the component type registered under id. The second
// return value is false for an id that was never assigned, the
// UnknownComponent condition surfaced as a plain bool here and as
// UnknownComponentError by callers that need to fail loudly (see
// MustTypeOf).
func TypeOf(id uint32) (reflect.Type, bool) {
	return globalComponentRegistry.typeOf(id)
}

// MustTypeOf is TypeOf but panics with UnknownComponentError, for
// callers (dump routines, debug tooling) that treat an unregistered id
// as a fatal registry/archetype desynchronization.
func MustTypeOf(id uint32) reflect.Type {
	t, ok := TypeOf(id)
	if !ok {
		panic(UnknownComponentError{ID: id})
	}
	return t
}

// MaxID returns the highest component id assigned so far; bitsets
// sized to MaxID() are large enough to hold every registered
// component's bit.
func MaxID() uint32 {
	return globalComponentRegistry.maxID()
}
