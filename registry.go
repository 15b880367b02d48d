package loom

import "fmt"

// EntityIndex is the stable (archetype, slot) address of an entity at
// one point in time. Neither field is an identity across a mutation
// that migrates the entity: callers that need a long-lived handle must
// track the index returned by whichever call last touched the entity.
type EntityIndex struct {
	Archetype Archetype
	Slot      int
}

// ComponentValue pairs a component identity with the value to emplace
// into it, for callers building an entity or migrating one across
// several components in a single call instead of one
// AddComponentWithValue per field.
type ComponentValue struct {
	Component Component
	Value     any
}

// Val builds a ComponentValue pairing c with value, for use in
// CreateEntity/EmplaceComponents call sites.
func Val(c Component, value any) ComponentValue {
	return ComponentValue{Component: c, Value: value}
}

// CreateEntity creates one new entity in sto carrying exactly the
// given components, seeded with the paired initial values, and
// returns both the Entity handle and its EntityIndex.
func CreateEntity(sto Storage, values ...ComponentValue) (Entity, EntityIndex, error) {
	components := make([]Component, len(values))
	for i, v := range values {
		components[i] = v.Component
	}
	entities, err := sto.NewEntities(1, components...)
	if err != nil {
		return nil, EntityIndex{}, err
	}
	e := entities[0]
	for _, v := range values {
		if v.Value == nil {
			continue
		}
		if err := setRowValue(e.Table(), e.Index(), v.Component, v.Value); err != nil {
			return nil, EntityIndex{}, err
		}
	}
	idx, err := entityIndexOf(e)
	if err != nil {
		return nil, EntityIndex{}, err
	}
	return e, idx, nil
}

// EmplaceComponents adds (or, for components already present,
// overwrites the value of) each of values on e. Components not yet
// present migrate e to the archetype for its enlarged component set,
// per spec's migration algorithm: the old archetype's other columns
// move with the entity, and the vacated slot is swap-removed last.
// Returns e's index after every value has been applied.
func EmplaceComponents(e Entity, values ...ComponentValue) (EntityIndex, error) {
	for _, v := range values {
		var err error
		if v.Value != nil {
			err = e.AddComponentWithValue(v.Component, v.Value)
		} else {
			err = e.AddComponent(v.Component)
		}
		if err != nil {
			return EntityIndex{}, err
		}
	}
	return entityIndexOf(e)
}

// RemoveComponents removes each of components from e, migrating it to
// the archetype for its reduced component set, and returns e's new
// index. The original this is grounded on returns the caller's stale
// pre-migration index; that is a known bug (see spec's Open Questions)
// fixed here by always returning the post-migration index.
func RemoveComponents(e Entity, components ...Component) (EntityIndex, error) {
	for _, c := range components {
		if err := e.RemoveComponent(c); err != nil {
			return EntityIndex{}, err
		}
	}
	return entityIndexOf(e)
}

// RemoveEntity destroys e, swap-removing its slot from its archetype.
func RemoveEntity(sto Storage, e Entity) error {
	return sto.DestroyEntities(e)
}

// GetComponent is the registry-facade name for
// AccessibleComponent[T].GetFromEntity.
func GetComponent[T any](c AccessibleComponent[T], e Entity) *T {
	return c.GetFromEntity(e)
}

// MakeQuery builds a CachedQuery snapshotting every archetype in sto
// whose mask is a superset of components' bits, as of the moment
// MakeQuery is called. Like any CachedQuery it does not auto-refresh.
func MakeQuery(sto Storage, components ...Component) *CachedQuery {
	return newCachedQuery(sto, components)
}

// entityIndexOf resolves e's current (archetype, slot) address by
// matching e's table against its storage's archetype list. Entities
// don't carry an archetype back-pointer directly (table.Entry only
// exposes the table itself), so the registry facade recovers one
// whenever a caller needs an EntityIndex rather than just an Entity.
func entityIndexOf(e Entity) (EntityIndex, error) {
	sto := e.Storage()
	tbl := e.Table()
	for _, arch := range sto.Archetypes() {
		if arch.Table() == tbl {
			return EntityIndex{Archetype: arch, Slot: e.Index()}, nil
		}
	}
	return EntityIndex{}, fmt.Errorf("entity's table does not belong to any archetype in its storage")
}
