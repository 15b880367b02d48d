package loom

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
)

// CachedQuery is a snapshot of archetype indices satisfying a required
// component set, captured at construction or at the last Refresh. It
// does not notice archetypes created afterward; callers that want a
// query to see new archetypes must call Refresh explicitly.
type CachedQuery struct {
	storage    Storage
	components []Component
	matched    []ArchetypeImpl
}

// newCachedQuery builds a CachedQuery over sto for the given required
// components and performs its first scan.
func newCachedQuery(sto Storage, components []Component) *CachedQuery {
	q := &CachedQuery{storage: sto, components: components}
	q.Refresh()
	return q
}

// Refresh re-scans storage's archetypes and recaptures the ones whose
// mask is a superset of the query's required components, in archetype
// vector order.
func (q *CachedQuery) Refresh() {
	var required mask.Mask
	for _, c := range q.components {
		required.Mark(q.storage.RowIndexFor(c))
	}
	matched := q.matched[:0]
	for _, arch := range q.storage.Archetypes() {
		archMask := arch.Table().(mask.Maskable).Mask()
		if archMask.ContainsAll(required) {
			matched = append(matched, arch)
		}
	}
	q.matched = matched
}

// entityAt resolves the entity occupying slot within arch.
func entityAt(sto Storage, arch ArchetypeImpl, slot int) (Entity, error) {
	entry, err := arch.table.Entry(slot)
	if err != nil {
		return nil, err
	}
	return sto.Entity(int(entry.ID()))
}

// Apply invokes f once per matching entity, archetype by archetype in
// captured order, slot 0..len-1 within each archetype. Forward
// iteration is only safe under mutation if f neither removes the
// entity it was just given nor creates/destroys archetypes — use
// RevApply for a callback that needs to remove or create entities.
func (q *CachedQuery) Apply(f func(entity Entity, slot int) error) error {
	for _, arch := range q.matched {
		n := arch.table.Length()
		for slot := 0; slot < n; slot++ {
			entity, err := entityAt(q.storage, arch, slot)
			if err != nil {
				return fmt.Errorf("apply: %w", err)
			}
			if err := f(entity, slot); err != nil {
				return err
			}
		}
	}
	return nil
}

// RevApply invokes f once per matching entity, archetypes in reverse
// captured order and entities len-1..0 within each archetype. This
// ordering is mutation-safe: a callback that removes the current
// entity causes a swap-remove from the tail, which RevApply has
// already visited, so no entity is visited twice or skipped; a
// callback that appends new entities leaves them past the point
// RevApply has already iterated, so they are not visited this pass.
func (q *CachedQuery) RevApply(f func(entity Entity, slot int) error) error {
	for i := len(q.matched) - 1; i >= 0; i-- {
		arch := q.matched[i]
		n := arch.table.Length()
		for slot := n - 1; slot >= 0; slot-- {
			entity, err := entityAt(q.storage, arch, slot)
			if err != nil {
				return fmt.Errorf("revapply: %w", err)
			}
			if err := f(entity, slot); err != nil {
				return err
			}
		}
	}
	return nil
}

// ApplyView is Apply, but hands the callback an EntityView built from
// components instead of typed references, for callers (state machine
// dispatch) that need to address an opaque, owner-supplied component
// list rather than a fixed compile-time set.
func (q *CachedQuery) ApplyView(components []ComponentViewer, f func(view *EntityView, entity Entity) error) error {
	return q.Apply(func(entity Entity, slot int) error {
		return f(ViewFor(entity, components...), entity)
	})
}

// TotalMatched returns the number of entities across every archetype
// captured by this query as of its last Refresh.
func (q *CachedQuery) TotalMatched() int {
	total := 0
	for _, arch := range q.matched {
		total += arch.table.Length()
	}
	return total
}

// Apply1 is the fixed-arity escape hatch Go's lack of variadic
// generics forces (spec.md §9): it iterates every matching entity and
// hands f a mutable pointer to component c1.
func Apply1[T1 any](q *CachedQuery, c1 AccessibleComponent[T1], f func(entity Entity, t1 *T1) error) error {
	return q.Apply(func(entity Entity, slot int) error {
		return f(entity, c1.GetFromEntity(entity))
	})
}

// Apply2 is Apply1 for two components.
func Apply2[T1, T2 any](q *CachedQuery, c1 AccessibleComponent[T1], c2 AccessibleComponent[T2], f func(entity Entity, t1 *T1, t2 *T2) error) error {
	return q.Apply(func(entity Entity, slot int) error {
		return f(entity, c1.GetFromEntity(entity), c2.GetFromEntity(entity))
	})
}

// Apply3 is Apply1 for three components.
func Apply3[T1, T2, T3 any](q *CachedQuery, c1 AccessibleComponent[T1], c2 AccessibleComponent[T2], c3 AccessibleComponent[T3], f func(entity Entity, t1 *T1, t2 *T2, t3 *T3) error) error {
	return q.Apply(func(entity Entity, slot int) error {
		return f(entity, c1.GetFromEntity(entity), c2.GetFromEntity(entity), c3.GetFromEntity(entity))
	})
}

// Apply4 is Apply1 for four components.
func Apply4[T1, T2, T3, T4 any](q *CachedQuery, c1 AccessibleComponent[T1], c2 AccessibleComponent[T2], c3 AccessibleComponent[T3], c4 AccessibleComponent[T4], f func(entity Entity, t1 *T1, t2 *T2, t3 *T3, t4 *T4) error) error {
	return q.Apply(func(entity Entity, slot int) error {
		return f(entity, c1.GetFromEntity(entity), c2.GetFromEntity(entity), c3.GetFromEntity(entity), c4.GetFromEntity(entity))
	})
}

// RevApply1 is Apply1, but iterates with RevApply's mutation-safe
// reverse order; use this when f may remove the current entity.
func RevApply1[T1 any](q *CachedQuery, c1 AccessibleComponent[T1], f func(entity Entity, t1 *T1) error) error {
	return q.RevApply(func(entity Entity, slot int) error {
		return f(entity, c1.GetFromEntity(entity))
	})
}

// RevApply2 is RevApply1 for two components.
func RevApply2[T1, T2 any](q *CachedQuery, c1 AccessibleComponent[T1], c2 AccessibleComponent[T2], f func(entity Entity, t1 *T1, t2 *T2) error) error {
	return q.RevApply(func(entity Entity, slot int) error {
		return f(entity, c1.GetFromEntity(entity), c2.GetFromEntity(entity))
	})
}

// RevApply3 is RevApply1 for three components.
func RevApply3[T1, T2, T3 any](q *CachedQuery, c1 AccessibleComponent[T1], c2 AccessibleComponent[T2], c3 AccessibleComponent[T3], f func(entity Entity, t1 *T1, t2 *T2, t3 *T3) error) error {
	return q.RevApply(func(entity Entity, slot int) error {
		return f(entity, c1.GetFromEntity(entity), c2.GetFromEntity(entity), c3.GetFromEntity(entity))
	})
}

// RevApply4 is RevApply1 for four components.
func RevApply4[T1, T2, T3, T4 any](q *CachedQuery, c1 AccessibleComponent[T1], c2 AccessibleComponent[T2], c3 AccessibleComponent[T3], c4 AccessibleComponent[T4], f func(entity Entity, t1 *T1, t2 *T2, t3 *T3, t4 *T4) error) error {
	return q.RevApply(func(entity Entity, slot int) error {
		return f(entity, c1.GetFromEntity(entity), c2.GetFromEntity(entity), c3.GetFromEntity(entity), c4.GetFromEntity(entity))
	})
}
