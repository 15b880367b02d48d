package loom

import "unsafe"

// EntityView is a transient, type-erased map from component id to a
// mutable pointer into the owning archetype's columns, for one slot.
// It borrows the archetype's column memory: it is valid only until the
// next mutation (including growth) of any archetype it references, and
// must never outlive the update tick that built it.
type EntityView struct {
	ptrs map[uint32]unsafe.Pointer
}

func newEntityView() *EntityView {
	return &EntityView{ptrs: make(map[uint32]unsafe.Pointer)}
}

// addView installs ptr under id; the internal "add" constructor helper
// spec.md describes, used while a view is being assembled for one slot.
func (v *EntityView) addView(id uint32, ptr unsafe.Pointer) {
	v.ptrs[id] = ptr
}

// Contains reports whether the view holds a pointer for c.
func (v *EntityView) Contains(c Component) bool {
	_, ok := v.ptrs[c.ID()]
	return ok
}

// ComponentViewer lets a heterogeneous list of typed components each
// install their own live pointer into an EntityView being assembled
// for one entity. AccessibleComponent[T] implements it, which is how
// ViewFor and CachedQuery.ApplyView accept a mixed list of component
// types without variadic generics.
type ComponentViewer interface {
	InstallView(view *EntityView, e Entity)
}

// InstallView implements ComponentViewer for AccessibleComponent[T].
func (c AccessibleComponent[T]) InstallView(view *EntityView, e Entity) {
	view.addView(c.ID(), unsafe.Pointer(c.GetFromEntity(e)))
}

// ViewFor builds an EntityView over e covering exactly the given
// components.
func ViewFor(e Entity, components ...ComponentViewer) *EntityView {
	view := newEntityView()
	for _, c := range components {
		c.InstallView(view, e)
	}
	return view
}

// EntityViewGet retrieves the pointer installed for c, if any. The
// bool mirrors spec.md's contains<T>(); callers that know the
// component must be present can ignore it.
func EntityViewGet[T any](view *EntityView, c AccessibleComponent[T]) (*T, bool) {
	ptr, ok := view.ptrs[c.ID()]
	if !ok {
		return nil, false
	}
	return (*T)(ptr), true
}
