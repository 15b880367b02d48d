package loom

import "github.com/TheBitDrifter/table"

// Archetype is a storage bucket holding every entity that shares one
// exact component set, laid out column-major via its Table.
type Archetype interface {
	ID() uint32
	Table() table.Table
}

type archetypeID uint32

// ArchetypeImpl is the concrete, table-backed implementation of Archetype.
// All columns it owns share one length; that length is the entity count.
type ArchetypeImpl struct {
	id    archetypeID
	table table.Table
}

func newArchetype(sto *storage, entryIndex table.EntryIndex, id archetypeID, components ...Component) (ArchetypeImpl, error) {
	elementTypes := make([]table.ElementType, len(components))
	for i, comp := range components {
		elementTypes[i] = comp
	}
	tbl, err := table.NewTableBuilder().
		WithSchema(sto.schema).
		WithEntryIndex(entryIndex).
		WithElementTypes(elementTypes...).
		WithEvents(Config.tableEvents).
		Build()
	if err != nil {
		return ArchetypeImpl{}, err
	}
	return ArchetypeImpl{
		table: tbl,
		id:    id,
	}, nil
}

// ID returns the archetype's stable numeric identity within its storage.
func (a ArchetypeImpl) ID() uint32 {
	return uint32(a.id)
}

// Table returns the underlying column store.
func (a ArchetypeImpl) Table() table.Table {
	return a.table
}
