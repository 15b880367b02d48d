/*
Package loom provides an archetype-based Entity-Component-System (ECS)
runtime, plus a hierarchical state-machine harness (subpackage fsm)
driven off the views it produces.

Loom keeps entities that share an exact component set together in one
archetype, laid out column-major (structure-of-arrays) so that queries
over a component combination touch only the columns they need.

Core Concepts:

  - Entity: a component set addressed by (archetype, slot); the address
    changes whenever the entity migrates to another archetype.
  - Component: a data container registered once and addressed by id.
  - Archetype: a collection of entities sharing the same component types.
  - Query: a way to find entities with specific component combinations.
  - Entity View: a transient, type-erased map from component id to a
    mutable pointer, used to drive state-machine updates without fixing
    the component list at compile time.

Basic Usage:

	// Create storage with schema
	schema := table.Factory.NewSchema()
	storage := loom.Factory.NewStorage(schema)

	// Define components
	position := loom.FactoryNewComponent[Position]()
	velocity := loom.FactoryNewComponent[Velocity]()

	// Create entities
	entities, _ := storage.NewEntities(100, position, velocity)

	// Query entities and process them
	query := loom.Factory.NewQuery()
	queryNode := query.And(position, velocity)
	cursor := loom.Factory.NewCursor(queryNode, storage)

	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

See the fsm subpackage for the hierarchical state machine that drives
per-entity behavior off of Registry/Query output.
*/
package loom
