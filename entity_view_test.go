package loom

import (
	"testing"

	"github.com/TheBitDrifter/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityViewGetAndContains(t *testing.T) {
	schema := table.Factory.NewSchema()
	storage := Factory.NewStorage(schema)

	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	entities, err := storage.NewEntities(1, posComp, velComp)
	require.NoError(t, err)
	entity := entities[0]

	posPtr := posComp.GetFromEntity(entity)
	*posPtr = Position{X: 1, Y: 2}
	velPtr := velComp.GetFromEntity(entity)
	*velPtr = Velocity{X: 3, Y: 4}

	view := ViewFor(entity, posComp, velComp)

	assert.True(t, view.Contains(posComp))
	assert.True(t, view.Contains(velComp))
	assert.False(t, view.Contains(healthComp))

	gotPos, ok := EntityViewGet(view, posComp)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1, Y: 2}, *gotPos)

	gotVel, ok := EntityViewGet(view, velComp)
	require.True(t, ok)
	assert.Equal(t, Velocity{X: 3, Y: 4}, *gotVel)

	_, ok = EntityViewGet(view, healthComp)
	assert.False(t, ok)
}

func TestEntityViewMutationIsLive(t *testing.T) {
	schema := table.Factory.NewSchema()
	storage := Factory.NewStorage(schema)
	posComp := FactoryNewComponent[Position]()

	entities, err := storage.NewEntities(1, posComp)
	require.NoError(t, err)
	entity := entities[0]

	view := ViewFor(entity, posComp)
	gotPos, ok := EntityViewGet(view, posComp)
	require.True(t, ok)

	gotPos.X = 42

	direct := posComp.GetFromEntity(entity)
	assert.Equal(t, float64(42), direct.X, "EntityView must expose a live pointer into the archetype column")
}
