package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/pkg/engine"
)

func TestDefaultCatalogLooksUpEveryEntityKind(t *testing.T) {
	cat := Default()

	card, err := cat.Card("card_march")
	require.NoError(t, err)
	assert.Equal(t, "March", card.Name)

	_, err = cat.Unit("unit_peasant_levy")
	require.NoError(t, err)

	_, err = cat.Enemy("enemy_basic")
	require.NoError(t, err)

	_, err = cat.Skill("skill_tireless_march")
	require.NoError(t, err)

	_, err = cat.Tile("tile_greenglade")
	require.NoError(t, err)

	_, err = cat.Site("site_village_greenglade")
	require.NoError(t, err)

	_, err = cat.Tactic("tactic_early_scout")
	require.NoError(t, err)

	_, err = cat.RuinsToken("ruins_hidden_den")
	require.NoError(t, err)
}

func TestCatalogMissOnUnknownID(t *testing.T) {
	cat := Default()

	_, err := cat.Card("card_does_not_exist")
	require.Error(t, err)

	var miss *engine.CatalogMiss
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, "card", miss.Kind)
	assert.Equal(t, "card_does_not_exist", miss.ID)
}

func TestTerrainAtResolvesPlacedTileAndRotation(t *testing.T) {
	cat := Default()
	m := &engine.GameMap{
		Tiles: []engine.TilePlacement{
			{TileDefID: "tile_greenglade", Origin: engine.HexCoord{Q: 5, R: 5}},
		},
	}

	terrain, ok := cat.TerrainAt(m, engine.HexCoord{Q: 5, R: 5})
	require.True(t, ok)
	assert.Equal(t, TerrainPlains, terrain)

	_, ok = cat.TerrainAt(m, engine.HexCoord{Q: 99, R: 99})
	assert.False(t, ok)
}

func TestBaseTerrainCostCoversEveryTerrainKind(t *testing.T) {
	for _, terrain := range []TerrainKind{
		TerrainPlains, TerrainHills, TerrainForest, TerrainDesert,
		TerrainSwamp, TerrainLake, TerrainMountains,
	} {
		assert.Greater(t, BaseTerrainCost(terrain), 0, "terrain %s must have a positive base cost", terrain)
	}
}

func TestRotateOffsetFullCircleIsIdentity(t *testing.T) {
	off := engine.HexCoord{Q: 1, R: 0}
	rotated := off
	for i := 0; i < 6; i++ {
		rotated = RotateOffset(rotated, 1)
	}
	assert.Equal(t, off, rotated)
}
