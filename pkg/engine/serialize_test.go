package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() GameState {
	return GameState{
		Round:     2,
		TimeOfDay: Night,
		RNG:       NewRNGStream(5),
		Map: GameMap{
			Tiles: []TilePlacement{{TileDefID: "tile_greenglade", Origin: HexCoord{Q: 0, R: 0}}},
			Sites: map[string]SiteOccupancy{
				"0,0": {SiteDefID: "site_village_greenglade", Hex: HexCoord{Q: 0, R: 0}},
			},
		},
		Players: []Player{
			{ID: "arathir", Hand: []string{"card_march"}, Crystals: Crystals{Red: 1}},
		},
		Offers:     map[OfferKind][]string{OfferUnit: {"unit_peasant_levy"}},
		Reservoirs: map[Reservoir][]string{ReservoirUnits: {"unit_monastery_guard"}},
		Modifiers: []Modifier{
			{ID: "m1", Duration: DurationTurn, Effect: EffectPayload{Kind: EffectTerrainCostDelta, Amount: -1}},
		},
	}
}

func TestGameStateCloneIsIndependent(t *testing.T) {
	s := sampleState()
	clone := s.Clone()

	clone.Players[0].Hand[0] = "card_rage"
	clone.Offers[OfferUnit][0] = "unit_monastery_guard"
	clone.Modifiers[0].ID = "changed"

	assert.Equal(t, "card_march", s.Players[0].Hand[0], "cloning must not alias player hand slices")
	assert.Equal(t, "unit_peasant_levy", s.Offers[OfferUnit][0], "cloning must not alias offer slices")
	assert.Equal(t, "m1", s.Modifiers[0].ID, "cloning must not alias the modifier slice")
}

func TestGameStateMarshalUnmarshalRoundTrips(t *testing.T) {
	s := sampleState()

	data, err := Marshal(s)
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, s.Round, back.Round)
	assert.Equal(t, s.TimeOfDay, back.TimeOfDay)
	assert.Equal(t, s.RNG, back.RNG)
	assert.Equal(t, s.Players[0].ID, back.Players[0].ID)
	assert.Equal(t, s.Players[0].Hand, back.Players[0].Hand)
	assert.Equal(t, s.Offers, back.Offers)
	assert.Equal(t, s.Modifiers, back.Modifiers)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := Unmarshal([]byte("not: [valid yaml"))
	assert.Error(t, err)
}
