package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
	"hexmarch/pkg/validation"
)

func villageState() (engine.GameState, *catalog.Catalog) {
	cat := catalog.Default()
	state := engine.GameState{
		Round:      1,
		RNG:        engine.NewRNGStream(11),
		RoundPhase: engine.PhasePlay,
		Players: []engine.Player{
			{
				ID:       "arathir",
				Position: engine.HexCoord{Q: 1, R: 0},
				Deck:     []string{"card_march", "card_rage", "card_march"},
			},
		},
		Map: engine.GameMap{
			Sites: map[string]engine.SiteOccupancy{
				engine.HexCoord{Q: 1, R: 0}.String(): {
					SiteDefID: "site_village_greenglade",
					Hex:       engine.HexCoord{Q: 1, R: 0},
				},
			},
		},
	}
	return state, cat
}

// TestPlunderVillageDrawsTwoAndCostsReputation drives the optional
// turn-opening plunder: two cards drawn, one reputation lost, and the
// village marked plundered so it cannot be raided again this round.
func TestPlunderVillageDrawsTwoAndCostsReputation(t *testing.T) {
	state, cat := villageState()
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionPlunderVillage))
	require.NoError(t, result.Err)
	state = result.State

	assertHasEvent(t, result.Events, engine.EventVillagePlundered)
	p, _ := state.PlayerByID("arathir")
	assert.Len(t, p.Hand, 2)
	assert.Len(t, p.Deck, 1)
	assert.Equal(t, -1, p.Reputation)
	site, _ := state.Map.SiteAt(engine.HexCoord{Q: 1, R: 0})
	assert.True(t, site.Plundered)
	assert.Empty(t, state.UndoStack, "drawing cards is a checkpoint")

	// a plundered village stays plundered for the round.
	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionPlunderVillage))
	require.Error(t, result.Err)
	assert.Equal(t, validation.CodeVillagePlundered, rejectionCode(t, result.Err))
}

// TestPlunderVillageOnlyAtTurnStart verifies plundering is confined to
// the opening of the turn, before the player has moved or acted.
func TestPlunderVillageOnlyAtTurnStart(t *testing.T) {
	state, cat := villageState()
	state.Players[0].Flags.HasMoved = true
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionPlunderVillage))
	require.Error(t, result.Err)
	assert.Equal(t, validation.CodeTurnAlreadyStarted, rejectionCode(t, result.Err))
}

// TestBurnMonasteryMarksSiteBurnedOnVictory enters a monastery with the
// burn option, defeats its defender, and checks the post-combat
// bookkeeping: the site is burned, a shield token is placed, and a
// second entry is refused.
func TestBurnMonasteryMarksSiteBurnedOnVictory(t *testing.T) {
	cat := catalog.Default()
	state := engine.GameState{
		RoundPhase: engine.PhasePlay,
		Players:    []engine.Player{{ID: "arathir", Position: engine.HexCoord{Q: 0, R: 0}}},
		Map: engine.GameMap{
			Sites: map[string]engine.SiteOccupancy{
				engine.HexCoord{Q: 0, R: 0}.String(): {
					SiteDefID:         "site_monastery_stillwater",
					Hex:               engine.HexCoord{Q: 0, R: 0},
					RampagingEnemyIDs: []string{"enemy_basic"},
				},
			},
		},
	}
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionEnterSite).With("burn", true))
	require.NoError(t, result.Err)
	state = result.State
	require.NotNil(t, state.Combat)
	assert.Equal(t, engine.ContextBurnMonastery, state.Combat.Context)
	p, _ := state.PlayerByID("arathir")
	assert.Equal(t, -1, p.Reputation)
	enemyID := state.Combat.Enemies[0].InstanceID

	// defeat the defender in ranged-siege: 4 ranged meets armor 4.
	_, idx := state.PlayerByID("arathir")
	state.Players[idx].AttackPools = map[string]int{
		engine.AttackPoolKey("ranged", engine.ElementPhysical): 4,
	}
	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionAssignAttack).
		With("enemy_id", enemyID).With("attack_kind", "ranged").With("element", string(engine.ElementPhysical)).With("amount", 4))
	require.NoError(t, result.Err)
	state = result.State

	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionFinalizeAttack))
	require.NoError(t, result.Err)
	state = result.State

	assertHasEvent(t, result.Events, engine.EventEnemyDefeated)
	assertHasEvent(t, result.Events, engine.EventMonasteryBurned)
	assertHasEvent(t, result.Events, engine.EventShieldTokenPlaced)
	require.Nil(t, state.Combat)
	site, _ := state.Map.SiteAt(engine.HexCoord{Q: 0, R: 0})
	assert.True(t, site.Burned)

	// the burned monastery refuses further entry.
	state.Players[0].Flags = engine.TurnFlags{}
	state.Players[0].PendingLevelUps = nil // the kill's fame queued a level-up
	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionEnterSite))
	require.Error(t, result.Err)
	assert.Equal(t, validation.CodeMonasteryBurned, rejectionCode(t, result.Err))
}

// TestVictoryClaimsRuinsTokenRewardOnce checks that clearing a ruins
// site grants the buried token's rewards and discards the token
// globally so it cannot re-enter play.
func TestVictoryClaimsRuinsTokenRewardOnce(t *testing.T) {
	cat := catalog.Default()
	state := engine.GameState{
		RoundPhase: engine.PhasePlay,
		Players:    []engine.Player{{ID: "arathir", Position: engine.HexCoord{Q: 0, R: 0}}},
		Map: engine.GameMap{
			Sites: map[string]engine.SiteOccupancy{
				engine.HexCoord{Q: 1, R: 0}.String(): {
					SiteDefID:         "site_village_greenglade",
					Hex:               engine.HexCoord{Q: 1, R: 0},
					RampagingEnemyIDs: []string{"enemy_basic"},
					RuinsTokenID:      "ruins_buried_cache",
					RuinsFaceUp:       true,
				},
			},
		},
	}
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionChallengeRampaging).With("hex", engine.HexCoord{Q: 1, R: 0}))
	require.NoError(t, result.Err)
	state = result.State
	enemyID := state.Combat.Enemies[0].InstanceID

	_, idx := state.PlayerByID("arathir")
	state.Players[idx].AttackPools = map[string]int{
		engine.AttackPoolKey("ranged", engine.ElementPhysical): 4,
	}
	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionAssignAttack).
		With("enemy_id", enemyID).With("attack_kind", "ranged").With("element", string(engine.ElementPhysical)).With("amount", 4))
	require.NoError(t, result.Err)
	state = result.State

	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionFinalizeAttack))
	require.NoError(t, result.Err)
	state = result.State

	assertHasEvent(t, result.Events, engine.EventRuinsTokenClaimed)
	p, _ := state.PlayerByID("arathir")
	assert.Equal(t, 1, p.Crystals.Red, "ruins_buried_cache rewards one red crystal")
	assert.Contains(t, state.DiscardedRuinsTokens, "ruins_buried_cache")
	site, _ := state.Map.SiteAt(engine.HexCoord{Q: 1, R: 0})
	assert.Empty(t, site.RuinsTokenID)
}
