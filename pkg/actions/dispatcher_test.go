package actions

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/pkg/catalog"
	"hexmarch/pkg/config"
	"hexmarch/pkg/engine"
	"hexmarch/pkg/validation"
)

// testDispatcher builds a Dispatcher with a default logrus logger and no
// metrics wired, matching NewDispatcher but against a caller-supplied
// catalog (the end-to-end tests below each extend catalog.Default()
// with a small fixture).
func testDispatcher(cat *catalog.Catalog) *Dispatcher {
	return &Dispatcher{Cat: cat, Config: config.Default(), Log: logrus.New()}
}

// corridorCatalog returns catalog.Default() augmented with a synthetic
// tile covering the hexes the rampaging-block and provoking-rampaging
// tests move across. Rotation 0 makes TileDef.Terrain's
// origin-relative offsets act as absolute hexes directly.
func corridorCatalog() *catalog.Catalog {
	cat := catalog.Default()
	cat.Tiles["tile_test_corridor"] = catalog.TileDef{
		ID:   "tile_test_corridor",
		Name: "Test Corridor",
		Terrain: map[engine.HexCoord]catalog.TerrainKind{
			{Q: 0, R: 0}:  catalog.TerrainPlains,
			{Q: 0, R: -1}: catalog.TerrainPlains,
			{Q: 1, R: -2}: catalog.TerrainPlains,
			{Q: 1, R: -3}: catalog.TerrainPlains,
			{Q: 2, R: -3}: catalog.TerrainPlains,
			{Q: 2, R: -4}: catalog.TerrainPlains,
		},
	}
	return cat
}

func corridorMap() engine.GameMap {
	return engine.GameMap{
		Tiles: []engine.TilePlacement{{TileDefID: "tile_test_corridor", Origin: engine.HexCoord{Q: 0, R: 0}}},
		Sites: map[string]engine.SiteOccupancy{
			engine.HexCoord{Q: 2, R: -4}.String(): {
				Hex:               engine.HexCoord{Q: 2, R: -4},
				RampagingEnemyIDs: []string{"enemy_rampaging_wolf"},
			},
		},
	}
}

func rejectionCode(t *testing.T, err error) string {
	t.Helper()
	rej, ok := err.(*validation.Rejection)
	require.True(t, ok, "expected a *validation.Rejection, got %T", err)
	return rej.Code
}

// TestSubmitRampagingBlocksDirectEntry checks that a move directly
// onto a hex garrisoned by a rampaging enemy is rejected outright, and
// that the rejected submission leaves state untouched.
func TestSubmitRampagingBlocksDirectEntry(t *testing.T) {
	cat := corridorCatalog()
	state := engine.GameState{
		Round:      1,
		RoundPhase: engine.PhasePlay,
		Map:        corridorMap(),
		Players:    []engine.Player{{ID: "arathir", Position: engine.HexCoord{Q: 1, R: -3}, Move: 10}},
	}
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionMove).With("to", engine.HexCoord{Q: 2, R: -4}))

	require.Error(t, result.Err)
	assert.Equal(t, validation.CodeBlockedByRampaging, rejectionCode(t, result.Err))
	assert.Equal(t, state, result.State, "a rejected submission must leave state untouched")
}

// TestSubmitMoveProvokesAdjacentRampaging checks that walking past a
// rampaging garrison without entering its hex directly still provokes
// combat once a step both starts and ends adjacent to it.
func TestSubmitMoveProvokesAdjacentRampaging(t *testing.T) {
	cat := corridorCatalog()
	state := engine.GameState{
		Round:      1,
		RoundPhase: engine.PhasePlay,
		Map:        corridorMap(),
		Players:    []engine.Player{{ID: "arathir", Position: engine.HexCoord{Q: 0, R: 0}, Move: 20}},
	}
	d := testDispatcher(cat)

	for _, to := range []engine.HexCoord{{Q: 0, R: -1}, {Q: 1, R: -2}, {Q: 1, R: -3}} {
		result := d.Submit(state, "arathir", engine.NewAction(engine.ActionMove).With("to", to))
		require.NoError(t, result.Err)
		state = result.State
	}
	require.Nil(t, state.Combat, "no earlier step both starts and ends adjacent to the rampaging hex")

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionMove).With("to", engine.HexCoord{Q: 2, R: -3}))
	require.NoError(t, result.Err)
	state = result.State

	assertHasEvent(t, result.Events, engine.EventPlayerMoved)
	assertHasEvent(t, result.Events, engine.EventCombatTriggered)
	var triggered engine.Event
	for _, ev := range result.Events {
		if ev.Type == engine.EventCombatTriggered {
			triggered = ev
		}
	}
	assert.Equal(t, "provoke-rampaging", triggered.Fields["reason"])
	assert.Equal(t, engine.HexCoord{Q: 2, R: -4}, triggered.Fields["hex"])

	require.NotNil(t, state.Combat)
	p, _ := state.PlayerByID("arathir")
	assert.True(t, p.Flags.HasCombatted)
	assert.Equal(t, engine.HexCoord{Q: 2, R: -3}, p.Position)
}

// combatSiteState mirrors combatTestState in combat_test.go but is
// driven through Submit rather than the internal do* functions.
func combatSiteState() (engine.GameState, *catalog.Catalog) {
	cat := catalog.Default()
	state := engine.GameState{
		RoundPhase: engine.PhasePlay,
		Players: []engine.Player{
			{ID: "arathir", Position: engine.HexCoord{Q: 0, R: 0}},
		},
		Map: engine.GameMap{
			Sites: map[string]engine.SiteOccupancy{
				engine.HexCoord{Q: 1, R: 0}.String(): {
					SiteDefID:         "site_village_greenglade",
					Hex:               engine.HexCoord{Q: 1, R: 0},
					RampagingEnemyIDs: []string{"enemy_basic", "enemy_defender"},
				},
			},
		},
	}
	return state, cat
}

// TestSubmitDefendStackingPersistsAcrossAttacks drives Defend stacking
// at the Submit level: enemy_defender's Defend bonus raises
// enemy_basic's effective armor for the rest of combat: a 5-physical
// assignment falls short and is retracted, and the raised armor still
// holds when a 6-physical attack defeats it.
func TestSubmitDefendStackingPersistsAcrossAttacks(t *testing.T) {
	state, cat := combatSiteState()
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionChallengeRampaging).With("hex", engine.HexCoord{Q: 1, R: 0}))
	require.NoError(t, result.Err)
	state = result.State
	require.Len(t, state.Combat.Enemies, 2)
	var basicID, defenderID string
	for _, e := range state.Combat.Enemies {
		if e.EnemyDefID == "enemy_basic" {
			basicID = e.InstanceID
		} else {
			defenderID = e.InstanceID
		}
	}

	for _, want := range []engine.CombatPhase{engine.PhaseBlock, engine.PhaseAssignDamage, engine.PhaseAttack} {
		result = d.Submit(state, "arathir", engine.NewAction(engine.ActionFinalizeAttack))
		require.NoError(t, result.Err)
		state = result.State
		require.Equal(t, want, state.Combat.Phase)
	}

	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionDeclareDefend).
		With("defender_id", defenderID).With("enemy_id", basicID))
	require.NoError(t, result.Err)
	state = result.State
	assertHasEvent(t, result.Events, engine.EventDefendApplied)

	basicDef, err := cat.Enemy("enemy_basic")
	require.NoError(t, err)
	basicStats := enemyStatsFrom(basicDef)
	basicInst, _ := state.Combat.EnemyByID(basicID)
	require.Equal(t, 6, engine.EffectiveEnemyArmor(*basicInst, basicStats, state.Modifiers),
		"the defend bonus raises enemy_basic's effective armor from 4 to 6")

	// startCombat reset the player's attack pool to empty; seed it
	// directly here, standing in for the ranged-siege accumulation this
	// test isn't otherwise exercising.
	seedPool := func(amount int) {
		_, idx := state.PlayerByID("arathir")
		state.Players[idx].AttackPools = map[string]int{
			engine.AttackPoolKey("melee", engine.ElementPhysical): amount,
		}
	}

	// the attack phase resolves exactly once per combat, so a player
	// weighs sufficiency against the boosted armor before finalizing:
	// 5 physical falls short, so it's retracted rather than committed.
	seedPool(5)
	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionAssignAttack).
		With("enemy_id", basicID).With("attack_kind", "melee").With("element", string(engine.ElementPhysical)).With("amount", 5))
	require.NoError(t, result.Err)
	state = result.State
	basicInst, _ = state.Combat.EnemyByID(basicID)
	assert.Less(t, basicInst.PendingDamage.Total(), engine.EffectiveEnemyArmor(*basicInst, basicStats, state.Modifiers),
		"5 physical falls short of the defend-boosted armor of 6")

	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionUnassignAttack).
		With("enemy_id", basicID).With("attack_kind", "melee").With("element", string(engine.ElementPhysical)).With("amount", 5))
	require.NoError(t, result.Err)
	state = result.State
	basicInst, _ = state.Combat.EnemyByID(basicID)
	assert.Equal(t, 0, basicInst.PendingDamage.Total())
	require.NotNil(t, state.Combat, "retracting an unfinalized assignment must not end combat")

	// the bonus still holds after the retraction: 6 damage now defeats it.
	seedPool(6)
	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionAssignAttack).
		With("enemy_id", basicID).With("attack_kind", "melee").With("element", string(engine.ElementPhysical)).With("amount", 6))
	require.NoError(t, result.Err)
	state = result.State

	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionFinalizeAttack))
	require.NoError(t, result.Err)
	assertHasEvent(t, result.Events, engine.EventEnemyDefeated)
}

// TestSubmitGoldenGrailBasicHealsAndGrantsFame checks Golden Grail's
// basic face: playing it discards every wound in hand and grants one
// fame per wound healed.
func TestSubmitGoldenGrailBasicHealsAndGrantsFame(t *testing.T) {
	cat := catalog.Default()
	state := engine.GameState{
		RoundPhase: engine.PhasePlay,
		Players: []engine.Player{
			{ID: "arathir", Hand: []string{"card_golden_grail", "card_wound", "card_wound", "card_march"}},
		},
	}
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionPlayCard).
		With("card_id", "card_golden_grail").With("face", string(catalog.FaceBasic)))
	require.NoError(t, result.Err)
	state = result.State

	p, _ := state.PlayerByID("arathir")
	for _, c := range p.Hand {
		assert.NotEqual(t, "card_wound", c)
	}
	assert.Equal(t, 2, p.Fame)
}

// TestSubmitGoldenGrailPoweredHealsDrawsAndLeavesModifier checks
// Golden Grail's powered face: it heals every wound, draws one card
// per wound healed, and leaves a draw-on-heal modifier active for the
// rest of the turn.
func TestSubmitGoldenGrailPoweredHealsDrawsAndLeavesModifier(t *testing.T) {
	cat := catalog.Default()
	state := engine.GameState{
		RoundPhase: engine.PhasePlay,
		Players: []engine.Player{
			{
				ID:   "arathir",
				Hand: []string{"card_golden_grail", "card_wound", "card_wound", "card_wound", "card_march"},
				Deck: []string{"card_rage", "card_march", "card_rage", "card_march", "card_rage"},
			},
		},
	}
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionPlayCard).
		With("card_id", "card_golden_grail").With("face", string(catalog.FacePowered)).
		With("payment_colors", []string{"white"}))
	require.NoError(t, result.Err)
	state = result.State

	p, _ := state.PlayerByID("arathir")
	assert.Len(t, p.Hand, 4, "hand: march + 3 drawn cards")
	assert.Len(t, p.Deck, 2)
	for _, c := range p.Hand {
		assert.NotEqual(t, "card_wound", c)
	}

	foundDrawOnHeal := false
	for _, m := range state.Modifiers {
		if m.Effect.Kind == engine.EffectDrawOnHeal && m.CreatingPlayerID == "arathir" {
			foundDrawOnHeal = true
		}
	}
	assert.True(t, foundDrawOnHeal, "draw-on-heal modifier must remain active for the rest of the turn")
}

// TestSubmitConvertInfluenceToBlockRoundTripsThroughUndo checks the
// Diplomacy-style conversion and its undo: spending influence through
// an active conversion modifier accumulates block, and undoing the
// command restores the exact prior state — the general undo
// round-trip law, c.undo(c.execute(s)).state == s.
func TestSubmitConvertInfluenceToBlockRoundTripsThroughUndo(t *testing.T) {
	cat := catalog.Default()
	state := engine.GameState{
		RoundPhase: engine.PhasePlay,
		Players: []engine.Player{
			{ID: "arathir", Influence: 5},
		},
		Combat: &engine.CombatState{Phase: engine.PhaseBlock},
		Modifiers: []engine.Modifier{
			{
				ID:               "mod-diplomacy",
				Source:           "card_diplomacy",
				Duration:         engine.DurationCombat,
				Scope:            engine.ScopeSelf,
				CreatingPlayerID: "arathir",
				Effect:           engine.EffectPayload{Kind: engine.EffectInfluenceToBlock, Cost: 1},
			},
		},
	}
	before := state.Clone()
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionConvertInfluenceToBlock).With("amount", 3))
	require.NoError(t, result.Err)
	executed := result.State

	p, _ := executed.PlayerByID("arathir")
	assert.Equal(t, 2, p.Influence)
	assert.Equal(t, 3, p.BlockPools[engine.PoolKey(engine.ValueBlock, "")])
	require.Len(t, executed.UndoStack, 1)

	result = d.Submit(executed, "arathir", engine.NewAction(engine.ActionUndo))
	require.NoError(t, result.Err)
	undone := result.State

	p, _ = undone.PlayerByID("arathir")
	assert.Equal(t, 5, p.Influence)
	assert.Equal(t, 0, p.BlockPools[engine.PoolKey(engine.ValueBlock, "")])
	assert.Empty(t, undone.UndoStack)

	// the round-trip law: undo(execute(s)).state == s, modulo the
	// monotonic Version counter Submit always advances.
	undone.Version = before.Version
	assert.Equal(t, before, undone)
}
