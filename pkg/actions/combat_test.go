package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

func combatTestState() (engine.GameState, *catalog.Catalog) {
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
					RampagingEnemyIDs: []string{"enemy_basic"},
				},
			},
		},
	}
	return state, cat
}

// TestRampagingBlockDefeatsEnemyAndEndsCombatVictorious drives a full
// challenge-rampaging combat against enemy_basic (armor 4, attack 3,
// physical) through block then attack, following the fixed
// ranged-siege -> block -> assign-damage -> attack -> end phase order.
func TestRampagingBlockDefeatsEnemyAndEndsCombatVictorious(t *testing.T) {
	state, cat := combatTestState()
	ctx := Context{Cat: cat, PlayerID: "arathir", Action: engine.NewAction(engine.ActionChallengeRampaging).With("hex", engine.HexCoord{Q: 1, R: 0})}

	state, events, reversible, err := doChallengeRampaging(state, ctx)
	require.NoError(t, err)
	assert.True(t, reversible)
	require.NotNil(t, state.Combat)
	assert.Equal(t, engine.PhaseRangedSiege, state.Combat.Phase)
	assert.Len(t, state.Combat.Enemies, 1)
	enemyID := state.Combat.Enemies[0].InstanceID
	assertHasEvent(t, events, engine.EventCombatStarted)

	// ranged-siege: nothing assigned, advance to block.
	ctx.Action = engine.NewAction(engine.ActionFinalizeAttack)
	state, _, _, err = doFinalizeAttack(state, ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.PhaseBlock, state.Combat.Phase)

	// block the attack fully (physical attack, physical block, no Swift).
	ctx.Action = engine.NewAction(engine.ActionBlock).
		With("enemy_id", enemyID).With("element", string(engine.ElementPhysical)).With("amount", 3)
	state, _, _, err = doBlock(state, ctx)
	require.NoError(t, err)
	assert.True(t, state.Combat.Enemies[0].Blocked)

	// advance through assign-damage (nothing to assign, blocked) to attack.
	ctx.Action = engine.NewAction(engine.ActionFinalizeAttack)
	state, _, _, err = doFinalizeAttack(state, ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.PhaseAssignDamage, state.Combat.Phase)

	state, _, _, err = doFinalizeAttack(state, ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.PhaseAttack, state.Combat.Phase)

	// assign enough attack to meet the enemy's armor (4).
	ctx.Action = engine.NewAction(engine.ActionAssignAttack).
		With("enemy_id", enemyID).With("attack_kind", "melee").With("element", string(engine.ElementPhysical)).With("amount", 4)
	state, _, _, err = doAssignAttack(state, ctx)
	require.NoError(t, err)

	ctx.Action = engine.NewAction(engine.ActionFinalizeAttack)
	state, events, reversible, err = doFinalizeAttack(state, ctx)
	require.NoError(t, err)
	assert.True(t, reversible)
	assert.Nil(t, state.Combat, "combat must clear once the only enemy is defeated")
	assertHasEvent(t, events, engine.EventEnemyDefeated)
	assertHasEvent(t, events, engine.EventCombatEnded)
	assert.Equal(t, 3, state.Players[0].Fame, "defeating enemy_basic grants its 3 fame")
}

// TestDoAssignDamageFromUnblockedAttackAddsWoundToHand exercises the
// assign-damage phase path for an attack that was never blocked.
func TestDoAssignDamageFromUnblockedAttackAddsWoundToHand(t *testing.T) {
	state, cat := combatTestState()
	ctx := Context{Cat: cat, PlayerID: "arathir", Action: engine.NewAction(engine.ActionChallengeRampaging).With("hex", engine.HexCoord{Q: 1, R: 0})}
	state, _, _, err := doChallengeRampaging(state, ctx)
	require.NoError(t, err)
	enemyID := state.Combat.Enemies[0].InstanceID

	ctx.Action = engine.NewAction(engine.ActionAssignDamage).With("enemy_id", enemyID).With("target_kind", "hero")
	state, events, _, err := doAssignDamage(state, ctx)
	require.NoError(t, err)
	assertHasEvent(t, events, engine.EventHeroWounded)

	woundCount := 0
	for _, c := range state.Players[0].Hand {
		if c == "card_wound" {
			woundCount++
		}
	}
	assert.Equal(t, 1, woundCount)
}

// TestDeclareDefendAddsPersistentArmorBonus checks Defend stacking:
// enemy_defender's Defend bonus is consumed onto enemy_basic, raising
// its effective armor from 4 to 6 for the rest of the combat even
// after enemy_defender itself could be defeated.
func TestDeclareDefendAddsPersistentArmorBonus(t *testing.T) {
	state, cat := combatTestState()
	state.Map.Sites[engine.HexCoord{Q: 1, R: 0}.String()] = engine.SiteOccupancy{
		SiteDefID:         "site_village_greenglade",
		Hex:               engine.HexCoord{Q: 1, R: 0},
		RampagingEnemyIDs: []string{"enemy_basic", "enemy_defender"},
	}
	ctx := Context{Cat: cat, PlayerID: "arathir", Action: engine.NewAction(engine.ActionChallengeRampaging).With("hex", engine.HexCoord{Q: 1, R: 0})}
	state, _, _, err := doChallengeRampaging(state, ctx)
	require.NoError(t, err)
	require.Len(t, state.Combat.Enemies, 2)
	var basicID, defenderID string
	for _, e := range state.Combat.Enemies {
		if e.EnemyDefID == "enemy_basic" {
			basicID = e.InstanceID
		} else {
			defenderID = e.InstanceID
		}
	}

	// advance ranged-siege -> block -> assign-damage -> attack.
	for _, want := range []engine.CombatPhase{engine.PhaseBlock, engine.PhaseAssignDamage, engine.PhaseAttack} {
		ctx.Action = engine.NewAction(engine.ActionFinalizeAttack)
		state, _, _, err = doFinalizeAttack(state, ctx)
		require.NoError(t, err)
		require.Equal(t, want, state.Combat.Phase)
	}

	// enemy_defender contributes its defend bonus (2) to enemy_basic.
	ctx.Action = engine.NewAction(engine.ActionDeclareDefend).With("defender_id", defenderID).With("enemy_id", basicID)
	state, events, reversible, err := doDeclareDefend(state, ctx)
	require.NoError(t, err)
	assert.True(t, reversible)
	assertHasEvent(t, events, engine.EventDefendApplied)
	defenderAfter, _ := state.Combat.EnemyByID(defenderID)
	assert.True(t, defenderAfter.UsedDefend)

	basicDef, err := cat.Enemy("enemy_basic")
	require.NoError(t, err)
	basicStats := enemyStatsFrom(basicDef)
	basicInst, _ := state.Combat.EnemyByID(basicID)
	require.Equal(t, 6, engine.EffectiveEnemyArmor(*basicInst, basicStats, state.Modifiers),
		"the defend bonus raises enemy_basic's effective armor from 4 to 6")

	// the attack phase resolves exactly once per combat, so a player
	// checks sufficiency against the pool before finalizing rather than
	// finalizing speculatively: 5 physical falls short of the boosted
	// armor, so it's retracted rather than committed.
	ctx.Action = engine.NewAction(engine.ActionAssignAttack).
		With("enemy_id", basicID).With("attack_kind", "melee").With("element", string(engine.ElementPhysical)).With("amount", 5)
	state, _, _, err = doAssignAttack(state, ctx)
	require.NoError(t, err)
	basicInst, _ = state.Combat.EnemyByID(basicID)
	assert.Less(t, basicInst.PendingDamage.Total(), engine.EffectiveEnemyArmor(*basicInst, basicStats, state.Modifiers),
		"5 physical falls short of the defend-boosted armor of 6")

	ctx.Action = engine.NewAction(engine.ActionUnassignAttack).
		With("enemy_id", basicID).With("attack_kind", "melee").With("element", string(engine.ElementPhysical)).With("amount", 5)
	state, _, _, err = doUnassignAttack(state, ctx)
	require.NoError(t, err)
	basicInst, _ = state.Combat.EnemyByID(basicID)
	assert.Equal(t, 0, basicInst.PendingDamage.Total())
	require.NotNil(t, state.Combat, "retracting an unfinalized assignment must not end combat")

	// the bonus still holds after the retraction: 6 damage now defeats it.
	ctx.Action = engine.NewAction(engine.ActionAssignAttack).
		With("enemy_id", basicID).With("attack_kind", "melee").With("element", string(engine.ElementPhysical)).With("amount", 6)
	state, _, _, err = doAssignAttack(state, ctx)
	require.NoError(t, err)
	ctx.Action = engine.NewAction(engine.ActionFinalizeAttack)
	state, events, _, err = doFinalizeAttack(state, ctx)
	require.NoError(t, err)
	assertHasEvent(t, events, engine.EventEnemyDefeated)
}

// TestElusiveArmorRevertsOnlyAfterFullBlock exercises Elusive's armor
// reversion: its low armor applies only once every block-phase attack
// against it was fully blocked.
func TestElusiveArmorRevertsOnlyAfterFullBlock(t *testing.T) {
	state, cat := combatTestState()
	state.Map.Sites[engine.HexCoord{Q: 1, R: 0}.String()] = engine.SiteOccupancy{
		SiteDefID:         "site_village_greenglade",
		Hex:               engine.HexCoord{Q: 1, R: 0},
		RampagingEnemyIDs: []string{"enemy_elusive_scout"},
	}
	ctx := Context{Cat: cat, PlayerID: "arathir", Action: engine.NewAction(engine.ActionChallengeRampaging).With("hex", engine.HexCoord{Q: 1, R: 0})}
	state, _, _, err := doChallengeRampaging(state, ctx)
	require.NoError(t, err)
	enemyID := state.Combat.Enemies[0].InstanceID

	// ranged-siege -> block.
	ctx.Action = engine.NewAction(engine.ActionFinalizeAttack)
	state, _, _, err = doFinalizeAttack(state, ctx)
	require.NoError(t, err)

	// fully block the (physical, 3) attack.
	ctx.Action = engine.NewAction(engine.ActionBlock).
		With("enemy_id", enemyID).With("element", string(engine.ElementPhysical)).With("amount", 3)
	state, _, _, err = doBlock(state, ctx)
	require.NoError(t, err)

	// block -> assign-damage reverts its armor to the elusive value (3).
	ctx.Action = engine.NewAction(engine.ActionFinalizeAttack)
	state, _, _, err = doFinalizeAttack(state, ctx)
	require.NoError(t, err)
	enemy, _ := state.Combat.EnemyByID(enemyID)
	assert.True(t, enemy.AllBlockPhaseAttacksBlocked)

	def, err := cat.Enemy("enemy_elusive_scout")
	require.NoError(t, err)
	stats := enemyStatsFrom(def)
	armor := engine.EffectiveEnemyArmor(*enemy, stats, state.Modifiers)
	assert.Equal(t, 3, armor, "armor should revert to the elusive value once fully blocked")
}

// TestDoConvertMoveToAttackSpendsMoveForAttackPool exercises an active
// MoveToAttack conversion modifier, confirming it spends Move at the
// modifier's stated cost and credits the attack pool under the
// modifier's attack type rather than a hardcoded "melee".
func TestDoConvertMoveToAttackSpendsMoveForAttackPool(t *testing.T) {
	state, cat := combatTestState()
	state.Players[0].Move = 4
	state.Modifiers = []engine.Modifier{
		{
			ID: "mod_mountain_lore", Scope: engine.ScopeSelf, CreatingPlayerID: "arathir",
			Duration: engine.DurationTurn,
			Effect:   engine.EffectPayload{Kind: engine.EffectMoveToAttack, Cost: 2, AttackType: "ranged"},
		},
	}
	ctx := Context{Cat: cat, PlayerID: "arathir", Action: engine.NewAction(engine.ActionConvertMoveToAttack).With("amount", 2)}

	state, events, reversible, err := doConvertMoveToAttack(state, ctx)
	require.NoError(t, err)
	assert.True(t, reversible)
	assertHasEvent(t, events, engine.EventAttackAssigned)
	assert.Equal(t, 0, state.Players[0].Move, "2 points at cost 2 each spends all 4 move")
	assert.Equal(t, 2, state.Players[0].AttackPools[engine.AttackPoolKey("ranged", engine.ElementPhysical)])
}

// TestDefeatIfBlockedDefeatsEnemyOnFullBlock exercises a DefeatIfBlocked
// modifier: an enemy fully blocked during the block phase is defeated
// outright rather than surviving to the attack phase.
func TestDefeatIfBlockedDefeatsEnemyOnFullBlock(t *testing.T) {
	state, cat := combatTestState()
	ctx := Context{Cat: cat, PlayerID: "arathir", Action: engine.NewAction(engine.ActionChallengeRampaging).With("hex", engine.HexCoord{Q: 1, R: 0})}
	state, _, _, err := doChallengeRampaging(state, ctx)
	require.NoError(t, err)
	enemyID := state.Combat.Enemies[0].InstanceID
	state.Modifiers = []engine.Modifier{
		{ID: "mod_marked", Scope: engine.ScopeOneEnemy, Target: enemyID, Duration: engine.DurationCombat,
			Effect: engine.EffectPayload{Kind: engine.EffectDefeatIfBlocked}},
	}

	ctx.Action = engine.NewAction(engine.ActionFinalizeAttack)
	state, _, _, err = doFinalizeAttack(state, ctx)
	require.NoError(t, err)
	require.Equal(t, engine.PhaseBlock, state.Combat.Phase)

	ctx.Action = engine.NewAction(engine.ActionBlock).
		With("enemy_id", enemyID).With("element", string(engine.ElementPhysical)).With("amount", 3)
	state, _, _, err = doBlock(state, ctx)
	require.NoError(t, err)
	assert.True(t, state.Combat.Enemies[0].Blocked)

	ctx.Action = engine.NewAction(engine.ActionFinalizeAttack)
	state, events, _, err := doFinalizeAttack(state, ctx)
	require.NoError(t, err)
	assertHasEvent(t, events, engine.EventEnemyDefeated)
	assert.Nil(t, state.Combat, "combat ends once its only enemy is defeated by DefeatIfBlocked")
	assert.Equal(t, 3, state.Players[0].Fame)
}

func assertHasEvent(t *testing.T, events []engine.Event, kind engine.EventType) {
	t.Helper()
	for _, e := range events {
		if e.Type == kind {
			return
		}
	}
	t.Fatalf("expected an event of type %s among %v", kind, events)
}
