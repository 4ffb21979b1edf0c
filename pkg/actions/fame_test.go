package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
	"hexmarch/pkg/validation"
)

// TestDebugActionsGatedBehindDevMode verifies debug-add-fame is refused
// without the DevMode state flag and works with it, including level-up
// queueing on threshold crossings.
func TestDebugActionsGatedBehindDevMode(t *testing.T) {
	cat := catalog.Default()
	state := engine.GameState{
		RoundPhase: engine.PhasePlay,
		Players:    []engine.Player{{ID: "arathir"}},
	}
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionDebugAddFame).With("amount", 4))
	require.Error(t, result.Err)
	assert.Equal(t, validation.CodeDebugDisabled, rejectionCode(t, result.Err))

	state.DevMode = true
	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionDebugAddFame).With("amount", 4))
	require.NoError(t, result.Err)
	state = result.State

	p, _ := state.PlayerByID("arathir")
	assert.Equal(t, 4, p.Fame)
	assert.Equal(t, []int{1}, p.PendingLevelUps, "crossing the first threshold (3) queues one level-up")
	assertHasEvent(t, result.Events, engine.EventLevelUpQueued)
}

// TestDebugTriggerLevelUpQueuesRewardDirectly verifies the second debug
// action kind queues a reward without touching fame.
func TestDebugTriggerLevelUpQueuesRewardDirectly(t *testing.T) {
	cat := catalog.Default()
	state := engine.GameState{
		RoundPhase: engine.PhasePlay,
		DevMode:    true,
		Players:    []engine.Player{{ID: "arathir"}},
	}
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionDebugTriggerLevelUp))
	require.NoError(t, result.Err)
	state = result.State

	p, _ := state.PlayerByID("arathir")
	assert.Equal(t, 0, p.Fame)
	assert.Equal(t, []int{1}, p.PendingLevelUps)

	// the queued reward blocks ordinary play until resolved.
	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionPlayCard).With("card_id", "card_march").With("face", string(catalog.FaceBasic)))
	require.Error(t, result.Err)
	assert.Equal(t, validation.CodeLevelUpPending, rejectionCode(t, result.Err))
}

// TestFameTrackerGrantsBonusPerDefeatUntilSpent seeds a two-point
// fame-tracking modifier and defeats one enemy: the kill grants the
// enemy's own fame plus one tracked bonus point; the tracker, with one
// point still unspent, expires when the combat ends.
func TestFameTrackerGrantsBonusPerDefeatUntilSpent(t *testing.T) {
	state, cat := combatTestState()
	state.Modifiers = []engine.Modifier{{
		ID:               "mod-bow",
		Source:           "card_bow_of_starsdawn",
		Duration:         engine.DurationCombat,
		Scope:            engine.ScopeSelf,
		CreatingPlayerID: "arathir",
		Effect:           engine.EffectPayload{Kind: engine.EffectFameTracking, RemainingPoints: 2},
	}}
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

	p, _ := state.PlayerByID("arathir")
	assert.Equal(t, 4, p.Fame, "enemy_basic's 3 fame plus 1 tracked bonus")
	// combat ended in victory; the tracker's combat duration expired it
	// with one point unspent.
	require.Nil(t, state.Combat)
	for _, m := range state.Modifiers {
		assert.NotEqual(t, engine.EffectFameTracking, m.Effect.Kind, "combat-duration tracker expires at combat end")
	}
}
