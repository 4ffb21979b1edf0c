package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/pkg/engine"
)

// TestFinalizeEmitsAttackFailedWhenDamageFallsShort commits an
// insufficient ranged assignment and finalizes: the enemy survives, an
// attack-failed event names the armor that was required, the
// assignment is consumed, and combat moves on to the block phase.
func TestFinalizeEmitsAttackFailedWhenDamageFallsShort(t *testing.T) {
	state, cat := combatTestState()
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionChallengeRampaging).With("hex", engine.HexCoord{Q: 1, R: 0}))
	require.NoError(t, result.Err)
	state = result.State
	enemyID := state.Combat.Enemies[0].InstanceID

	_, idx := state.PlayerByID("arathir")
	state.Players[idx].AttackPools = map[string]int{
		engine.AttackPoolKey("ranged", engine.ElementPhysical): 3,
	}
	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionAssignAttack).
		With("enemy_id", enemyID).With("attack_kind", "ranged").With("element", string(engine.ElementPhysical)).With("amount", 3))
	require.NoError(t, result.Err)
	state = result.State

	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionFinalizeAttack))
	require.NoError(t, result.Err)
	state = result.State

	var failed engine.Event
	for _, ev := range result.Events {
		if ev.Type == engine.EventAttackFailed {
			failed = ev
		}
	}
	require.NotNil(t, failed.Fields, "an insufficient finalized attack must report attack-failed")
	assert.Equal(t, 4, failed.Fields["required"], "enemy_basic's armor is 4")
	assert.Equal(t, 3, failed.Fields["dealt"])

	require.NotNil(t, state.Combat)
	enemy, _ := state.Combat.EnemyByID(enemyID)
	assert.False(t, enemy.Defeated)
	assert.Equal(t, 0, enemy.PendingDamage.Total(), "finalize consumes the assignment either way")
	assert.Equal(t, engine.PhaseBlock, state.Combat.Phase)
}
