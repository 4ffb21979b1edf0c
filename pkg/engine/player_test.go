package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckLevelUpQueuesEachNewlyCrossedLevel(t *testing.T) {
	p := &Player{Fame: 7}
	queued := CheckLevelUp(p)
	assert.Equal(t, []int{1, 2}, queued)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, []int{1, 2}, p.PendingLevelUps)
}

func TestCheckLevelUpIsNoOpWithoutNewThreshold(t *testing.T) {
	p := &Player{Fame: 4, Level: 1}
	queued := CheckLevelUp(p)
	assert.Nil(t, queued)
	assert.Equal(t, 1, p.Level)
}

func TestClampReputationBounds(t *testing.T) {
	clamped, wasClamped := ClampReputation(9)
	assert.Equal(t, 7, clamped)
	assert.True(t, wasClamped)

	clamped, wasClamped = ClampReputation(-9)
	assert.Equal(t, -7, clamped)
	assert.True(t, wasClamped)

	clamped, wasClamped = ClampReputation(3)
	assert.Equal(t, 3, clamped)
	assert.False(t, wasClamped)
}

func TestPoolKeyAndAttackPoolKey(t *testing.T) {
	assert.Equal(t, "attack", PoolKey(ValueAttack, ""))
	assert.Equal(t, "attack:fire", PoolKey(ValueAttack, ElementFire))

	assert.Equal(t, "attack:melee:physical", AttackPoolKey("", ""))
	assert.Equal(t, "attack:ranged:ice", AttackPoolKey("ranged", ElementIce))
}

func TestPlayerCloneIsIndependent(t *testing.T) {
	p := Player{
		ID:   "arathir",
		Hand: []string{"card_march"},
		Units: []OwnedUnit{
			{InstanceID: "u1", ResistanceUsed: map[Element]bool{ElementFire: true}},
		},
	}
	clone := p.Clone()
	clone.Hand[0] = "card_rage"
	clone.Units[0].ResistanceUsed[ElementFire] = false

	assert.Equal(t, "card_march", p.Hand[0])
	assert.True(t, p.Units[0].ResistanceUsed[ElementFire])
}
