package engine

import "testing"

func TestEffectiveTerrainCostFoldsDeltaAndClampsToOne(t *testing.T) {
	mods := []Modifier{
		{
			Scope:            ScopeTerrainClass,
			CreatingPlayerID: "arathir",
			Effect: EffectPayload{
				Kind:    EffectTerrainCostDelta,
				Terrain: "forest",
				Amount:  -5,
			},
		},
	}
	got := EffectiveTerrainCost(mods, "arathir", "forest", 3)
	if got != 1 {
		t.Fatalf("expected clamped cost 1, got %d", got)
	}
}

func TestEffectiveTerrainCostIgnoresOtherPlayersAndTerrains(t *testing.T) {
	mods := []Modifier{
		{
			Scope:            ScopeTerrainClass,
			CreatingPlayerID: "seren",
			Effect: EffectPayload{
				Kind:    EffectTerrainCostDelta,
				Terrain: "forest",
				Amount:  -5,
			},
		},
	}
	got := EffectiveTerrainCost(mods, "arathir", "forest", 3)
	if got != 3 {
		t.Fatalf("expected unmodified cost 3, got %d", got)
	}
}

func TestEffectiveHandLimitAppliesOwnScopedBonus(t *testing.T) {
	mods := []Modifier{
		{
			Scope:            ScopeSelf,
			CreatingPlayerID: "arathir",
			Effect: EffectPayload{
				Kind:   EffectRuleOverride,
				RuleID: "hand-limit-bonus",
				Amount: 2,
			},
		},
	}
	if got := EffectiveHandLimit(mods, "arathir", 5); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := EffectiveHandLimit(mods, "seren", 5); got != 5 {
		t.Fatalf("expected unaffected base 5, got %d", got)
	}
}

func TestExpireModifiersRemovesOnlyMatchingTrigger(t *testing.T) {
	mods := []Modifier{
		{ID: "a", Duration: DurationTurn},
		{ID: "b", Duration: DurationCombat},
		{ID: "c", Duration: DurationRound},
	}
	out := ExpireModifiers(mods, TriggerTurnEnd)
	if len(out) != 2 {
		t.Fatalf("expected 2 modifiers to survive turn-end, got %d", len(out))
	}
	for _, m := range out {
		if m.Duration == DurationTurn {
			t.Fatalf("turn-duration modifier %q should have expired", m.ID)
		}
	}
}

func TestInfluenceToBlockConversionsFiltersByPlayerAndScope(t *testing.T) {
	mods := []Modifier{
		{Scope: ScopeSelf, CreatingPlayerID: "arathir", Effect: EffectPayload{Kind: EffectInfluenceToBlock, Cost: 1}},
		{Scope: ScopeSelf, CreatingPlayerID: "seren", Effect: EffectPayload{Kind: EffectInfluenceToBlock, Cost: 1}},
		{Scope: ScopeOneEnemy, CreatingPlayerID: "arathir", Effect: EffectPayload{Kind: EffectInfluenceToBlock, Cost: 1}},
	}
	out := InfluenceToBlockConversions(mods, "arathir")
	if len(out) != 1 {
		t.Fatalf("expected exactly one matching conversion, got %d", len(out))
	}
}
