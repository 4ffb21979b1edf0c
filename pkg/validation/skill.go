package validation

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

func skillIsLearned(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("skillIsLearned", CodeNotYourTurn, "unknown player")
	}
	skillID := a.Str("skill_id")
	for _, s := range p.Skills {
		if s.SkillID == skillID {
			return nil
		}
	}
	return reject("skillIsLearned", CodeSkillNotLearned, "skill is not learned by this player")
}

func skillUsageNotExhausted(state *engine.GameState, cat *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return nil
	}
	def, err := cat.Skill(a.Str("skill_id"))
	if err != nil {
		return nil
	}
	for _, s := range p.Skills {
		if s.SkillID != a.Str("skill_id") {
			continue
		}
		switch def.Usage {
		case catalog.UsageOncePerTurn:
			if s.UsedThisTurn {
				return reject("skillUsageNotExhausted", CodeSkillAlreadyUsed, "skill already used this turn")
			}
		case catalog.UsageOncePerRound:
			if s.UsedThisRound {
				return reject("skillUsageNotExhausted", CodeSkillAlreadyUsed, "skill already used this round")
			}
		}
	}
	return nil
}

// skillPhaseMatches rejects a combat-phase-scoped skill used outside
// combat or outside its matching phase.
func skillPhaseMatches(state *engine.GameState, cat *catalog.Catalog, _ string, a engine.Action) *Rejection {
	def, err := cat.Skill(a.Str("skill_id"))
	if err != nil {
		return nil
	}
	phaseFor := map[catalog.SkillUsageKind]engine.CombatPhase{
		catalog.UsageBlockPhase:  engine.PhaseBlock,
		catalog.UsageRangedPhase: engine.PhaseRangedSiege,
		catalog.UsageMeleePhase:  engine.PhaseAttack,
	}
	want, requiresCombat := phaseFor[def.Usage]
	if !requiresCombat {
		return nil
	}
	if state.Combat == nil {
		return reject("skillPhaseMatches", CodeNotInCombatForAbility, "this skill requires an active combat")
	}
	if state.Combat.Phase != want {
		return reject("skillPhaseMatches", CodeAbilityPhaseMismatch, "this skill does not match the current combat phase")
	}
	return nil
}

// useSkillPredicates deliberately does not share commonTurnPredicates:
// a combat-phase skill (block/ranged/melee) must remain usable while a
// combat is in progress, which commonTurnPredicates' notInCombat check
// would otherwise forbid.
var useSkillPredicates = []Predicate{
	isPlayersTurn,
	noPendingChoice,
	noPendingLevelUp,
	skillIsLearned,
	skillUsageNotExhausted,
	skillPhaseMatches,
}
