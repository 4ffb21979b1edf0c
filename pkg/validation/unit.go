package validation

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

func unitBelongsToPlayerAndReady(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("unitBelongsToPlayerAndReady", CodeNotYourTurn, "unknown player")
	}
	instanceID := a.Str("unit_instance_id")
	for _, u := range p.Units {
		if u.InstanceID == instanceID {
			if u.State != engine.UnitReady {
				return reject("unitBelongsToPlayerAndReady", CodeUnitNotReady, "unit is not ready")
			}
			return nil
		}
	}
	return reject("unitBelongsToPlayerAndReady", CodeUnitNotFound, "unit instance not found for this player")
}

// unitAbilityMatchesPhase rejects activating a combat-phase-scoped
// unit ability outside combat, or outside the matching phase.
func unitAbilityMatchesPhase(state *engine.GameState, cat *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return nil
	}
	var unitDefID string
	for _, u := range p.Units {
		if u.InstanceID == a.Str("unit_instance_id") {
			unitDefID = u.UnitID
		}
	}
	def, err := cat.Unit(unitDefID)
	if err != nil {
		return nil
	}
	requiresCombat := false
	for _, ab := range def.Abilities {
		if ab == "block-phase" || ab == "ranged-phase" || ab == "melee-phase" {
			requiresCombat = true
			if state.Combat == nil {
				continue
			}
			switch ab {
			case "block-phase":
				if state.Combat.Phase == engine.PhaseBlock {
					return nil
				}
			case "ranged-phase":
				if state.Combat.Phase == engine.PhaseRangedSiege {
					return nil
				}
			case "melee-phase":
				if state.Combat.Phase == engine.PhaseAttack {
					return nil
				}
			}
		}
	}
	if !requiresCombat {
		return nil
	}
	if state.Combat == nil {
		return reject("unitAbilityMatchesPhase", CodeNotInCombatForAbility, "this unit's ability requires an active combat")
	}
	return reject("unitAbilityMatchesPhase", CodeAbilityPhaseMismatch, "this unit's ability does not match the current combat phase")
}

// unitsAllowedInCombatContext rejects unit activation inside a
// dungeon or tomb: heroes descend alone, leaving their units outside.
func unitsAllowedInCombatContext(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
	if state.Combat != nil && state.Combat.Context == engine.ContextDungeon {
		return reject("unitsAllowedInCombatContext", CodeDungeonTombForbidsUnit, "units cannot be used inside a dungeon or tomb")
	}
	return nil
}

// activateUnitPredicates deliberately does not share commonTurnPredicates:
// a combat-phase unit ability must remain usable while a combat is in
// progress, which commonTurnPredicates' notInCombat check would
// otherwise forbid.
var activateUnitPredicates = []Predicate{
	isPlayersTurn,
	roundPhaseIsPlay,
	noPendingChoice,
	noPendingLevelUp,
	unitBelongsToPlayerAndReady,
	unitsAllowedInCombatContext,
	unitAbilityMatchesPhase,
}
