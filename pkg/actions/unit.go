package actions

import (
	"hexmarch/pkg/engine"
)

// combatAbilityEffect maps a unit's combat-phase ability to the
// AtomicEffect its activation produces. Units carry a single Armor
// stat (no separate ability magnitude in the catalog), so activating
// a combat-phase ability contributes that Armor value, in full, to
// the matching pool — the same convention the card/skill catalogs use
// of one flat numeric value per effect.
func combatAbilityEffect(ability string, armor int) (engine.AtomicEffect, bool) {
	switch ability {
	case "block-phase":
		return engine.AtomicEffect{Kind: engine.EffGainBlock, Element: engine.ElementPhysical, Amount: armor}, true
	case "ranged-phase":
		return engine.AtomicEffect{Kind: engine.EffGainAttack, AttackKind: "ranged", Element: engine.ElementPhysical, Amount: armor}, true
	case "melee-phase":
		return engine.AtomicEffect{Kind: engine.EffGainAttack, AttackKind: "melee", Element: engine.ElementPhysical, Amount: armor}, true
	default:
		return engine.AtomicEffect{}, false
	}
}

// doActivateUnit resolves a unit activation: its matching combat-phase
// ability (if any) contributes value to the acting player's pools, and
// the unit becomes spent until readied at round end.
func doActivateUnit(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	p, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}
	instanceID := ctx.Action.Str("unit_instance_id")

	var unitDefID string
	unitIdx := -1
	for i, u := range p.Units {
		if u.InstanceID == instanceID {
			unitDefID = u.UnitID
			unitIdx = i
			break
		}
	}
	if unitIdx < 0 {
		return state, nil, false, engine.NewInternal("unit instance not found", nil)
	}
	def, err := ctx.Cat.Unit(unitDefID)
	if err != nil {
		return state, nil, false, engine.NewInternal("unit definition missing", err)
	}

	var events []engine.Event
	for _, ab := range def.Abilities {
		if eff, ok := combatAbilityEffect(ab, def.Armor); ok {
			events = append(events, applyAtomicEffect(&state, ctx, idx, eff)...)
		}
	}

	state.Players[idx].Units[unitIdx].State = engine.UnitSpent

	ev := engine.NewEvent(engine.EventUnitActivated, ctx.PlayerID).With("unit_instance_id", instanceID).With("unit_id", unitDefID)
	events = append([]engine.Event{ev}, events...)
	return state, events, !hasCheckpointEffect(events), nil
}
