package actions

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

// skillEffects maps each catalog skill to the atomic effect(s) its
// description names. The catalog's SkillDef carries usage kind and a
// human description only, not a structured payload (unlike cards),
// so this table is this package's equivalent of CardDef.BasicEffects
// for the skill catalog.
var skillEffects = map[string][]engine.AtomicEffect{
	"skill_tireless_march": {{Kind: engine.EffGainMove, Amount: 1}},
	"skill_steady_block":   {{Kind: engine.EffGainBlock, Element: engine.ElementPhysical, Amount: 2}},
}

// doUseSkill applies a learned skill's effect and marks its per-turn /
// per-round usage flag, per the usage kind already enforced by
// skillUsageNotExhausted.
func doUseSkill(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}
	skillID := ctx.Action.Str("skill_id")
	def, err := ctx.Cat.Skill(skillID)
	if err != nil {
		return state, nil, false, engine.NewInternal("skill definition missing", err)
	}

	var events []engine.Event
	for _, eff := range skillEffects[skillID] {
		events = append(events, applyAtomicEffect(&state, ctx, idx, eff)...)
	}

	for i := range state.Players[idx].Skills {
		if state.Players[idx].Skills[i].SkillID != skillID {
			continue
		}
		switch def.Usage {
		case catalog.UsageOncePerTurn:
			state.Players[idx].Skills[i].UsedThisTurn = true
		case catalog.UsageOncePerRound:
			state.Players[idx].Skills[i].UsedThisRound = true
		}
	}

	ev := engine.NewEvent(engine.EventSkillUsed, ctx.PlayerID).With("skill_id", skillID)
	events = append([]engine.Event{ev}, events...)
	return state, events, !hasCheckpointEffect(events), nil
}
