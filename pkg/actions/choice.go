package actions

import "hexmarch/pkg/engine"

// doResolveChoice resolves whichever suspension point is outstanding
// for the player: a PendingChoice (the more common case — a card or
// skill effect awaiting a target), or else the oldest queued
// level-up. Only one kind can be outstanding for a given resolve, since
// a PendingChoice is checked first.
func doResolveChoice(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	p, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}

	if p.PendingChoice != nil {
		choice := p.PendingChoice
		optionID := ctx.Action.Str("option_id")
		state.Players[idx].PendingChoice = nil

		events := []engine.Event{
			engine.NewEvent(engine.EventChoiceResolved, ctx.PlayerID).With("option_id", optionID).With("source", choice.Source),
		}
		for _, eff := range choice.RemainingEffects {
			events = append(events, applyAtomicEffect(&state, ctx, idx, eff)...)
		}
		return state, events, !hasCheckpointEffect(events), nil
	}

	if len(state.Players[idx].PendingLevelUps) > 0 {
		lvl := state.Players[idx].PendingLevelUps[0]
		state.Players[idx].PendingLevelUps = state.Players[idx].PendingLevelUps[1:]
		ev := engine.NewEvent(engine.EventChoiceResolved, ctx.PlayerID).With("kind", "level-up").With("level", lvl)
		return state, []engine.Event{ev}, true, nil
	}

	return state, nil, false, engine.NewInternal("no pending choice or level-up to resolve", nil)
}
