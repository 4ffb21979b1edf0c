package actions

import "hexmarch/pkg/engine"

// levelUpEvents checks p's fame against the level thresholds and
// returns a level-up-queued event for each newly crossed level.
func levelUpEvents(p *engine.Player, playerID string) []engine.Event {
	queued := engine.CheckLevelUp(p)
	if len(queued) == 0 {
		return nil
	}
	events := make([]engine.Event, 0, len(queued))
	for _, lvl := range queued {
		events = append(events, engine.NewEvent(engine.EventLevelUpQueued, playerID).With("level", lvl))
	}
	return events
}

// consumeFameTrackers spends one point from each of playerID's active
// fame-tracking modifiers (a Bow of Starsdawn-style "extra fame per
// kill, up to N" counter), granting the bonus fame and dropping any
// tracker that reaches zero. Returns the events for the fame granted.
func consumeFameTrackers(state *engine.GameState, playerID string, idx int) []engine.Event {
	var events []engine.Event
	kept := state.Modifiers[:0]
	for _, m := range state.Modifiers {
		if m.Effect.Kind != engine.EffectFameTracking || m.CreatingPlayerID != playerID || m.Effect.RemainingPoints <= 0 {
			kept = append(kept, m)
			continue
		}
		state.Players[idx].Fame++
		m.Effect.RemainingPoints--
		events = append(events,
			engine.NewEvent(engine.EventFameChanged, playerID).With("delta", 1).With("new_value", state.Players[idx].Fame).With("source", m.Source))
		if m.Effect.RemainingPoints > 0 {
			kept = append(kept, m)
		} else {
			events = append(events, engine.NewEvent(engine.EventModifierExpired, playerID).With("modifier_id", m.ID).With("effect_kind", string(m.Effect.Kind)))
		}
	}
	state.Modifiers = kept
	return events
}

// doDebugAddFame grants an arbitrary amount of fame. Only legal when
// GameState.DevMode is set.
func doDebugAddFame(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}
	amount := ctx.Action.Int("amount")
	state.Players[idx].Fame += amount
	events := []engine.Event{
		engine.NewEvent(engine.EventFameChanged, ctx.PlayerID).With("delta", amount).With("new_value", state.Players[idx].Fame),
	}
	return state, append(events, levelUpEvents(&state.Players[idx], ctx.PlayerID)...), true, nil
}

// doDebugTriggerLevelUp queues one level-up reward directly, without
// crossing a fame threshold. Only legal when GameState.DevMode is set.
func doDebugTriggerLevelUp(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}
	state.Players[idx].Level++
	lvl := state.Players[idx].Level
	state.Players[idx].PendingLevelUps = append(state.Players[idx].PendingLevelUps, lvl)
	ev := engine.NewEvent(engine.EventLevelUpQueued, ctx.PlayerID).With("level", lvl)
	return state, []engine.Event{ev}, true, nil
}
