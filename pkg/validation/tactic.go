package validation

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

func roundPhaseIsTacticsSelection(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
	if state.RoundPhase != engine.PhaseTacticsSelection {
		return reject("roundPhaseIsTacticsSelection", CodeWrongPhase, "round is not in the tactics-selection phase")
	}
	return nil
}

func tacticInOffer(state *engine.GameState, _ *catalog.Catalog, _ string, a engine.Action) *Rejection {
	tacticID := a.Str("tactic_id")
	for _, id := range state.Offers[engine.OfferTactic] {
		if id == tacticID {
			return nil
		}
	}
	return reject("tacticInOffer", CodeTacticNotInOffer, "tactic is not in the shared tactic offer")
}

// tacticMatchesTimeOfDay rejects selecting a day tactic at night and
// vice versa; tactic cards are scoped to one half of the round cycle.
func tacticMatchesTimeOfDay(state *engine.GameState, cat *catalog.Catalog, _ string, a engine.Action) *Rejection {
	def, err := cat.Tactic(a.Str("tactic_id"))
	if err != nil {
		return nil // caught as Internal by the executor
	}
	if def.TimeOfDay != state.TimeOfDay {
		return reject("tacticMatchesTimeOfDay", CodeTacticTimeOfDay, "tactic does not match the current time of day")
	}
	return nil
}

func tacticNotAlreadySelected(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p != nil && p.TacticID != "" {
		return reject("tacticNotAlreadySelected", CodeTacticAlreadySelected, "player has already selected a tactic this round")
	}
	return nil
}

var selectTacticPredicates = []Predicate{
	isPlayersTurn,
	roundPhaseIsTacticsSelection,
	tacticNotAlreadySelected,
	tacticInOffer,
	tacticMatchesTimeOfDay,
}
