package validation

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

func declareRestHasNonWoundOrSlow(state *engine.GameState, cat *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("declareRestHasNonWoundOrSlow", CodeNotYourTurn, "unknown player")
	}
	if a.Str("kind") == "slow-recovery" {
		if len(p.Discard) == 0 {
			return reject("declareRestHasNonWoundOrSlow", CodeRestRequiresCard, "slow recovery requires a wound in the discard pile")
		}
		return nil
	}
	for _, id := range p.Hand {
		def, err := cat.Card(id)
		if err == nil && def.Kind != catalog.CardKindWound {
			return nil
		}
	}
	return reject("declareRestHasNonWoundOrSlow", CodeRestRequiresCard, "standard rest requires at least one non-wound card in hand")
}

var declareRestPredicates = append(append([]Predicate{}, commonTurnPredicates...),
	notAlreadyRestingThisTurn,
	hasNotActedThisTurn,
	declareRestHasNonWoundOrSlow,
)

func isCurrentlyResting(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil || !p.Flags.IsResting {
		return reject("isCurrentlyResting", CodeNotInCombatForAbility, "rest was not declared this turn")
	}
	return nil
}

var completeRestPredicates = []Predicate{
	isPlayersTurn,
	roundPhaseIsPlay,
	noPendingChoice,
	noPendingLevelUp,
	isCurrentlyResting,
}
