package validation

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

func cardInHand(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("cardInHand", CodeNotYourTurn, "unknown player")
	}
	cardID := a.Str("card_id")
	for _, c := range p.Hand {
		if c == cardID {
			return nil
		}
	}
	return reject("cardInHand", CodeCardNotInHand, "card is not in the player's hand")
}

func cardKnownToCatalog(_ *engine.GameState, cat *catalog.Catalog, _ string, a engine.Action) *Rejection {
	if _, err := cat.Card(a.Str("card_id")); err != nil {
		return reject("cardKnownToCatalog", CodeUnknownCard, "card id is not recognized")
	}
	return nil
}

func cardNotWound(_ *engine.GameState, cat *catalog.Catalog, _ string, a engine.Action) *Rejection {
	def, err := cat.Card(a.Str("card_id"))
	if err != nil {
		return nil
	}
	if def.Kind == catalog.CardKindWound {
		return reject("cardNotWound", CodeCannotPlayWound, "wound cards cannot be played")
	}
	return nil
}

// poweredRequiresBlackForSpell rejects powering a spell card without a
// black/dusk-eligible payment declared alongside the card's own
// poweredBy color: powering a spell costs the card's color plus a
// black mana in the same payment.
func poweredRequiresBlackForSpell(state *engine.GameState, cat *catalog.Catalog, _ string, a engine.Action) *Rejection {
	if a.Str("face") != string(catalog.FacePowered) {
		return nil
	}
	def, err := cat.Card(a.Str("card_id"))
	if err != nil {
		return nil
	}
	if def.Kind != catalog.CardKindSpell {
		return nil
	}
	colors := a.StrSlice("payment_colors")
	hasBlack := false
	for _, c := range colors {
		if c == "black" {
			hasBlack = true
		}
	}
	if !hasBlack {
		return reject("poweredRequiresBlackForSpell", CodeInsufficientMana, "powering a spell requires a black mana in addition to its own color")
	}
	return nil
}

// manaTimeOfDayAndContext forbids gold mana at night or inside a
// dungeon/tomb context, and black mana outside dusk/eve or a
// dungeon/tomb context.
func manaTimeOfDayAndContext(state *engine.GameState, _ *catalog.Catalog, _ string, a engine.Action) *Rejection {
	inDungeonTomb := state.Combat != nil && state.Combat.Context == engine.ContextDungeon
	for _, c := range a.StrSlice("payment_colors") {
		switch c {
		case "gold":
			if state.TimeOfDay == engine.Night || inDungeonTomb {
				return reject("manaTimeOfDayAndContext", CodeManaTimeOfDay, "gold mana is forbidden at night and in dungeon/tomb contexts")
			}
		case "black":
			if state.TimeOfDay != engine.Night && !inDungeonTomb {
				return reject("manaTimeOfDayAndContext", CodeManaTimeOfDay, "black mana is legal only at dusk/eve or inside a dungeon/tomb context")
			}
		}
	}
	return nil
}

// playCardPredicates deliberately omits commonTurnPredicates' notInCombat
// check: a basic/powered card can legally be played during combat
// (e.g. for its attack/block effects), so card legality is judged on
// its own terms rather than inheriting the plain-turn-action gate.
var playCardPredicates = []Predicate{
	isPlayersTurn,
	roundPhaseIsPlay,
	noPendingChoice,
	noPendingLevelUp,
	mustAnnounceEndOfRoundIfTriggered,
	cardInHand,
	cardKnownToCatalog,
	cardNotWound,
	poweredRequiresBlackForSpell,
	manaTimeOfDayAndContext,
}

// sidewaysValueTypeLegalForPhase rejects a sideways value type not
// legal in the current phase: {move, influence} outside combat;
// {block} in block phase; {attack} in attack phase; never legal in
// ranged-siege.
func sidewaysValueTypeLegalForPhase(state *engine.GameState, _ *catalog.Catalog, _ string, a engine.Action) *Rejection {
	vt := a.Str("value_type")
	if state.Combat == nil {
		if vt == string(catalog.SidewaysMove) || vt == string(catalog.SidewaysInfluence) {
			return nil
		}
		return reject("sidewaysValueTypeLegalForPhase", CodeWrongPhase, "sideways move/influence is only legal outside combat")
	}
	switch state.Combat.Phase {
	case engine.PhaseBlock:
		if vt == string(catalog.SidewaysBlock) {
			return nil
		}
	case engine.PhaseAttack, engine.PhaseRangedSiege:
		if vt == string(catalog.SidewaysAttack) && state.Combat.Phase == engine.PhaseAttack {
			return nil
		}
		return reject("sidewaysValueTypeLegalForPhase", CodeWrongPhase, "sideways attack is only legal in the attack phase, never ranged-siege")
	}
	return reject("sidewaysValueTypeLegalForPhase", CodeWrongPhase, "this sideways value type is not legal in the current combat phase")
}

var playCardSidewaysPredicates = []Predicate{
	isPlayersTurn,
	roundPhaseIsPlay,
	noPendingChoice,
	noPendingLevelUp,
	mustAnnounceEndOfRoundIfTriggered,
	cardInHand,
	cardKnownToCatalog,
	cardNotWound,
	sidewaysValueTypeLegalForPhase,
}
