package validation

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

// isPlayersTurn rejects any action submitted by someone other than the
// current player. There is no exception for cooperative combat
// proposals from other players.
func isPlayersTurn(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	cur := state.CurrentPlayer()
	if cur == nil || cur.ID != playerID {
		return reject("isPlayersTurn", CodeNotYourTurn, "it is not this player's turn")
	}
	return nil
}

func roundPhaseIsPlay(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
	if state.RoundPhase != engine.PhasePlay {
		return reject("roundPhaseIsPlay", CodeWrongPhase, "round is not in the play phase")
	}
	return nil
}

func notInCombat(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
	if state.Combat != nil {
		return reject("notInCombat", CodeInCombat, "a combat is already in progress")
	}
	return nil
}

func inCombat(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
	if state.Combat == nil {
		return reject("inCombat", CodeNotInCombat, "no combat is in progress")
	}
	return nil
}

func noPendingChoice(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p != nil && p.PendingChoice != nil {
		return reject("noPendingChoice", CodeChoicePending, "a pending choice must be resolved first")
	}
	return nil
}

func noPendingLevelUp(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p != nil && len(p.PendingLevelUps) > 0 {
		return reject("noPendingLevelUp", CodeLevelUpPending, "a queued level-up reward must be resolved first")
	}
	return nil
}

func mustAnnounceEndOfRoundIfTriggered(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
	if state.FinalTurnsActive && state.AnnouncedEndOfRound == "" {
		return reject("mustAnnounceEndOfRoundIfTriggered", CodeMustAnnounceEndOfRound, "end-of-round must be announced before further actions")
	}
	return nil
}

func notAlreadyRestingThisTurn(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p != nil && p.Flags.IsResting {
		return reject("notAlreadyRestingThisTurn", CodeIsResting, "player has declared rest and may take no other action this turn")
	}
	return nil
}

func hasNotActedThisTurn(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p != nil && p.Flags.HasActed {
		return reject("hasNotActedThisTurn", CodeAlreadyActed, "only one action may be taken per turn")
	}
	return nil
}

func announceEndOfRoundOnce(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	if state.AnnouncedEndOfRound != "" && state.AnnouncedEndOfRound != playerID {
		return reject("announceEndOfRoundOnce", CodeAlreadyAnnounced, "end-of-round has already been announced by another player")
	}
	return nil
}

func undoStackNotEmpty(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
	if len(state.UndoStack) == 0 {
		return reject("undoStackNotEmpty", CodeNothingToUndo, "undo stack is empty")
	}
	return nil
}

func undoTopBelongsToPlayer(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	if len(state.UndoStack) == 0 {
		return nil
	}
	top := state.UndoStack[len(state.UndoStack)-1]
	if top.PlayerID != playerID {
		return reject("undoTopBelongsToPlayer", CodeNotYourTurn, "the most recent undoable command belongs to another player")
	}
	return nil
}

// resolveChoiceHasPendingChoice accepts either a PendingChoice or a
// queued level-up reward: both are suspension points this same action
// resolves, and the resolve-choice handler branches on which is
// present.
func resolveChoiceHasPendingChoice(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil || (p.PendingChoice == nil && len(p.PendingLevelUps) == 0) {
		return reject("resolveChoiceHasPendingChoice", CodeNoPendingChoice, "no pending choice to resolve")
	}
	return nil
}

// commonTurnPredicates is the shared prefix nearly every in-play action
// needs: it is this player's turn, the round is in the play phase, no
// suspension point is outstanding, and end-of-round has been announced
// if required.
var commonTurnPredicates = []Predicate{
	isPlayersTurn,
	roundPhaseIsPlay,
	notInCombat,
	noPendingChoice,
	noPendingLevelUp,
	mustAnnounceEndOfRoundIfTriggered,
}

// announceEndOfRoundPredicates skips mustAnnounceEndOfRoundIfTriggered
// (announcing it is exactly what this action does) and instead forbids
// a second, different player from announcing after one already has.
var announceEndOfRoundPredicates = []Predicate{
	isPlayersTurn,
	roundPhaseIsPlay,
	noPendingChoice,
	noPendingLevelUp,
	announceEndOfRoundOnce,
}

// minimumTurnRequirementMet rejects ending a turn in which nothing
// happened: at least one card must have been played or discarded, or
// the player rested, or they announced end-of-round with an empty
// deck and hand. Resting is always reachable, so no state can strand a
// player unable to end their turn.
func minimumTurnRequirementMet(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("minimumTurnRequirementMet", CodeNotYourTurn, "unknown player")
	}
	if len(p.PlayArea) > 0 || p.Flags.WoundsHealedThisTurn > 0 || p.Flags.HasRested {
		return nil
	}
	if state.AnnouncedEndOfRound == playerID && len(p.Deck) == 0 && len(p.Hand) == 0 {
		return nil
	}
	return reject("minimumTurnRequirementMet", CodeMinimumTurnNotMet, "a turn must play or discard a card, rest, or announce end-of-round with an empty deck and hand")
}

var endTurnPredicates = append(append([]Predicate{}, commonTurnPredicates...),
	minimumTurnRequirementMet,
)

// resolveChoicePredicates deliberately omits noPendingChoice (resolving
// the choice is the point) and noPendingLevelUp (a level-up reward can
// itself be queued as a pending choice).
var resolveChoicePredicates = []Predicate{
	isPlayersTurn,
	resolveChoiceHasPendingChoice,
}

var undoPredicates = []Predicate{
	undoStackNotEmpty,
	undoTopBelongsToPlayer,
}

// devModeEnabled gates the debug-* action kinds behind the DevMode
// state flag.
func devModeEnabled(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
	if !state.DevMode {
		return reject("devModeEnabled", CodeDebugDisabled, "debug actions require dev mode")
	}
	return nil
}

var debugPredicates = []Predicate{
	devModeEnabled,
	isPlayersTurn,
}
