// Package validation runs the fixed, ordered predicate lists that
// decide whether a submitted action is legal against the current
// state, before the command executor ever touches it.
//
// Each action kind maps to an ordered predicate slice that returns the
// first failing check. The engine has dozens of action kinds sharing
// predicate groups (turn state, movement, card legality, combat phase,
// site access), so composing small named predicates keeps each
// action's validator readable as a short list rather than a monolithic
// function body.
package validation

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

// Rejection is the typed reason an action was refused.
type Rejection struct {
	Code      string
	Message   string
	Predicate string
}

func (r *Rejection) Error() string { return r.Code + ": " + r.Message }

// Predicate checks one precondition. It returns nil when satisfied, or
// a Rejection naming itself as the failing predicate.
type Predicate func(state *engine.GameState, cat *catalog.Catalog, playerID string, a engine.Action) *Rejection

// reject is a small constructor used throughout the predicate files.
func reject(name, code, message string) *Rejection {
	return &Rejection{Code: code, Message: message, Predicate: name}
}

// Validators maps each action kind to its ordered predicate list. The
// list is built once at package init and never mutated, matching the
// catalog's "read-only table" contract.
var Validators = map[engine.ActionKind][]Predicate{
	engine.ActionMove:                   movementPredicates,
	engine.ActionExplore:                explorePredicates,
	engine.ActionEnterSite:               enterSitePredicates,
	engine.ActionInteract:                interactPredicates,
	engine.ActionChallengeRampaging:      challengeRampagingPredicates,
	engine.ActionPlayCard:                playCardPredicates,
	engine.ActionPlayCardSideways:        playCardSidewaysPredicates,
	engine.ActionDeclareRest:             declareRestPredicates,
	engine.ActionCompleteRest:            completeRestPredicates,
	engine.ActionRecruitUnit:             recruitUnitPredicates,
	engine.ActionActivateUnit:            activateUnitPredicates,
	engine.ActionUseSkill:                useSkillPredicates,
	engine.ActionAnnounceEndOfRound:      announceEndOfRoundPredicates,
	engine.ActionEndTurn:                 endTurnPredicates,
	engine.ActionResolveChoice:           resolveChoicePredicates,
	engine.ActionDeclareAttackTargets:    declareAttackTargetsPredicates,
	engine.ActionAssignAttack:            assignAttackPredicates,
	engine.ActionUnassignAttack:          unassignAttackPredicates,
	engine.ActionFinalizeAttack:          finalizeAttackPredicates,
	engine.ActionBlock:                   blockPredicates,
	engine.ActionAssignDamage:            assignDamagePredicates,
	engine.ActionConvertInfluenceToBlock: convertInfluencePredicates,
	engine.ActionDeclareDefend:           declareDefendPredicates,
	engine.ActionApplyCumbersome:         applyCumbersomePredicates,
	engine.ActionConvertMoveToAttack:     convertMoveToAttackPredicates,
	engine.ActionSelectTactic:            selectTacticPredicates,
	engine.ActionPlunderVillage:          plunderVillagePredicates,
	engine.ActionDebugAddFame:            debugPredicates,
	engine.ActionDebugTriggerLevelUp:     debugPredicates,
	engine.ActionUndo:                    undoPredicates,
}

// Validate runs the ordered predicate list for a.Kind and returns the
// first failing Rejection, or nil if every predicate passed. An a.Kind
// with no registered validator is rejected with CodeUnknownAction.
func Validate(state *engine.GameState, cat *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	preds, ok := Validators[a.Kind]
	if !ok {
		return reject("unknown-action", CodeUnknownAction, "no validator registered for this action kind")
	}
	for _, p := range preds {
		if r := p(state, cat, playerID, a); r != nil {
			return r
		}
	}
	return nil
}
