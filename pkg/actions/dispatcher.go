// Package actions is the command executor: a reducer that validates,
// then applies, a player action against an immutable GameState,
// producing a new GameState, an ordered event log, and — for
// reversible commands — an undo-stack entry.
//
// Commands are pure (state, action) -> (state, events) functions
// rather than mutations of shared session state: the engine holds no
// hidden mutable state of its own, which keeps replays deterministic
// and lets undo restore a prior snapshot without compensating logic.
package actions

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/config"
	"hexmarch/pkg/engine"
	"hexmarch/pkg/legal"
	"hexmarch/pkg/metrics"
	"hexmarch/pkg/validation"

	"github.com/sirupsen/logrus"
)

// Context carries the read-only inputs every command needs beyond the
// state itself: the static catalog, engine tunables, the acting
// player, and the submitted action.
type Context struct {
	Cat      *catalog.Catalog
	Config   config.Config
	PlayerID string
	Action   engine.Action
}

// commandFunc executes one action kind against state, returning the
// new state, the events it produced, whether the command is
// reversible, and any execution-time error (a catalog miss or state
// corruption, surfaced as *engine.Internal — never a validation
// rejection, which is caught earlier by the validator).
type commandFunc func(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error)

// registry maps each action kind to its command function. Built once
// at package init and never mutated, matching the catalog's read-only
// table contract.
var registry = map[engine.ActionKind]commandFunc{
	engine.ActionMove:                   doMove,
	engine.ActionExplore:                doExplore,
	engine.ActionEnterSite:              doEnterSite,
	engine.ActionInteract:               doInteract,
	engine.ActionChallengeRampaging:     doChallengeRampaging,
	engine.ActionPlayCard:               doPlayCard,
	engine.ActionPlayCardSideways:       doPlayCardSideways,
	engine.ActionDeclareRest:            doDeclareRest,
	engine.ActionCompleteRest:           doCompleteRest,
	engine.ActionRecruitUnit:            doRecruitUnit,
	engine.ActionActivateUnit:           doActivateUnit,
	engine.ActionUseSkill:               doUseSkill,
	engine.ActionAnnounceEndOfRound:     doAnnounceEndOfRound,
	engine.ActionEndTurn:                doEndTurn,
	engine.ActionResolveChoice:          doResolveChoice,
	engine.ActionDeclareAttackTargets:   doDeclareAttackTargets,
	engine.ActionAssignAttack:           doAssignAttack,
	engine.ActionUnassignAttack:         doUnassignAttack,
	engine.ActionFinalizeAttack:         doFinalizeAttack,
	engine.ActionBlock:                  doBlock,
	engine.ActionAssignDamage:           doAssignDamage,
	engine.ActionConvertInfluenceToBlock: doConvertInfluenceToBlock,
	engine.ActionDeclareDefend:           doDeclareDefend,
	engine.ActionApplyCumbersome:         doApplyCumbersome,
	engine.ActionConvertMoveToAttack:     doConvertMoveToAttack,
	engine.ActionSelectTactic:            doSelectTactic,
	engine.ActionPlunderVillage:          doPlunderVillage,
	engine.ActionDebugAddFame:            doDebugAddFame,
	engine.ActionDebugTriggerLevelUp:     doDebugTriggerLevelUp,
}

// Dispatcher wires validate -> execute -> undo bookkeeping ->
// re-enumerate for every Submit call. It owns no mutable state of its
// own beyond its catalog reference and configuration, both read-only.
type Dispatcher struct {
	Cat    *catalog.Catalog
	Config config.Config
	Log    *logrus.Logger
	// Metrics is optional Prometheus instrumentation; a nil Metrics is
	// always safe, so hosts that don't care about observability never
	// need to wire anything here.
	Metrics *metrics.Recorder
}

// NewDispatcher builds a Dispatcher against cat with default
// configuration and a logrus.New() logger (stderr, Info level, so
// Submit's Debug lines are not printed). Callers wire their
// own via d.Log = ... for production use; the logger is an injected
// *logrus.Logger rather than a package global so concurrent engine
// instances never share logging state.
func NewDispatcher(cat *catalog.Catalog) *Dispatcher {
	return &Dispatcher{Cat: cat, Config: config.Default(), Log: logrus.New()}
}

// Result is what Submit returns on every call, success or failure.
type Result struct {
	State        engine.GameState
	Events       []engine.Event
	ValidActions legal.LegalActions
	Err          error
}

// Submit is the engine's single external entry point: it validates the
// action, executes it if valid, records it on the undo stack, and
// recomputes legal actions for the acting player. Modifier expiry is
// not applied here: the commands that end a turn or a combat expire
// modifiers themselves.
func (d *Dispatcher) Submit(state engine.GameState, playerID string, a engine.Action) Result {
	d.Log.WithFields(logrus.Fields{"function": "Submit", "package": "actions", "action": a.Kind, "player": playerID}).Debug("submitting action")

	if a.Kind == engine.ActionUndo {
		return d.submitUndo(state, playerID, a)
	}

	if rej := validation.Validate(&state, d.Cat, playerID, a); rej != nil {
		d.Metrics.RecordAction(string(a.Kind), "rejected")
		return Result{State: state, Err: rej}
	}

	cmd, ok := registry[a.Kind]
	if !ok {
		return Result{State: state, Err: engine.NewInternal("no command registered for action kind "+string(a.Kind), nil)}
	}

	pre := state.Clone()
	next, events, reversible, err := cmd(state.Clone(), Context{Cat: d.Cat, Config: d.Config, PlayerID: playerID, Action: a})
	if err != nil {
		d.Metrics.RecordAction(string(a.Kind), "error")
		return Result{State: state, Err: err}
	}
	d.Metrics.RecordAction(string(a.Kind), "ok")
	for _, ev := range events {
		d.Metrics.RecordEvent(string(ev.Type))
		if ev.Type == engine.EventCombatEnded {
			victory, _ := ev.Fields["victory"].(bool)
			d.Metrics.RecordCombatEnded(victory)
		}
	}

	if reversible {
		entry := engine.UndoEntry{CommandKind: string(a.Kind), PlayerID: playerID, PreState: pre}
		next.UndoStack = append(append([]engine.UndoEntry(nil), next.UndoStack...), entry)
		if d.Config.MaxUndoDepth > 0 && len(next.UndoStack) > d.Config.MaxUndoDepth {
			next.UndoStack = next.UndoStack[len(next.UndoStack)-d.Config.MaxUndoDepth:]
		}
	} else {
		next.UndoStack = nil
	}

	next.Version = state.Version + 1

	return Result{
		State:        next,
		Events:       events,
		ValidActions: legal.Compute(&next, d.Cat, playerID),
	}
}

// submitUndo pops the top undo-stack entry and restores its
// pre-execution snapshot. Validation for undo (stack non-empty, top
// entry belongs to this player) is run first like any other action.
func (d *Dispatcher) submitUndo(state engine.GameState, playerID string, a engine.Action) Result {
	if rej := validation.Validate(&state, d.Cat, playerID, a); rej != nil {
		return Result{State: state, Err: rej}
	}
	top := state.UndoStack[len(state.UndoStack)-1]
	restored := top.PreState
	restored.UndoStack = append([]engine.UndoEntry(nil), state.UndoStack[:len(state.UndoStack)-1]...)
	restored.Version = state.Version + 1

	d.Metrics.RecordUndo()
	events := []engine.Event{engine.NewEvent(engine.EventUndoApplied, playerID).With("command_kind", top.CommandKind)}
	if top.CommandKind == string(engine.ActionMove) {
		events = append(events, engine.NewEvent(engine.EventMoveUndone, playerID))
	}
	return Result{
		State:        restored,
		Events:       events,
		ValidActions: legal.Compute(&restored, d.Cat, playerID),
	}
}
