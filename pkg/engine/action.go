package engine

// ActionKind tags the player-submitted action union. New action kinds
// are added here, never invented ad hoc by callers.
type ActionKind string

const (
	ActionMove                   ActionKind = "move"
	ActionExplore                ActionKind = "explore"
	ActionEnterSite              ActionKind = "enter-site"
	ActionInteract               ActionKind = "interact"
	ActionChallengeRampaging     ActionKind = "challenge-rampaging"
	ActionPlayCard               ActionKind = "play-card"
	ActionPlayCardSideways       ActionKind = "play-card-sideways"
	ActionDeclareRest            ActionKind = "declare-rest"
	ActionCompleteRest           ActionKind = "complete-rest"
	ActionRecruitUnit            ActionKind = "recruit-unit"
	ActionActivateUnit           ActionKind = "activate-unit"
	ActionUseSkill               ActionKind = "use-skill"
	ActionAnnounceEndOfRound     ActionKind = "announce-end-of-round"
	ActionEndTurn                ActionKind = "end-turn"
	ActionResolveChoice          ActionKind = "resolve-choice"
	ActionDeclareAttackTargets   ActionKind = "declare-attack-targets"
	ActionAssignAttack           ActionKind = "assign-attack"
	ActionUnassignAttack         ActionKind = "unassign-attack"
	ActionFinalizeAttack         ActionKind = "finalize-attack"
	ActionBlock                  ActionKind = "block"
	ActionAssignDamage           ActionKind = "assign-damage"
	ActionConvertInfluenceToBlock ActionKind = "convert-influence-to-block"
	ActionDeclareDefend          ActionKind = "declare-defend"
	ActionApplyCumbersome        ActionKind = "apply-cumbersome"
	ActionConvertMoveToAttack    ActionKind = "convert-move-to-attack"
	ActionSelectTactic           ActionKind = "select-tactic"
	ActionPlunderVillage         ActionKind = "plunder-village"
	ActionUndo                   ActionKind = "undo"

	// Debug action kinds are gated behind GameState.DevMode, a state
	// flag rather than a build flag, so a host can enable them per game.
	ActionDebugAddFame        ActionKind = "debug-add-fame"
	ActionDebugTriggerLevelUp ActionKind = "debug-trigger-level-up"
)

// Action is the tagged value a caller submits. Params is a flat bag
// keyed by semantic name, the same shape Event.Fields already uses —
// the action space has dozens of kinds with mostly-disjoint parameter
// sets, so one params map reads better here than dozens of near-empty
// structs.
type Action struct {
	Kind   ActionKind
	Params map[string]any
}

// NewAction builds an Action with an initialized Params map.
func NewAction(kind ActionKind) Action {
	return Action{Kind: kind, Params: map[string]any{}}
}

// With sets a param and returns the action, for fluent construction.
func (a Action) With(key string, value any) Action {
	a.Params[key] = value
	return a
}

// Hex reads a HexCoord param, defaulting to the zero value.
func (a Action) Hex(key string) HexCoord {
	if v, ok := a.Params[key].(HexCoord); ok {
		return v
	}
	return HexCoord{}
}

// Str reads a string param.
func (a Action) Str(key string) string {
	if v, ok := a.Params[key].(string); ok {
		return v
	}
	return ""
}

// Int reads an int param.
func (a Action) Int(key string) int {
	if v, ok := a.Params[key].(int); ok {
		return v
	}
	return 0
}

// Bool reads a bool param.
func (a Action) Bool(key string) bool {
	if v, ok := a.Params[key].(bool); ok {
		return v
	}
	return false
}

// StrSlice reads a []string param.
func (a Action) StrSlice(key string) []string {
	if v, ok := a.Params[key].([]string); ok {
		return v
	}
	return nil
}
