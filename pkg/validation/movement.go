package validation

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

// targetHexPresent rejects a move action with no "to" hex param at
// all, distinguishing a malformed request from a
// legitimately-too-far one.
func targetHexPresent(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	if _, ok := a.Params["to"]; !ok {
		return reject("targetHexPresent", CodeNoTargetHex, "move requires a target hex")
	}
	return nil
}

func moveTargetAdjacent(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("moveTargetAdjacent", CodeNotYourTurn, "unknown player")
	}
	to := a.Hex("to")
	if !p.Position.IsAdjacent(to) {
		return reject("moveTargetAdjacent", CodeNotAdjacent, "move target is not adjacent to the player's position")
	}
	return nil
}

// moveNotBlockedByRampaging rejects entering a hex occupied by a
// rampaging enemy directly: such a hex is never enterable, only
// provoke-able from an adjacent hex.
func moveNotBlockedByRampaging(state *engine.GameState, _ *catalog.Catalog, _ string, a engine.Action) *Rejection {
	to := a.Hex("to")
	if site, ok := state.Map.SiteAt(to); ok && len(site.RampagingEnemyIDs) > 0 {
		return reject("moveNotBlockedByRampaging", CodeBlockedByRampaging, "hex is occupied by a rampaging enemy and cannot be entered directly")
	}
	return nil
}

// moveCityEntryAllowed rejects entering an unconquered city hex when
// the player can no longer fight the mandatory assault this turn.
// Entering an unconquered city always triggers an assault (handled by
// the executor's fortified-assault path), so entry is only refused
// when that assault could not happen; a conquered city is an ordinary
// hex.
func moveCityEntryAllowed(state *engine.GameState, cat *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	to := a.Hex("to")
	site, ok := state.Map.SiteAt(to)
	if !ok || site.SiteDefID == "" {
		return nil
	}
	def, err := cat.Site(site.SiteDefID)
	if err != nil || def.Kind != catalog.SiteCity {
		return nil
	}
	if site.OwnerPlayerID != "" {
		return nil
	}
	p, _ := state.PlayerByID(playerID)
	if p != nil && p.Flags.HasCombatted {
		return reject("moveCityEntryAllowed", CodeCityEntryForbidden, "an unconquered city can only be entered by assault, and the player has already fought this turn")
	}
	return nil
}

func moveNotForbiddenAfterAction(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p != nil && p.Flags.MoveForbidden {
		return reject("moveNotForbiddenAfterAction", CodeAlreadyActed, "movement is forbidden for the remainder of this turn")
	}
	return nil
}

// enoughMoveForDestination rejects a move whose effective terrain cost
// exceeds the player's remaining move points. A destination hex not
// yet covered by any placed tile is left to the executor to report as
// an internal precondition violation rather than rejected here.
func enoughMoveForDestination(state *engine.GameState, cat *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return nil
	}
	to := a.Hex("to")
	terrain, ok := cat.TerrainAt(&state.Map, to)
	if !ok {
		return nil
	}
	cost := engine.EffectiveTerrainCost(state.Modifiers, playerID, string(terrain), catalog.BaseTerrainCost(terrain))
	if p.Move < cost {
		return reject("enoughMoveForDestination", CodeNotEnoughMove, "not enough move points to enter this hex")
	}
	return nil
}

// movementPredicates is the ordered predicate list for the move action
// kind: turn predicates first, then movement-specific checks.
var movementPredicates = append(append([]Predicate{}, commonTurnPredicates...),
	notAlreadyRestingThisTurn,
	moveNotForbiddenAfterAction,
	targetHexPresent,
	moveTargetAdjacent,
	moveNotBlockedByRampaging,
	moveCityEntryAllowed,
	enoughMoveForDestination,
)

func exploreEdgePresent(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("exploreEdgePresent", CodeNotYourTurn, "unknown player")
	}
	if _, ok := a.Params["edge"]; !ok {
		return reject("exploreEdgePresent", CodeNoExploreEdge, "explore requires an edge hex")
	}
	if len(state.Map.UndrawnTiles) == 0 {
		return reject("exploreEdgePresent", CodeDeckEmpty, "no tiles remain to explore")
	}
	return nil
}

var explorePredicates = append(append([]Predicate{}, commonTurnPredicates...),
	notAlreadyRestingThisTurn,
	moveNotForbiddenAfterAction,
	exploreEdgePresent,
)
