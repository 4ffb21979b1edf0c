package actions

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

// doMove applies a single-hex move: deduct effective terrain cost,
// update position, and check the two hex-entry triggers — fortified
// assault and provoking rampaging — before either of which the plain
// move event is already final.
func doMove(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	p, idx := state.PlayerByID(ctx.PlayerID)
	if p == nil {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}
	from := p.Position
	to := ctx.Action.Hex("to")

	terrain, ok := ctx.Cat.TerrainAt(&state.Map, to)
	if !ok {
		return state, nil, false, engine.NewInternal("destination hex has no resolvable terrain", nil)
	}
	cost := engine.EffectiveTerrainCost(state.Modifiers, ctx.PlayerID, string(terrain), catalog.BaseTerrainCost(terrain))

	state.Players[idx].Move -= cost
	state.Players[idx].Position = to
	state.Players[idx].Flags.HasMoved = true

	events := []engine.Event{
		engine.NewEvent(engine.EventPlayerMoved, ctx.PlayerID).With("from", from).With("to", to).With("cost", cost),
	}

	if site, ok := state.Map.SiteAt(to); ok && site.SiteDefID != "" {
		def, err := ctx.Cat.Site(site.SiteDefID)
		if err != nil {
			return state, nil, false, engine.NewInternal("site definition missing", err)
		}
		needsAssault := def.Fortified && site.OwnerPlayerID != ctx.PlayerID
		if needsAssault {
			newRep, clamped := engine.ClampReputation(state.Players[idx].Reputation - 1)
			state.Players[idx].Reputation = newRep
			events = append(events, engine.NewEvent(engine.EventReputationChanged, ctx.PlayerID).With("delta", -1).With("clamped", clamped).With("new_value", newRep))

			originCopy := from
			destCopy := to
			combat, combatEvents := startCombat(&state, ctx, site.RampagingEnemyIDs, engine.ContextAssault, true, &originCopy, &destCopy)
			state.Combat = &combat
			state.Players[idx].Flags.HasCombatted = true
			state.Players[idx].Flags.MoveForbidden = true
			events = append(events, combatEvents...)
			return state, events, true, nil
		}
	}

	for _, n := range from.Neighbors() {
		if n == to || !n.IsAdjacent(to) {
			continue
		}
		site, ok := state.Map.SiteAt(n)
		if !ok || len(site.RampagingEnemyIDs) == 0 {
			continue
		}
		combat, combatEvents := startCombat(&state, ctx, site.RampagingEnemyIDs, engine.ContextStandard, false, nil, &n)
		state.Combat = &combat
		state.Players[idx].Flags.HasCombatted = true
		state.Players[idx].Flags.MoveForbidden = true
		events = append(events, engine.NewEvent(engine.EventCombatTriggered, ctx.PlayerID).With("reason", "provoke-rampaging").With("hex", n))
		events = append(events, combatEvents...)
		break
	}

	return state, events, true, nil
}

// doExplore draws the next undrawn tile and places it at the declared
// edge hex under the declared rotation. Tile reveal is a checkpoint —
// the command is never reversible.
func doExplore(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	edge := ctx.Action.Hex("edge")
	rotation := ctx.Action.Int("rotation")

	tileID, rest, ok := engine.DrawCard(state.Map.UndrawnTiles)
	if !ok {
		return state, nil, false, engine.NewInternal("undrawn tile deck unexpectedly empty", nil)
	}
	state.Map.UndrawnTiles = rest

	def, err := ctx.Cat.Tile(tileID)
	if err != nil {
		return state, nil, false, engine.NewInternal("tile definition missing", err)
	}

	state.Map.Tiles = append(state.Map.Tiles, engine.TilePlacement{TileDefID: tileID, Origin: edge, Rotation: rotation})

	if state.Map.Sites == nil {
		state.Map.Sites = map[string]engine.SiteOccupancy{}
	}
	for _, ps := range def.PreplacedSites {
		abs := rotatedPlacementOffset(ps.Offset, rotation, edge)
		state.Map.Sites[abs.String()] = engine.SiteOccupancy{SiteDefID: ps.SiteDefID, Hex: abs}
	}

	ev := engine.NewEvent(engine.EventTileRevealed, ctx.PlayerID).With("tile_id", tileID).With("origin", edge).With("rotation", rotation)
	return state, []engine.Event{ev}, false, nil
}

// rotatedPlacementOffset resolves a tile-relative preplaced-site offset
// to an absolute hex given the tile's placed origin and rotation.
func rotatedPlacementOffset(offset engine.HexCoord, rotation int, origin engine.HexCoord) engine.HexCoord {
	rot := catalog.RotateOffset(offset, rotation)
	return engine.HexCoord{Q: origin.Q + rot.Q, R: origin.R + rot.R}
}
