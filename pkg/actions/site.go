package actions

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"

	"github.com/google/uuid"
)

// doEnterSite resolves the action of stepping onto a site hex: most
// site kinds are a no-op beyond the move itself, but dungeons, tombs,
// and monster dens hold a defending garrison that must be fought
// before the site can be used.
func doEnterSite(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	p, idx := state.PlayerByID(ctx.PlayerID)
	site, ok := state.Map.SiteAt(p.Position)
	if !ok {
		return state, nil, false, engine.NewInternal("no site at player position", nil)
	}
	def, err := ctx.Cat.Site(site.SiteDefID)
	if err != nil {
		return state, nil, false, engine.NewInternal("site definition missing", err)
	}

	state.Players[idx].Flags.HasActed = true

	switch def.Kind {
	case catalog.SiteDungeon, catalog.SiteTomb, catalog.SiteMonsterDen:
		cctx := engine.ContextStandard
		if def.Kind == catalog.SiteDungeon || def.Kind == catalog.SiteTomb {
			cctx = engine.ContextDungeon
		}
		hexCopy := p.Position
		combat, events := startCombat(&state, ctx, site.RampagingEnemyIDs, cctx, def.Fortified, nil, &hexCopy)
		state.Combat = &combat
		state.Players[idx].Flags.HasCombatted = true
		return state, events, true, nil
	case catalog.SiteMonastery:
		if ctx.Action.Bool("burn") {
			newRep, clamped := engine.ClampReputation(state.Players[idx].Reputation - 1)
			state.Players[idx].Reputation = newRep

			hexCopy := p.Position
			combat, events := startCombat(&state, ctx, site.RampagingEnemyIDs, engine.ContextBurnMonastery, false, nil, &hexCopy)
			state.Combat = &combat
			state.Players[idx].Flags.HasCombatted = true
			events = append([]engine.Event{
				engine.NewEvent(engine.EventReputationChanged, ctx.PlayerID).With("delta", -1).With("clamped", clamped).With("new_value", newRep),
			}, events...)
			return state, events, true, nil
		}
		ev := engine.NewEvent(engine.EventInteractionDone, ctx.PlayerID).With("site_def_id", site.SiteDefID).With("entered", true)
		return state, []engine.Event{ev}, true, nil
	default:
		ev := engine.NewEvent(engine.EventInteractionDone, ctx.PlayerID).With("site_def_id", site.SiteDefID).With("entered", true)
		return state, []engine.Event{ev}, true, nil
	}
}

// doInteract spends influence to heal wound cards out of the player's
// hand at a healing-capable site. The first interaction of a player's
// turn gets one free point of healing cost, matching the
// first-interaction-of-turn bonus tracked on TurnFlags.
func doInteract(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	p, idx := state.PlayerByID(ctx.PlayerID)
	site, ok := state.Map.SiteAt(p.Position)
	if !ok {
		return state, nil, false, engine.NewInternal("no site at player position", nil)
	}
	def, err := ctx.Cat.Site(site.SiteDefID)
	if err != nil {
		return state, nil, false, engine.NewInternal("site definition missing", err)
	}

	wounds := ctx.Action.Int("wounds")
	if wounds <= 0 {
		wounds = 1
	}

	costPerWound := def.HealingCost
	bonus := 0
	if !state.Players[idx].Flags.InteractionBonusUsed {
		bonus = 1
		state.Players[idx].Flags.InteractionBonusUsed = true
	}
	totalCost := costPerWound*wounds - bonus
	if totalCost < 0 {
		totalCost = 0
	}
	state.Players[idx].Influence -= totalCost

	healed := 0
	hand := state.Players[idx].Hand
	for i := 0; i < len(hand) && healed < wounds; i++ {
		if hand[i] != "card_wound" {
			continue
		}
		state.Players[idx].Discard = append(state.Players[idx].Discard, "card_wound")
		hand = append(hand[:i], hand[i+1:]...)
		i--
		healed++
	}
	state.Players[idx].Hand = hand
	state.Players[idx].Flags.WoundsHealedThisTurn += healed

	if def.Kind == catalog.SiteVillage {
		site.Plundered = true
		state.Map.Sites[p.Position.String()] = site
	}

	state.Players[idx].Flags.HasActed = true
	events := []engine.Event{engine.NewEvent(engine.EventInteractionDone, ctx.PlayerID).With("site_def_id", site.SiteDefID).With("wounds_healed", healed).With("cost_paid", totalCost)}
	drewCards := false
	if healed > 0 && drawOnHealActive(state.Modifiers, ctx.PlayerID) {
		drawEvents := drawCardsForPlayer(&state, ctx.PlayerID, idx, healed)
		events = append(events, drawEvents...)
		drewCards = len(drawEvents) > 0
	}
	return state, events, !drewCards, nil
}

// doPlunderVillage raids the village at the player's hex at the start
// of their turn: two cards drawn, one reputation lost, and the village
// marked plundered for the rest of the round. Drawing is a checkpoint,
// so the command is never reversible.
func doPlunderVillage(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	p, idx := state.PlayerByID(ctx.PlayerID)
	site, ok := state.Map.SiteAt(p.Position)
	if !ok {
		return state, nil, false, engine.NewInternal("no site at player position", nil)
	}

	site.Plundered = true
	state.Map.Sites[p.Position.String()] = site

	newRep, clamped := engine.ClampReputation(state.Players[idx].Reputation - 1)
	state.Players[idx].Reputation = newRep

	events := []engine.Event{
		engine.NewEvent(engine.EventVillagePlundered, ctx.PlayerID).With("site_def_id", site.SiteDefID).With("hex", p.Position),
		engine.NewEvent(engine.EventReputationChanged, ctx.PlayerID).With("delta", -1).With("clamped", clamped).With("new_value", newRep),
	}
	events = append(events, drawCardsForPlayer(&state, ctx.PlayerID, idx, 2)...)
	return state, events, false, nil
}

// doRecruitUnit hires one unit from the current unit offer, spending
// influence at its effective (discount-adjusted) cost. Consumes a
// shared offer slot, so — like exploring a tile — it is never
// reversible.
func doRecruitUnit(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	unitID := ctx.Action.Str("unit_id")
	def, err := ctx.Cat.Unit(unitID)
	if err != nil {
		return state, nil, false, engine.NewInternal("unit definition missing", err)
	}

	cost := engine.EffectiveRecruitCost(state.Modifiers, ctx.PlayerID, def.InfluenceRequirement)
	state.Players[idx].Influence -= cost

	offers := state.Offers[engine.OfferUnit]
	for i, id := range offers {
		if id == unitID {
			state.Offers[engine.OfferUnit] = append(offers[:i], offers[i+1:]...)
			break
		}
	}

	state.Players[idx].Units = append(state.Players[idx].Units, engine.OwnedUnit{
		InstanceID: uuid.NewString(),
		UnitID:     unitID,
		State:      engine.UnitReady,
	})
	state.Players[idx].Flags.HasActed = true

	ev := engine.NewEvent(engine.EventUnitRecruited, ctx.PlayerID).With("unit_id", unitID).With("cost", cost)
	return state, []engine.Event{ev}, false, nil
}
