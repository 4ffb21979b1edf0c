package actions

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

// baseHandLimit is a hero's hand limit before any modifier adjusts it.
const baseHandLimit = 5

// sourceDieColors is the six-sided shared-source die's face-to-color
// wheel, rolled fresh for every die at round transition.
var sourceDieColors = []string{"white", "red", "green", "blue", "gold", "black"}

// doEndTurn closes out the acting player's turn: it returns their
// borrowed source color (if any) as a crystal, expires their
// turn-duration modifiers, resets their per-turn accumulators, and
// either hands the turn to the next player or — once every player has
// taken their final turn following an announcement — closes out the
// round or the scenario.
func doEndTurn(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	p, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}

	if p.Flags.BorrowedSourceColor != "" {
		modifyCrystal(&state.Players[idx], p.Flags.BorrowedSourceColor, 1)
	}

	state.Modifiers = expireTurnModifiersForPlayer(state.Modifiers, ctx.PlayerID)

	// played cards leave the play area for the discard pile, where they
	// wait for the round transition's reshuffle.
	state.Players[idx].Discard = append(state.Players[idx].Discard, state.Players[idx].PlayArea...)
	state.Players[idx].PlayArea = nil

	for i := range state.Players[idx].Skills {
		state.Players[idx].Skills[i].UsedThisTurn = false
	}

	state.Players[idx].Move = 0
	state.Players[idx].AttackPools = nil
	state.Players[idx].BlockPools = nil
	state.Players[idx].PureMana = nil
	state.Players[idx].Flags = engine.TurnFlags{}

	events := []engine.Event{engine.NewEvent(engine.EventTurnEnded, ctx.PlayerID)}

	if state.FinalTurnsActive {
		if state.FinalTurnTaken == nil {
			state.FinalTurnTaken = map[string]bool{}
		}
		state.FinalTurnTaken[ctx.PlayerID] = true

		if allFinalTurnsTaken(&state) {
			events = append(events, endRoundOrScenario(&state, ctx)...)
			return state, events, false, nil
		}
	}

	state.CurrentTurn = (idx + 1) % len(state.Players)
	return state, events, true, nil
}

// doAnnounceEndOfRound declares that the current round ends once every
// other player has taken one more turn. It does not itself end the
// announcing player's turn — play continues normally until they
// end-turn like any other player.
func doAnnounceEndOfRound(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	state.AnnouncedEndOfRound = ctx.PlayerID
	state.FinalTurnsActive = true
	ev := engine.NewEvent(engine.EventEndOfRoundAnnounced, ctx.PlayerID)
	return state, []engine.Event{ev}, true, nil
}

// expireTurnModifiersForPlayer drops turn-duration modifiers created by
// playerID; a turn-duration modifier belongs to the turn of the player
// who created it, not to every player's turn alike.
func expireTurnModifiersForPlayer(mods []engine.Modifier, playerID string) []engine.Modifier {
	out := make([]engine.Modifier, 0, len(mods))
	for _, m := range mods {
		if m.Duration == engine.DurationTurn && m.CreatingPlayerID == playerID {
			continue
		}
		out = append(out, m)
	}
	return out
}

// allFinalTurnsTaken reports whether every player has completed their
// final turn since the last end-of-round announcement.
func allFinalTurnsTaken(state *engine.GameState) bool {
	for _, p := range state.Players {
		if !state.FinalTurnTaken[p.ID] {
			return false
		}
	}
	return true
}

// endRoundOrScenario is called once every player's final turn has
// resolved: it ends the scenario outright if ScenarioEnded was already
// flagged (this was the last round), otherwise it runs a normal round
// transition.
func endRoundOrScenario(state *engine.GameState, ctx Context) []engine.Event {
	if state.ScenarioEnded {
		return []engine.Event{engine.NewEvent(engine.EventGameEnded, ctx.PlayerID)}
	}
	return performRoundTransition(state, ctx)
}

// performRoundTransition advances the round counter, toggles day/night,
// rerolls the shared source dice, readies every unit (including
// wounded ones), reshuffles and redraws every player's hand, refreshes
// the shared offers, reveals any newly-dawned ruins tokens, clears
// every village's plundered mark, and clears the end-of-round
// bookkeeping so normal play resumes with player zero.
func performRoundTransition(state *engine.GameState, ctx Context) []engine.Event {
	state.RoundPhase = engine.PhaseEndOfRoundTransition
	endedRound := state.Round

	state.Round++
	if state.TimeOfDay == engine.Day {
		state.TimeOfDay = engine.Night
	} else {
		state.TimeOfDay = engine.Day
	}
	rerollSourceDice(state)

	var events []engine.Event
	for i := range state.Players {
		if readyAllUnits(&state.Players[i]) > 0 {
			events = append(events, engine.NewEvent(engine.EventUnitsReadied, state.Players[i].ID))
		}
		events = append(events, reshuffleAndDraw(state, i)...)
		state.Players[i].TacticID = ""
		for j := range state.Players[i].Skills {
			state.Players[i].Skills[j].UsedThisRound = false
		}
	}

	events = append(events, refreshOffers(state, ctx)...)
	events = append(events, revealRuinsTokens(state)...)

	for key, site := range state.Map.Sites {
		if site.Plundered {
			site.Plundered = false
			state.Map.Sites[key] = site
		}
	}

	state.AnnouncedEndOfRound = ""
	state.FinalTurnsActive = false
	state.FinalTurnTaken = nil
	state.CurrentTurn = 0
	// A round opens with tactics selection when there are tactics to
	// choose from; scenarios run without tactic cards go straight to
	// play.
	if len(state.Offers[engine.OfferTactic]) > 0 {
		state.RoundPhase = engine.PhaseTacticsSelection
	} else {
		state.RoundPhase = engine.PhasePlay
	}

	events = append(events,
		engine.NewEvent(engine.EventRoundEnded, "").With("round", endedRound),
		engine.NewEvent(engine.EventNewRoundStarted, "").With("round", state.Round).With("time_of_day", string(state.TimeOfDay)),
	)
	return events
}

// rerollSourceDice re-rolls the shared source die pool, keeping
// whatever count was already in play (or player-count-plus-one if the
// pool was never seeded).
func rerollSourceDice(state *engine.GameState) {
	n := len(state.SourceDice)
	if n == 0 {
		n = len(state.Players) + 1
	}
	dice := make([]string, n)
	rng := state.RNG
	for i := 0; i < n; i++ {
		face, next := rng.RollDie(len(sourceDieColors))
		rng = next
		dice[i] = sourceDieColors[face-1]
	}
	state.RNG = rng
	state.SourceDice = dice
}

// readyAllUnits sets every one of p's owned units, including wounded
// ones, back to ready — units only stay spent/wounded within a round.
// Returns how many units changed state.
func readyAllUnits(p *engine.Player) int {
	n := 0
	for i := range p.Units {
		if p.Units[i].State != engine.UnitReady {
			n++
		}
		p.Units[i].State = engine.UnitReady
	}
	return n
}

// reshuffleAndDraw pools a player's hand, deck, discard, and any
// still-unflushed play area back together, shuffles the pool, and deals
// a fresh hand up to their effective hand limit — any surplus stays in
// the deck rather than being forced into hand.
func reshuffleAndDraw(state *engine.GameState, idx int) []engine.Event {
	p := &state.Players[idx]
	pool := append(append([]string(nil), p.Hand...), p.Deck...)
	pool = append(append(pool, p.Discard...), p.PlayArea...)
	p.Discard = nil
	p.PlayArea = nil
	shuffled, rng := state.RNG.Shuffle(pool)
	state.RNG = rng

	limit := engine.EffectiveHandLimit(state.Modifiers, p.ID, baseHandLimit)
	if limit > len(shuffled) {
		limit = len(shuffled)
	}
	p.Hand = append([]string(nil), shuffled[:limit]...)
	p.Deck = append([]string(nil), shuffled[limit:]...)

	return []engine.Event{
		engine.NewEvent(engine.EventDecksReshuffled, p.ID).
			With("hand_size", len(p.Hand)).
			With("deck_size", len(p.Deck)),
	}
}

// offerReservoirs pairs each shared offer with the reservoir it draws
// replacements from.
var offerReservoirs = []struct {
	offer     engine.OfferKind
	reservoir engine.Reservoir
}{
	{engine.OfferUnit, engine.ReservoirUnits},
	{engine.OfferSpell, engine.ReservoirSpells},
	{engine.OfferAdvancedAction, engine.ReservoirAdvancedActions},
	{engine.OfferTactic, engine.ReservoirTactics},
}

// refreshOffers tops up each shared offer to its target size from the
// matching reservoir, drawing from the back of the reservoir slice
// (DrawCard's contract) until the target is met or the reservoir runs
// dry.
func refreshOffers(state *engine.GameState, ctx Context) []engine.Event {
	if state.Offers == nil {
		state.Offers = map[engine.OfferKind][]string{}
	}
	if state.Reservoirs == nil {
		state.Reservoirs = map[engine.Reservoir][]string{}
	}

	var events []engine.Event
	for _, k := range offerReservoirs {
		target := targetOfferSize(state, ctx, k.offer)
		offer := state.Offers[k.offer]
		reservoir := state.Reservoirs[k.reservoir]

		drawn := 0
		for len(offer) < target {
			id, rest, ok := engine.DrawCard(reservoir)
			if !ok {
				break
			}
			reservoir = rest
			offer = append(offer, id)
			drawn++
		}

		state.Offers[k.offer] = offer
		state.Reservoirs[k.reservoir] = reservoir
		if drawn > 0 {
			events = append(events, engine.NewEvent(engine.EventCardsDrawn, "").
				With("offer", string(k.offer)).
				With("count", drawn))
		}
	}
	return events
}

// targetOfferSize returns how many cards a given offer should hold
// after refresh. The unit offer grows by one slot per unburned
// monastery on the board; the tactic offer scales with player count.
func targetOfferSize(state *engine.GameState, ctx Context, kind engine.OfferKind) int {
	switch kind {
	case engine.OfferUnit:
		return 4 + countUnburnedMonasteries(state, ctx)
	case engine.OfferTactic:
		return len(state.Players) + 2
	default:
		return 3
	}
}

func countUnburnedMonasteries(state *engine.GameState, ctx Context) int {
	n := 0
	for _, s := range state.Map.Sites {
		def, err := ctx.Cat.Site(s.SiteDefID)
		if err != nil || def.Kind != catalog.SiteMonastery {
			continue
		}
		if !s.Burned {
			n++
		}
	}
	return n
}

// revealRuinsTokens flips every still-hidden ruins token face-up once
// dawn arrives; ruins stay hidden through the night they were
// discovered.
func revealRuinsTokens(state *engine.GameState) []engine.Event {
	if state.TimeOfDay != engine.Day {
		return nil
	}
	var events []engine.Event
	for key, s := range state.Map.Sites {
		if s.RuinsTokenID == "" || s.RuinsFaceUp {
			continue
		}
		s.RuinsFaceUp = true
		state.Map.Sites[key] = s
		events = append(events, engine.NewEvent(engine.EventRuinsTokenRevealed, "").
			With("hex", s.Hex).
			With("ruins_token_id", s.RuinsTokenID))
	}
	return events
}
