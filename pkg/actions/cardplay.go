package actions

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"

	"github.com/google/uuid"
)

// doPlayCard resolves a basic or powered card play: pay its mana cost,
// move it to the play area (or destroy it outright, for artifacts
// tagged destroy-on-powered), and apply its effect list. Golden Grail
// carries no flat effect list — its behavior is reactive to wounds
// healed — so it is special-cased to the goldenGrail* functions below.
func doPlayCard(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}
	cardID := ctx.Action.Str("card_id")
	face := catalog.CardFace(ctx.Action.Str("face"))
	def, err := ctx.Cat.Card(cardID)
	if err != nil {
		return state, nil, false, engine.NewInternal("card definition missing", err)
	}

	removeFromHand(&state.Players[idx], cardID)
	payMana(&state.Players[idx], ctx.Action.StrSlice("payment_colors"))

	// a destroy-on-powered artifact leaves the game entirely; anything
	// else waits in the play area until end of turn.
	destroyed := def.DestroyOnPowered && face == catalog.FacePowered
	if !destroyed {
		state.Players[idx].PlayArea = append(state.Players[idx].PlayArea, cardID)
	}

	var events []engine.Event
	switch cardID {
	case "card_golden_grail":
		if face == catalog.FacePowered {
			events = goldenGrailPowered(&state, ctx, idx)
		} else {
			events = goldenGrailBasic(&state, ctx, idx)
		}
	default:
		effects := def.BasicEffects
		if face == catalog.FacePowered {
			effects = def.PoweredEffects
		}
		for _, eff := range effects {
			events = append(events, applyAtomicEffect(&state, ctx, idx, eff)...)
		}
	}

	playEv := engine.NewEvent(engine.EventCardPlayed, ctx.PlayerID).
		With("card_id", cardID).With("face", string(face)).With("destroyed", destroyed)
	events = append([]engine.Event{playEv}, events...)

	return state, events, !hasCheckpointEffect(events), nil
}

// hasCheckpointEffect reports whether events includes a card draw or a
// choice request — both checkpoints against hidden information, so a
// card play producing either is never reversible.
func hasCheckpointEffect(events []engine.Event) bool {
	for _, e := range events {
		if e.Type == engine.EventCardsDrawn || e.Type == engine.EventChoiceRequired {
			return true
		}
	}
	return false
}

// doPlayCardSideways applies a card's flat sideways value to the
// declared value type instead of resolving its basic/powered effects.
// Always reversible: sideways play touches no hidden information.
func doPlayCardSideways(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}
	cardID := ctx.Action.Str("card_id")
	def, err := ctx.Cat.Card(cardID)
	if err != nil {
		return state, nil, false, engine.NewInternal("card definition missing", err)
	}
	valueType := catalog.SidewaysValueType(ctx.Action.Str("value_type"))

	removeFromHand(&state.Players[idx], cardID)
	state.Players[idx].PlayArea = append(state.Players[idx].PlayArea, cardID)

	amount := def.SidewaysValue
	if amount <= 0 {
		amount = 1
	}

	switch valueType {
	case catalog.SidewaysMove:
		state.Players[idx].Move += amount
	case catalog.SidewaysInfluence:
		state.Players[idx].Influence += amount
	case catalog.SidewaysBlock:
		addToPool(&state.Players[idx].BlockPools, engine.PoolKey(engine.ValueBlock, engine.ElementPhysical), amount)
	case catalog.SidewaysAttack:
		kind := ctx.Action.Str("attack_kind")
		addToPool(&state.Players[idx].AttackPools, engine.AttackPoolKey(kind, engine.ElementPhysical), amount)
	}

	ev := engine.NewEvent(engine.EventCardPlayed, ctx.PlayerID).
		With("card_id", cardID).With("face", "sideways").With("value_type", string(valueType)).With("amount", amount)
	return state, []engine.Event{ev}, true, nil
}

// goldenGrailBasic heals every wound in hand and grants one fame per
// wound healed. The fame-tracking bookkeeping collapses to a direct
// fame grant: no fame-tracking modifier is created.
func goldenGrailBasic(state *engine.GameState, ctx Context, idx int) []engine.Event {
	healed := healAllWoundsFromHand(&state.Players[idx])
	state.Players[idx].Fame += healed
	events := []engine.Event{
		engine.NewEvent(engine.EventInteractionDone, ctx.PlayerID).With("wounds_healed", healed),
		engine.NewEvent(engine.EventFameChanged, ctx.PlayerID).With("delta", healed).With("new_value", state.Players[idx].Fame),
	}
	return append(events, levelUpEvents(&state.Players[idx], ctx.PlayerID)...)
}

// goldenGrailPowered heals every wound in hand, draws one card per
// wound healed, and leaves a draw-on-heal modifier active for the rest
// of the turn so later heals (from any source) also draw a card.
func goldenGrailPowered(state *engine.GameState, ctx Context, idx int) []engine.Event {
	healed := healAllWoundsFromHand(&state.Players[idx])
	events := []engine.Event{engine.NewEvent(engine.EventInteractionDone, ctx.PlayerID).With("wounds_healed", healed)}
	if healed > 0 {
		events = append(events, drawCardsForPlayer(state, ctx.PlayerID, idx, healed)...)
	}
	m := engine.Modifier{
		ID:               uuid.NewString(),
		Source:           "card_golden_grail",
		Duration:         engine.DurationTurn,
		Scope:            engine.ScopeSelf,
		Effect:           engine.EffectPayload{Kind: engine.EffectDrawOnHeal},
		CreationRound:    state.Round,
		CreatingPlayerID: ctx.PlayerID,
	}
	state.Modifiers = append(state.Modifiers, m)
	events = append(events, engine.NewEvent(engine.EventModifierAdded, ctx.PlayerID).With("modifier_id", m.ID).With("effect_kind", string(m.Effect.Kind)))
	return events
}

// applyAtomicEffect mutates state for one AtomicEffect and returns the
// events it produced, if any.
func applyAtomicEffect(state *engine.GameState, ctx Context, idx int, eff engine.AtomicEffect) []engine.Event {
	p := &state.Players[idx]
	switch eff.Kind {
	case engine.EffGainMove:
		p.Move += eff.Amount
	case engine.EffGainInfluence:
		p.Influence += eff.Amount
	case engine.EffGainAttack:
		addToPool(&p.AttackPools, engine.AttackPoolKey(eff.AttackKind, eff.Element), eff.Amount)
	case engine.EffGainBlock:
		addToPool(&p.BlockPools, engine.PoolKey(engine.ValueBlock, eff.Element), eff.Amount)
	case engine.EffGainHealing:
		healed := healWoundsFromHand(p, eff.Amount)
		return healEvents(ctx.PlayerID, healed, state, ctx, idx)
	case engine.EffRemoveWoundCards:
		healed := healWoundsFromHand(p, eff.Amount)
		return healEvents(ctx.PlayerID, healed, state, ctx, idx)
	case engine.EffDrawCards:
		return drawCardsForPlayer(state, ctx.PlayerID, idx, eff.Amount)
	case engine.EffModifyCrystal:
		modifyCrystal(p, eff.Color, eff.Amount)
	case engine.EffModifyFame:
		p.Fame += eff.Amount
		events := []engine.Event{engine.NewEvent(engine.EventFameChanged, ctx.PlayerID).With("delta", eff.Amount).With("new_value", p.Fame)}
		return append(events, levelUpEvents(p, ctx.PlayerID)...)
	case engine.EffModifyReputation:
		newRep, clamped := engine.ClampReputation(p.Reputation + eff.Amount)
		p.Reputation = newRep
		return []engine.Event{engine.NewEvent(engine.EventReputationChanged, ctx.PlayerID).With("delta", eff.Amount).With("clamped", clamped).With("new_value", newRep)}
	case engine.EffAddModifier:
		if eff.Modifier == nil {
			return nil
		}
		m := *eff.Modifier
		m.ID = uuid.NewString()
		m.CreationRound = state.Round
		m.CreatingPlayerID = ctx.PlayerID
		state.Modifiers = append(state.Modifiers, m)
		return []engine.Event{engine.NewEvent(engine.EventModifierAdded, ctx.PlayerID).With("modifier_id", m.ID).With("effect_kind", string(m.Effect.Kind))}
	case engine.EffSelectCombatEnemy:
		return requestChoice(p, ctx, eff, combatEnemyOptions(state))
	case engine.EffSelectUnit:
		return requestChoice(p, ctx, eff, unitOptions(p))
	}
	return nil
}

// healEvents heals wounds then, if a draw-on-heal modifier is active
// for the acting player, draws one card per wound healed.
func healEvents(playerID string, healed int, state *engine.GameState, ctx Context, idx int) []engine.Event {
	events := []engine.Event{engine.NewEvent(engine.EventInteractionDone, playerID).With("wounds_healed", healed)}
	if healed > 0 && drawOnHealActive(state.Modifiers, playerID) {
		events = append(events, drawCardsForPlayer(state, playerID, idx, healed)...)
	}
	return events
}

// drawOnHealActive reports whether playerID has an active draw-on-heal
// modifier.
func drawOnHealActive(mods []engine.Modifier, playerID string) bool {
	for _, m := range mods {
		if m.Effect.Kind == engine.EffectDrawOnHeal && m.Scope == engine.ScopeSelf && m.CreatingPlayerID == playerID {
			return true
		}
	}
	return false
}

// requestChoice installs a PendingChoice on p built from opts and
// returns the choice-required event. Callers building choices for
// select-combat-enemy/select-unit effects pass their own option set.
func requestChoice(p *engine.Player, ctx Context, eff engine.AtomicEffect, opts []engine.ChoiceOption) []engine.Event {
	p.PendingChoice = &engine.PendingChoice{
		ID:      uuid.NewString(),
		Source:  eff.Template,
		Options: opts,
	}
	return []engine.Event{engine.NewEvent(engine.EventChoiceRequired, ctx.PlayerID).With("source", eff.Template)}
}

func combatEnemyOptions(state *engine.GameState) []engine.ChoiceOption {
	if state.Combat == nil {
		return nil
	}
	opts := make([]engine.ChoiceOption, 0, len(state.Combat.Enemies))
	for _, e := range state.Combat.Enemies {
		if e.Defeated {
			continue
		}
		opts = append(opts, engine.ChoiceOption{ID: e.InstanceID, Label: e.EnemyDefID})
	}
	return opts
}

func unitOptions(p *engine.Player) []engine.ChoiceOption {
	opts := make([]engine.ChoiceOption, 0, len(p.Units))
	for _, u := range p.Units {
		opts = append(opts, engine.ChoiceOption{ID: u.InstanceID, Label: u.UnitID})
	}
	return opts
}

// removeFromHand splices the first occurrence of cardID out of p's
// hand.
func removeFromHand(p *engine.Player, cardID string) {
	for i, c := range p.Hand {
		if c == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

// healWoundsFromHand discards up to n wound cards from p's hand,
// returning the number actually healed.
func healWoundsFromHand(p *engine.Player, n int) int {
	healed := 0
	hand := p.Hand
	for i := 0; i < len(hand) && healed < n; i++ {
		if hand[i] != "card_wound" {
			continue
		}
		p.Discard = append(p.Discard, "card_wound")
		hand = append(hand[:i], hand[i+1:]...)
		i--
		healed++
	}
	p.Hand = hand
	p.Flags.WoundsHealedThisTurn += healed
	return healed
}

// healAllWoundsFromHand discards every wound card in p's hand.
func healAllWoundsFromHand(p *engine.Player) int {
	return healWoundsFromHand(p, len(p.Hand))
}

// drawCardsForPlayer draws up to n cards from the player's deck,
// reshuffling discard into deck via the shared RNG stream when the
// deck runs dry. Stops early (without error) if both run dry.
func drawCardsForPlayer(state *engine.GameState, playerID string, idx int, n int) []engine.Event {
	var drawn []string
	reshuffled := false
	for i := 0; i < n; i++ {
		if len(state.Players[idx].Deck) == 0 {
			if len(state.Players[idx].Discard) == 0 {
				break
			}
			shuffled, rng := state.RNG.Shuffle(state.Players[idx].Discard)
			state.RNG = rng
			state.Players[idx].Deck = shuffled
			state.Players[idx].Discard = nil
			reshuffled = true
		}
		id, rest, ok := engine.DrawCard(state.Players[idx].Deck)
		if !ok {
			break
		}
		state.Players[idx].Deck = rest
		state.Players[idx].Hand = append(state.Players[idx].Hand, id)
		drawn = append(drawn, id)
	}
	var events []engine.Event
	if reshuffled {
		events = append(events, engine.NewEvent(engine.EventDecksReshuffled, playerID))
	}
	if len(drawn) > 0 {
		events = append(events, engine.NewEvent(engine.EventCardsDrawn, playerID).With("count", len(drawn)))
	}
	return events
}

// modifyCrystal adjusts one basic-color crystal count, clamped to
// [0, 3]; any gain that would push the count past 3 instead becomes
// pure-mana tokens of that color, keeping the three-per-color crystal
// reserve invariant. Black and gold have no crystal reserve (they are
// die-roll or conversion only), so this is a no-op for those colors.
func modifyCrystal(p *engine.Player, color string, amount int) {
	clampGain := func(current, delta int) (newVal, overflow int) {
		total := current + delta
		if total < 0 {
			return 0, 0
		}
		if total > 3 {
			return 3, total - 3
		}
		return total, 0
	}
	var overflow int
	switch color {
	case "red":
		p.Crystals.Red, overflow = clampGain(p.Crystals.Red, amount)
	case "blue":
		p.Crystals.Blue, overflow = clampGain(p.Crystals.Blue, amount)
	case "white":
		p.Crystals.White, overflow = clampGain(p.Crystals.White, amount)
	case "green":
		p.Crystals.Green, overflow = clampGain(p.Crystals.Green, amount)
	default:
		return
	}
	for i := 0; i < overflow; i++ {
		p.PureMana = append(p.PureMana, color)
	}
}

// payMana deducts one mana source per declared payment color: unit-
// attached mana and pure mana (this turn's die/crystal conversions)
// are consumed before permanent crystal reserves.
func payMana(p *engine.Player, colors []string) {
	for _, c := range colors {
		if deductPureMana(p, c) {
			continue
		}
		if deductAttachedMana(p, c) {
			continue
		}
		modifyCrystal(p, c, -1)
	}
}

func deductPureMana(p *engine.Player, color string) bool {
	for i, c := range p.PureMana {
		if c == color {
			p.PureMana = append(p.PureMana[:i], p.PureMana[i+1:]...)
			return true
		}
	}
	return false
}

func deductAttachedMana(p *engine.Player, color string) bool {
	for ui := range p.Units {
		u := &p.Units[ui]
		for i, c := range u.AttachedMana {
			if c == color {
				u.AttachedMana = append(u.AttachedMana[:i], u.AttachedMana[i+1:]...)
				return true
			}
		}
	}
	return false
}

// addToPool increments the named key in *pool, initializing the map on
// first write.
func addToPool(pool *map[string]int, key string, amount int) {
	if *pool == nil {
		*pool = map[string]int{}
	}
	(*pool)[key] += amount
}
