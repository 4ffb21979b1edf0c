package actions

import (
	"strconv"

	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"

	"github.com/google/uuid"
)

// enemyStatsFrom converts a catalog.EnemyDef into the engine-local
// EnemyStats the modifier queries operate on. It is a field-for-field
// copy of pkg/legal's EnemyStatsFrom.
func enemyStatsFrom(def catalog.EnemyDef) engine.EnemyStats {
	abilities := make([]string, len(def.Abilities))
	for i, a := range def.Abilities {
		abilities[i] = string(a)
	}
	return engine.EnemyStats{
		BaseArmor:     def.BaseArmor,
		BaseAttack:    def.BaseAttack,
		AttackElement: def.AttackElement,
		Resistances:   def.Resistances,
		Abilities:     abilities,
		DefendValue:   def.DefendValue,
		ElusiveArmor:  def.ElusiveArmor,
	}
}

// unitResists reports whether a unit definition lists a resistance to
// the given element.
func unitResists(def catalog.UnitDef, el engine.Element) bool {
	for _, r := range def.Resistances {
		if engine.Element(r) == el {
			return true
		}
	}
	return false
}

// startCombat builds a fresh CombatState from a list of enemy
// definition ids and clears the acting player's per-combat resistance
// flags, which are scoped to one combat instance rather than one turn.
func startCombat(state *engine.GameState, ctx Context, enemyDefIDs []string, cctx engine.CombatContext, isAtFortifiedSite bool, assaultOrigin *engine.HexCoord, combatHex *engine.HexCoord) (engine.CombatState, []engine.Event) {
	enemies := make([]engine.EnemyInstance, 0, len(enemyDefIDs))
	for _, defID := range enemyDefIDs {
		enemies = append(enemies, engine.EnemyInstance{
			InstanceID:          uuid.NewString(),
			EnemyDefID:          defID,
			RequiredForConquest: true,
			Attacking:           true,
		})
	}

	if p, idx := state.PlayerByID(ctx.PlayerID); p != nil {
		for i := range state.Players[idx].Units {
			state.Players[idx].Units[i].ResistanceUsed = nil
		}
		state.Players[idx].AttackPools = map[string]int{}
		state.Players[idx].BlockPools = map[string]int{}
	}

	cs := engine.CombatState{
		Phase:             engine.PhaseRangedSiege,
		Enemies:           enemies,
		Context:           cctx,
		IsAtFortifiedSite: isAtFortifiedSite,
		AssaultOrigin:     assaultOrigin,
		CombatHex:         combatHex,
	}

	ev := engine.NewEvent(engine.EventCombatStarted, ctx.PlayerID).
		With("context", string(cctx)).
		With("enemy_count", len(enemies)).
		With("fortified", isAtFortifiedSite)
	return cs, []engine.Event{ev}
}

// doChallengeRampaging voluntarily provokes combat against a rampaging
// garrison the player has not otherwise triggered by moving.
func doChallengeRampaging(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	hex := ctx.Action.Hex("hex")
	site, ok := state.Map.SiteAt(hex)
	if !ok {
		return state, nil, false, engine.NewInternal("challenged hex has no site occupancy", nil)
	}

	fortified := false
	if site.SiteDefID != "" {
		if def, err := ctx.Cat.Site(site.SiteDefID); err == nil {
			fortified = def.Fortified
		}
	}

	hexCopy := hex
	combat, events := startCombat(&state, ctx, site.RampagingEnemyIDs, engine.ContextStandard, fortified, nil, &hexCopy)
	state.Combat = &combat

	_, idx := state.PlayerByID(ctx.PlayerID)
	state.Players[idx].Flags.HasActed = true
	state.Players[idx].Flags.HasCombatted = true

	events = append([]engine.Event{engine.NewEvent(engine.EventCombatTriggered, ctx.PlayerID).With("reason", "challenge-rampaging").With("hex", hex)}, events...)
	return state, events, true, nil
}

// doDeclareAttackTargets locks the set of enemy instances the player's
// subsequent assign-attack calls may target this sub-phase.
func doDeclareAttackTargets(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	ids := ctx.Action.StrSlice("enemy_ids")
	declared := make(map[string]bool, len(ids))
	for _, id := range ids {
		declared[id] = true
	}
	state.Combat.DeclaredTargets = declared
	return state, nil, true, nil
}

// doAssignAttack moves amount points from the player's accumulated
// attack pool onto one enemy's pending damage.
func doAssignAttack(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	kind := ctx.Action.Str("attack_kind")
	el := engine.Element(ctx.Action.Str("element"))
	amount := ctx.Action.Int("amount")
	enemyID := ctx.Action.Str("enemy_id")

	key := engine.AttackPoolKey(kind, el)
	state.Players[idx].AttackPools[key] -= amount

	enemy, _ := state.Combat.EnemyByID(enemyID)
	if enemy == nil {
		return state, nil, false, engine.NewInternal("target enemy vanished between validation and execution", nil)
	}
	if enemy.PendingDamage == nil {
		enemy.PendingDamage = engine.ElementalDamage{}
	}
	enemy.PendingDamage[el] += amount

	ev := engine.NewEvent(engine.EventAttackAssigned, ctx.PlayerID).
		With("enemy_id", enemyID).With("attack_kind", kind).With("element", string(el)).With("amount", amount)
	return state, []engine.Event{ev}, true, nil
}

// doUnassignAttack reverses a prior assign-attack, returning the points
// to the player's pool.
func doUnassignAttack(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	kind := ctx.Action.Str("attack_kind")
	el := engine.Element(ctx.Action.Str("element"))
	amount := ctx.Action.Int("amount")
	enemyID := ctx.Action.Str("enemy_id")

	enemy, _ := state.Combat.EnemyByID(enemyID)
	if enemy == nil {
		return state, nil, false, engine.NewInternal("target enemy vanished between validation and execution", nil)
	}
	if enemy.PendingDamage != nil {
		reduced := enemy.PendingDamage[el] - amount
		if reduced < 0 {
			reduced = 0
		}
		enemy.PendingDamage[el] = reduced
	}

	key := engine.AttackPoolKey(kind, el)
	state.Players[idx].AttackPools[key] += amount

	ev := engine.NewEvent(engine.EventAttackAssigned, ctx.PlayerID).
		With("enemy_id", enemyID).With("attack_kind", kind).With("element", string(el)).With("amount", -amount).With("direction", "unassign")
	return state, []engine.Event{ev}, true, nil
}

// effectiveAttackDamage folds resistances into a pending elemental
// damage tally: a resisted element contributes nothing unless the
// attacker paid with cold-fire, which pierces both fire and ice
// resistance simultaneously.
func effectiveAttackDamage(stats engine.EnemyStats, pending engine.ElementalDamage) int {
	total := 0
	for el, amt := range pending {
		if el == engine.ElementColdFire {
			total += amt
			continue
		}
		if stats.IsResistantTo(el) {
			continue
		}
		total += amt
	}
	return total
}

// doFinalizeAttack closes the current combat sub-phase. In the block
// phase it records which attacking enemies were blocked (defeating any
// that a DefeatIfBlocked modifier targets); in every other phase each
// enemy with pending assigned damage is checked against its effective
// armor and defeated if the damage meets or exceeds it. Combat then
// advances to the next phase; finalizing the attack phase ends combat,
// and combat also ends early once no live enemy remains.
func doFinalizeAttack(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	var events []engine.Event

	if state.Combat.Phase == engine.PhaseBlock {
		for i := range state.Combat.Enemies {
			e := &state.Combat.Enemies[i]
			if e.Defeated || !e.Attacking {
				continue
			}
			e.AllBlockPhaseAttacksBlocked = e.Blocked
			e.PendingBlock = nil
			if e.Blocked && hasDefeatIfBlocked(state.Modifiers, e.InstanceID) {
				def, err := ctx.Cat.Enemy(e.EnemyDefID)
				if err != nil {
					return state, nil, false, engine.NewInternal("enemy definition missing", err)
				}
				e.Defeated = true
				e.Attacking = false
				events = append(events, defeatEnemyEvents(&state, ctx, def, e)...)
			}
		}
		state.Combat.Phase = engine.NextPhase(state.Combat.Phase)
		if state.Combat.LiveEnemyCount() == 0 {
			endEvents := finishCombat(&state, ctx, true)
			return state, append(events, endEvents...), true, nil
		}
		return state, events, true, nil
	}

	for i := range state.Combat.Enemies {
		e := &state.Combat.Enemies[i]
		if e.Defeated || e.PendingDamage.Total() == 0 {
			continue
		}
		def, err := ctx.Cat.Enemy(e.EnemyDefID)
		if err != nil {
			return state, nil, false, engine.NewInternal("enemy definition missing", err)
		}
		stats := enemyStatsFrom(def)
		armor := engine.EffectiveEnemyArmor(*e, stats, state.Modifiers)
		dealt := effectiveAttackDamage(stats, e.PendingDamage)
		if dealt >= armor {
			e.Defeated = true
			e.Attacking = false
			events = append(events, defeatEnemyEvents(&state, ctx, def, e)...)
		} else {
			events = append(events, engine.NewEvent(engine.EventAttackFailed, ctx.PlayerID).
				With("enemy_id", e.InstanceID).With("required", armor).With("dealt", dealt))
		}
		e.PendingDamage = nil
	}
	state.Combat.DeclaredTargets = nil

	if state.Combat.LiveEnemyCount() == 0 {
		endEvents := finishCombat(&state, ctx, true)
		return state, append(events, endEvents...), true, nil
	}

	if state.Combat.Phase == engine.PhaseAttack {
		endEvents := finishCombat(&state, ctx, state.Combat.AllRequiredDefeated())
		return state, append(events, endEvents...), true, nil
	}

	state.Combat.Phase = engine.NextPhase(state.Combat.Phase)
	return state, events, true, nil
}

// hasDefeatIfBlocked reports whether an active DefeatIfBlocked modifier
// targets the given enemy instance, either directly (one-enemy scope)
// or via an all-enemies scope.
func hasDefeatIfBlocked(mods []engine.Modifier, enemyInstanceID string) bool {
	for _, m := range mods {
		if m.Effect.Kind != engine.EffectDefeatIfBlocked {
			continue
		}
		switch m.Scope {
		case engine.ScopeAllEnemies:
			return true
		case engine.ScopeOneEnemy:
			if m.Target == enemyInstanceID {
				return true
			}
		}
	}
	return false
}

// defeatEnemyEvents awards fame for one freshly-defeated enemy and
// applies Vampiric's armor-bonus-to-allies side effect.
func defeatEnemyEvents(state *engine.GameState, ctx Context, def catalog.EnemyDef, e *engine.EnemyInstance) []engine.Event {
	_, idx := state.PlayerByID(ctx.PlayerID)
	state.Players[idx].Fame += def.Fame
	state.Players[idx].Flags.EnemiesDefeatedThisTurn++
	events := []engine.Event{
		engine.NewEvent(engine.EventEnemyDefeated, ctx.PlayerID).With("enemy_id", e.InstanceID).With("enemy_def_id", def.ID).With("fame", def.Fame),
		engine.NewEvent(engine.EventFameChanged, ctx.PlayerID).With("delta", def.Fame).With("new_value", state.Players[idx].Fame),
	}
	if def.ReputationDelta != 0 {
		newRep, clamped := engine.ClampReputation(state.Players[idx].Reputation + def.ReputationDelta)
		state.Players[idx].Reputation = newRep
		events = append(events, engine.NewEvent(engine.EventReputationChanged, ctx.PlayerID).With("delta", def.ReputationDelta).With("clamped", clamped).With("new_value", newRep))
	}
	events = append(events, consumeFameTrackers(state, ctx.PlayerID, idx)...)
	return append(events, levelUpEvents(&state.Players[idx], ctx.PlayerID)...)
}

// blockElementEfficiency reports the effective block points amount
// contributes against an attack of element attackEl: full value when
// colors match (or the attack is plain physical), full value when
// blocking with cold-fire against fire or ice, half value (rounded
// down) otherwise.
func blockElementEfficiency(attackEl, blockEl engine.Element, amount int) int {
	if attackEl == engine.ElementPhysical || blockEl == attackEl {
		return amount
	}
	if blockEl == engine.ElementColdFire && (attackEl == engine.ElementFire || attackEl == engine.ElementIce) {
		return amount
	}
	return amount / 2
}

// doBlock assigns amount block points (from the player's block pool)
// against one attacking enemy, applying elemental block efficiency and
// Swift's doubled block requirement.
func doBlock(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	enemyID := ctx.Action.Str("enemy_id")
	blockEl := engine.Element(ctx.Action.Str("element"))
	amount := ctx.Action.Int("amount")

	poolKey := engine.PoolKey(engine.ValueBlock, blockEl)
	state.Players[idx].BlockPools[poolKey] -= amount

	enemy, _ := state.Combat.EnemyByID(enemyID)
	if enemy == nil {
		return state, nil, false, engine.NewInternal("target enemy vanished between validation and execution", nil)
	}
	def, err := ctx.Cat.Enemy(enemy.EnemyDefID)
	if err != nil {
		return state, nil, false, engine.NewInternal("enemy definition missing", err)
	}
	stats := enemyStatsFrom(def)

	effective := blockElementEfficiency(stats.AttackElement, blockEl, amount)
	if enemy.PendingBlock == nil {
		enemy.PendingBlock = engine.ElementalDamage{}
	}
	enemy.PendingBlock[blockEl] += effective

	attack := engine.EffectiveEnemyAttack(*enemy, stats, state.Modifiers) - enemy.CumbersomeReduction
	if attack < 0 {
		attack = 0
	}
	required := attack
	if stats.HasAbility("swift") {
		required = attack * 2
	}
	if attack == 0 || enemy.PendingBlock.Total() >= required {
		enemy.Blocked = true
	}

	ev := engine.NewEvent(engine.EventBlockAssigned, ctx.PlayerID).
		With("enemy_id", enemyID).With("element", string(blockEl)).With("amount", amount).With("effective", effective).With("blocked", enemy.Blocked)
	return state, []engine.Event{ev}, true, nil
}

// doDeclareDefend consumes defender's once-per-combat Defend
// contribution, adding its defend value to the target enemy's
// DefendBonus. The bonus never decreases for the remainder of the
// combat, even if the defender is later defeated.
func doDeclareDefend(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	defenderID := ctx.Action.Str("defender_id")
	targetID := ctx.Action.Str("enemy_id")

	defender, _ := state.Combat.EnemyByID(defenderID)
	if defender == nil {
		return state, nil, false, engine.NewInternal("defending enemy vanished between validation and execution", nil)
	}
	target, _ := state.Combat.EnemyByID(targetID)
	if target == nil {
		return state, nil, false, engine.NewInternal("target enemy vanished between validation and execution", nil)
	}
	def, err := ctx.Cat.Enemy(defender.EnemyDefID)
	if err != nil {
		return state, nil, false, engine.NewInternal("defending enemy definition missing", err)
	}

	target.DefendBonus += def.DefendValue
	defender.UsedDefend = true

	ev := engine.NewEvent(engine.EventDefendApplied, ctx.PlayerID).
		With("defender_id", defenderID).With("enemy_id", targetID).With("amount", def.DefendValue)
	return state, []engine.Event{ev}, true, nil
}

// doApplyCumbersome spends the player's move points to reduce a
// Cumbersome enemy's incoming attack by 1 per point. An attack reduced
// to 0 counts as blocked rather than as zero pending damage.
func doApplyCumbersome(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	enemyID := ctx.Action.Str("enemy_id")
	points := ctx.Action.Int("move_points")

	enemy, _ := state.Combat.EnemyByID(enemyID)
	if enemy == nil {
		return state, nil, false, engine.NewInternal("target enemy vanished between validation and execution", nil)
	}
	def, err := ctx.Cat.Enemy(enemy.EnemyDefID)
	if err != nil {
		return state, nil, false, engine.NewInternal("enemy definition missing", err)
	}
	stats := enemyStatsFrom(def)

	state.Players[idx].Move -= points
	enemy.CumbersomeReduction += points

	attack := engine.EffectiveEnemyAttack(*enemy, stats, state.Modifiers)
	if attack-enemy.CumbersomeReduction <= 0 {
		enemy.Blocked = true
	}

	ev := engine.NewEvent(engine.EventCumbersomeApplied, ctx.PlayerID).
		With("enemy_id", enemyID).With("move_points", points).With("blocked", enemy.Blocked)
	return state, []engine.Event{ev}, true, nil
}

// doConvertInfluenceToBlock spends influence through an active
// InfluenceToBlock conversion modifier to gain generic block points.
func doConvertInfluenceToBlock(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	amount := ctx.Action.Int("amount")
	convs := engine.InfluenceToBlockConversions(state.Modifiers, ctx.PlayerID)
	cost := 1
	if len(convs) > 0 && convs[0].Effect.Cost > 0 {
		cost = convs[0].Effect.Cost
	}
	state.Players[idx].Influence -= cost * amount
	key := engine.PoolKey(engine.ValueBlock, "")
	if state.Players[idx].BlockPools == nil {
		state.Players[idx].BlockPools = map[string]int{}
	}
	state.Players[idx].BlockPools[key] += amount

	ev := engine.NewEvent(engine.EventBlockAssigned, ctx.PlayerID).With("source", "influence-conversion").With("amount", amount)
	return state, []engine.Event{ev}, true, nil
}

// doConvertMoveToAttack spends movement points through an active
// MoveToAttack conversion modifier to gain attack points of the
// modifier's attack type (e.g. Mountain Lore turning leftover Move
// into ranged attack), mirroring doConvertInfluenceToBlock above.
func doConvertMoveToAttack(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	amount := ctx.Action.Int("amount")
	convs := engine.MoveToAttackConversions(state.Modifiers, ctx.PlayerID)
	cost := 1
	kind := "melee"
	if len(convs) > 0 {
		if convs[0].Effect.Cost > 0 {
			cost = convs[0].Effect.Cost
		}
		if convs[0].Effect.AttackType != "" {
			kind = convs[0].Effect.AttackType
		}
	}
	state.Players[idx].Move -= cost * amount
	key := engine.AttackPoolKey(kind, engine.ElementPhysical)
	if state.Players[idx].AttackPools == nil {
		state.Players[idx].AttackPools = map[string]int{}
	}
	state.Players[idx].AttackPools[key] += amount

	ev := engine.NewEvent(engine.EventAttackAssigned, ctx.PlayerID).With("source", "move-conversion").With("amount", amount)
	return state, []engine.Event{ev}, true, nil
}

// heroWoundsForAttack computes how many wound cards an unblocked attack
// deals to the hero, applying a matching HeroDamageReduction modifier
// (which halves the count, rounded down) and Brutal (which doubles it).
func heroWoundsForAttack(mods []engine.Modifier, playerID string, el engine.Element, brutal bool) int {
	base := 1
	if brutal {
		base = 2
	}
	for _, m := range mods {
		if m.Effect.Kind != engine.EffectHeroDamageReduction || m.CreatingPlayerID != playerID {
			continue
		}
		for _, e := range m.Effect.Elements {
			if e == el {
				base /= 2
			}
		}
	}
	return base
}

// doAssignDamage resolves one unblocked attacking enemy's damage
// against either the hero (a wound card into hand) or an owned unit
// (wounded, or destroyed if already wounded, or destroyed outright by
// Poison).
func doAssignDamage(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	enemyID := ctx.Action.Str("enemy_id")
	targetKind := ctx.Action.Str("target_kind")

	enemy, _ := state.Combat.EnemyByID(enemyID)
	if enemy == nil {
		return state, nil, false, engine.NewInternal("target enemy vanished between validation and execution", nil)
	}
	def, err := ctx.Cat.Enemy(enemy.EnemyDefID)
	if err != nil {
		return state, nil, false, engine.NewInternal("enemy definition missing", err)
	}
	stats := enemyStatsFrom(def)
	brutal := stats.HasAbility("brutal") && !enemy.Blocked

	var events []engine.Event

	if def.HasAbility(catalog.AbilityVampiric) {
		for i := range state.Combat.Enemies {
			if state.Combat.Enemies[i].InstanceID != enemyID && !state.Combat.Enemies[i].Defeated {
				state.Combat.Enemies[i].VampiricArmorBonus++
			}
		}
	}

	switch targetKind {
	case "unit":
		unitInstanceID := ctx.Action.Str("unit_instance_id")
		for i := range state.Players[idx].Units {
			u := &state.Players[idx].Units[i]
			if u.InstanceID != unitInstanceID {
				continue
			}
			if udef, uerr := ctx.Cat.Unit(u.UnitID); uerr == nil && unitResists(udef, stats.AttackElement) && !u.ResistanceUsed[stats.AttackElement] {
				// a resistant unit absorbs one matching attack per combat
				// without harm.
				if u.ResistanceUsed == nil {
					u.ResistanceUsed = map[engine.Element]bool{}
				}
				u.ResistanceUsed[stats.AttackElement] = true
				events = append(events, engine.NewEvent(engine.EventDamageAssigned, ctx.PlayerID).
					With("enemy_id", enemyID).With("target_kind", "unit").With("unit_instance_id", u.InstanceID).With("absorbed", true))
				break
			}
			switch {
			case u.State == engine.UnitWounded || def.HasAbility(catalog.AbilityPoison):
				destroyed := *u
				state.Players[idx].Units = append(state.Players[idx].Units[:i], state.Players[idx].Units[i+1:]...)
				events = append(events, engine.NewEvent(engine.EventUnitDestroyed, ctx.PlayerID).With("unit_instance_id", destroyed.InstanceID).With("unit_id", destroyed.UnitID))
			case def.HasAbility(catalog.AbilityParalyze):
				u.State = engine.UnitParalyzed
				events = append(events, engine.NewEvent(engine.EventUnitWounded, ctx.PlayerID).With("unit_instance_id", u.InstanceID).With("unit_id", u.UnitID).With("paralyzed", true))
			default:
				u.State = engine.UnitWounded
				events = append(events, engine.NewEvent(engine.EventUnitWounded, ctx.PlayerID).With("unit_instance_id", u.InstanceID).With("unit_id", u.UnitID))
			}
			break
		}
	default:
		wounds := heroWoundsForAttack(state.Modifiers, ctx.PlayerID, stats.AttackElement, brutal)
		for i := 0; i < wounds; i++ {
			state.Players[idx].Hand = append(state.Players[idx].Hand, "card_wound")
		}
		events = append(events, engine.NewEvent(engine.EventHeroWounded, ctx.PlayerID).With("enemy_id", enemyID).With("wounds", wounds))
	}

	enemy.DamageAssigned = true
	enemy.Attacking = false

	events = append([]engine.Event{
		engine.NewEvent(engine.EventDamageAssigned, ctx.PlayerID).With("enemy_id", enemyID).With("target_kind", targetKind),
	}, events...)
	return state, events, true, nil
}

// finishCombat applies post-combat bookkeeping (site conquest, forced
// withdrawal) and clears the combat sub-state. It never fails: every
// field it reads is guaranteed present by the caller's prior checks.
func finishCombat(state *engine.GameState, ctx Context, victory bool) []engine.Event {
	_, idx := state.PlayerByID(ctx.PlayerID)
	var events []engine.Event

	if victory && state.Combat.CombatHex != nil {
		if site, ok := state.Map.SiteAt(*state.Combat.CombatHex); ok && site.SiteDefID != "" {
			if def, err := ctx.Cat.Site(site.SiteDefID); err == nil {
				site.OwnerPlayerID = ctx.PlayerID
				site.RampagingEnemyIDs = nil

				if state.Combat.Context == engine.ContextBurnMonastery {
					site.Burned = true
					events = append(events,
						engine.NewEvent(engine.EventMonasteryBurned, ctx.PlayerID).With("site_def_id", site.SiteDefID).With("hex", *state.Combat.CombatHex),
						engine.NewEvent(engine.EventShieldTokenPlaced, ctx.PlayerID).With("hex", *state.Combat.CombatHex),
					)
				}

				if site.RuinsTokenID != "" {
					events = append(events, claimRuinsToken(state, ctx, idx, &site)...)
				}
				state.Map.Sites[state.Combat.CombatHex.String()] = site

				if def.ConquestReward.Fame != 0 {
					state.Players[idx].Fame += def.ConquestReward.Fame
					events = append(events, levelUpEvents(&state.Players[idx], ctx.PlayerID)...)
				}
				if def.ConquestReward.ReputationDelta != 0 {
					newRep, clamped := engine.ClampReputation(state.Players[idx].Reputation + def.ConquestReward.ReputationDelta)
					state.Players[idx].Reputation = newRep
					events = append(events, engine.NewEvent(engine.EventReputationChanged, ctx.PlayerID).With("delta", def.ConquestReward.ReputationDelta).With("clamped", clamped).With("new_value", newRep))
				}
				events = append(events, engine.NewEvent(engine.EventInteractionDone, ctx.PlayerID).With("site_def_id", site.SiteDefID).With("conquered", true))
			}
		}
	}

	if !victory && state.Combat.AssaultOrigin != nil {
		state.Players[idx].Position = *state.Combat.AssaultOrigin
	}

	state.Modifiers = engine.ExpireModifiers(state.Modifiers, engine.TriggerCombatEnd)
	for i := range state.Players[idx].Units {
		state.Players[idx].Units[i].ResistanceUsed = nil
	}

	events = append(events, engine.NewEvent(engine.EventCombatEnded, ctx.PlayerID).With("victory", victory))
	state.Combat = nil
	return events
}

// claimRuinsToken grants a cleared ruins site's token rewards and
// discards the token globally, so it can never re-enter play this game.
// Reward descriptors are "crystal:<color>" and "fame:<n>" strings from
// the ruins-token catalog.
func claimRuinsToken(state *engine.GameState, ctx Context, idx int, site *engine.SiteOccupancy) []engine.Event {
	tokenID := site.RuinsTokenID
	def, err := ctx.Cat.RuinsToken(tokenID)
	if err != nil {
		return nil
	}

	events := []engine.Event{
		engine.NewEvent(engine.EventRuinsTokenClaimed, ctx.PlayerID).With("ruins_token_id", tokenID),
	}
	for _, reward := range def.Rewards {
		kind, arg := splitReward(reward)
		switch kind {
		case "crystal":
			modifyCrystal(&state.Players[idx], arg, 1)
		case "fame":
			n := atoiDefault(arg, 1)
			state.Players[idx].Fame += n
			events = append(events, engine.NewEvent(engine.EventFameChanged, ctx.PlayerID).With("delta", n).With("new_value", state.Players[idx].Fame))
			events = append(events, levelUpEvents(&state.Players[idx], ctx.PlayerID)...)
		}
	}

	state.DiscardedRuinsTokens = append(state.DiscardedRuinsTokens, tokenID)
	site.RuinsTokenID = ""
	site.RuinsFaceUp = false
	return events
}

// splitReward splits a "kind:arg" reward descriptor; a descriptor with
// no colon is a bare kind with an empty arg.
func splitReward(s string) (kind, arg string) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
