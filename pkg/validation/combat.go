package validation

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

// adjacentRampagingHexPresent rejects challenge-rampaging when no
// adjacent hex carries a live rampaging garrison.
func adjacentRampagingHexPresent(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("adjacentRampagingHexPresent", CodeNotYourTurn, "unknown player")
	}
	target := a.Hex("hex")
	if !p.Position.IsAdjacent(target) {
		return reject("adjacentRampagingHexPresent", CodeNotAdjacent, "challenged hex is not adjacent to the player")
	}
	site, ok := state.Map.SiteAt(target)
	if !ok || len(site.RampagingEnemyIDs) == 0 {
		return reject("adjacentRampagingHexPresent", CodeNoSite, "no rampaging garrison at the challenged hex")
	}
	return nil
}

var challengeRampagingPredicates = append(append([]Predicate{}, commonTurnPredicates...),
	notAlreadyRestingThisTurn,
	hasNotActedThisTurn,
	adjacentRampagingHexPresent,
)

// combatPhasePredicates builds an ordered predicate list shared by
// every combat sub-action: the game must be in combat and the combat's
// current phase must be one of allowed.
func combatPhasePredicates(allowed ...engine.CombatPhase) []Predicate {
	phaseMatch := func(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
		for _, ph := range allowed {
			if state.Combat.Phase == ph {
				return nil
			}
		}
		return reject("combatPhaseMatch", CodeWrongCombatPhase, "action is not legal in the current combat phase")
	}
	return []Predicate{
		isPlayersTurn,
		noPendingChoice,
		inCombat,
		phaseMatch,
	}
}

func targetEnemy(state *engine.GameState, a engine.Action) (*engine.EnemyInstance, *Rejection) {
	if state.Combat == nil {
		return nil, reject("targetEnemy", CodeNotInCombat, "no combat in progress")
	}
	e, _ := state.Combat.EnemyByID(a.Str("enemy_id"))
	if e == nil {
		return nil, reject("targetEnemy", CodeEnemyNotFound, "enemy instance not found")
	}
	return e, nil
}

func enemyTargetAlive(state *engine.GameState, _ *catalog.Catalog, _ string, a engine.Action) *Rejection {
	e, rej := targetEnemy(state, a)
	if rej != nil {
		return rej
	}
	if e.Defeated {
		return reject("enemyTargetAlive", CodeTargetNotAlive, "target enemy is already defeated")
	}
	return nil
}

// fortifiedRequiresSiege rejects assigning a non-siege attack against
// an enemy that is fortified (either by its own ability, or because
// combat is at a fortified site) during the ranged-siege phase.
func fortifiedRequiresSiege(state *engine.GameState, cat *catalog.Catalog, _ string, a engine.Action) *Rejection {
	if state.Combat == nil || state.Combat.Phase != engine.PhaseRangedSiege {
		return nil
	}
	e, rej := targetEnemy(state, a)
	if rej != nil {
		return rej
	}
	def, err := cat.Enemy(e.EnemyDefID)
	if err != nil {
		return nil
	}
	fortified := state.Combat.IsAtFortifiedSite || def.HasAbility(catalog.AbilityFortified)
	if fortified && a.Str("attack_kind") != "siege" {
		return reject("fortifiedRequiresSiege", CodeFortifiedRequiresSiege, "a fortified enemy can only be targeted by siege attack in this phase")
	}
	return nil
}

func hasAccumulatedAttackForAssignment(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("hasAccumulatedAttackForAssignment", CodeNotYourTurn, "unknown player")
	}
	key := engine.AttackPoolKey(a.Str("attack_kind"), engine.Element(a.Str("element")))
	if p.AttackPools[key] < a.Int("amount") {
		return reject("hasAccumulatedAttackForAssignment", CodeNoAccumulatedAttack, "not enough accumulated attack of this type/element")
	}
	return nil
}

// assassinationForbidsUnitTarget rejects assigning damage from an
// Assassination-capable enemy to a unit target.
func assassinationForbidsUnitTarget(state *engine.GameState, cat *catalog.Catalog, _ string, a engine.Action) *Rejection {
	if a.Str("target_kind") != "unit" {
		return nil
	}
	e, rej := targetEnemy(state, a)
	if rej != nil {
		return rej
	}
	def, err := cat.Enemy(e.EnemyDefID)
	if err != nil {
		return nil
	}
	if def.HasAbility(catalog.AbilityAssassination) {
		return reject("assassinationForbidsUnitTarget", CodeAssassinationForbidsUnit, "an assassination enemy's damage cannot be assigned to a unit")
	}
	return nil
}

var declareAttackTargetsPredicates = combatPhasePredicates(engine.PhaseRangedSiege, engine.PhaseAttack)

var assignAttackPredicates = append(combatPhasePredicates(engine.PhaseRangedSiege, engine.PhaseAttack),
	enemyTargetAlive,
	fortifiedRequiresSiege,
	hasAccumulatedAttackForAssignment,
)

var unassignAttackPredicates = combatPhasePredicates(engine.PhaseRangedSiege, engine.PhaseAttack)

var finalizeAttackPredicates = combatPhasePredicates(engine.PhaseRangedSiege, engine.PhaseBlock, engine.PhaseAssignDamage, engine.PhaseAttack)

var blockPredicates = append(combatPhasePredicates(engine.PhaseBlock),
	enemyTargetAlive,
)

// unitCanReceiveDamage rejects assigning damage to a unit target that
// does not exist for this player or is paralyzed (a paralyzed unit
// cannot absorb anything further).
func unitCanReceiveDamage(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	if a.Str("target_kind") != "unit" {
		return nil
	}
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("unitCanReceiveDamage", CodeNotYourTurn, "unknown player")
	}
	for _, u := range p.Units {
		if u.InstanceID != a.Str("unit_instance_id") {
			continue
		}
		if u.State == engine.UnitParalyzed {
			return reject("unitCanReceiveDamage", CodeUnitCannotReceiveDamage, "a paralyzed unit cannot receive damage")
		}
		return nil
	}
	return reject("unitCanReceiveDamage", CodeUnitNotFound, "unit instance not found for this player")
}

var assignDamagePredicates = append(combatPhasePredicates(engine.PhaseAssignDamage),
	assassinationForbidsUnitTarget,
	unitCanReceiveDamage,
)

// defendStatsFrom converts a catalog.EnemyDef into an engine.EnemyStats
// value, duplicated (rather than imported) in the same pattern
// pkg/actions and pkg/legal already use, since every package reachable
// from pkg/validation only depends on pkg/engine and pkg/catalog.
func defendStatsFrom(def catalog.EnemyDef) engine.EnemyStats {
	abilities := make([]string, len(def.Abilities))
	for i, a := range def.Abilities {
		abilities[i] = string(a)
	}
	return engine.EnemyStats{
		BaseArmor: def.BaseArmor, BaseAttack: def.BaseAttack,
		AttackElement: def.AttackElement, Resistances: def.Resistances,
		Abilities: abilities, DefendValue: def.DefendValue, ElusiveArmor: def.ElusiveArmor,
	}
}

func defenderEnemy(state *engine.GameState, a engine.Action) (*engine.EnemyInstance, *Rejection) {
	if state.Combat == nil {
		return nil, reject("defenderEnemy", CodeNotInCombat, "no combat in progress")
	}
	e, _ := state.Combat.EnemyByID(a.Str("defender_id"))
	if e == nil {
		return nil, reject("defenderEnemy", CodeEnemyNotFound, "defending enemy instance not found")
	}
	return e, nil
}

// defenderIsAliveAndCapable rejects declare-defend when the named
// defender is already defeated or lacks the Defend ability.
func defenderIsAliveAndCapable(state *engine.GameState, cat *catalog.Catalog, _ string, a engine.Action) *Rejection {
	e, rej := defenderEnemy(state, a)
	if rej != nil {
		return rej
	}
	if e.Defeated {
		return reject("defenderIsAliveAndCapable", CodeTargetNotAlive, "defending enemy is already defeated")
	}
	def, err := cat.Enemy(e.EnemyDefID)
	if err != nil {
		return reject("defenderIsAliveAndCapable", CodeEnemyNotFound, "defending enemy definition missing")
	}
	if !def.HasAbility(catalog.AbilityDefend) {
		return reject("defenderIsAliveAndCapable", CodeNotDefendCapable, "enemy does not have the Defend ability")
	}
	return nil
}

// defenderNotAlreadyUsed rejects a second Defend contribution from the
// same enemy instance within one combat.
func defenderNotAlreadyUsed(state *engine.GameState, _ *catalog.Catalog, _ string, a engine.Action) *Rejection {
	e, rej := defenderEnemy(state, a)
	if rej != nil {
		return rej
	}
	if e.UsedDefend {
		return reject("defenderNotAlreadyUsed", CodeDefendAlreadyUsed, "this enemy has already contributed its Defend bonus this combat")
	}
	return nil
}

// defendAbilityNotNullified rejects declare-defend when an active
// AbilityNullifier targets this defender's Defend ability (arcane
// immunity makes the defender immune to nullification, not to the
// predicate itself failing for other reasons).
func defendAbilityNotNullified(state *engine.GameState, cat *catalog.Catalog, _ string, a engine.Action) *Rejection {
	e, rej := defenderEnemy(state, a)
	if rej != nil {
		return rej
	}
	def, err := cat.Enemy(e.EnemyDefID)
	if err != nil {
		return nil
	}
	stats := defendStatsFrom(def)
	if engine.IsAbilityNullified(state.Modifiers, stats, e.InstanceID, "defend") {
		return reject("defendAbilityNotNullified", CodeDefendNullified, "this enemy's Defend ability is nullified")
	}
	return nil
}

var declareDefendPredicates = append(combatPhasePredicates(engine.PhaseAttack),
	defenderIsAliveAndCapable,
	defenderNotAlreadyUsed,
	defendAbilityNotNullified,
	enemyTargetAlive,
)

// applyCumbersomePredicates gates spending move-points to reduce an
// attacking Cumbersome enemy's incoming attack; legal only in the
// block phase against a still-attacking Cumbersome enemy, and only for
// as much move as the player currently has.
func targetIsCumbersome(state *engine.GameState, cat *catalog.Catalog, _ string, a engine.Action) *Rejection {
	e, rej := targetEnemy(state, a)
	if rej != nil {
		return rej
	}
	def, err := cat.Enemy(e.EnemyDefID)
	if err != nil {
		return reject("targetIsCumbersome", CodeEnemyNotFound, "enemy definition missing")
	}
	if !def.HasAbility(catalog.AbilityCumbersome) {
		return reject("targetIsCumbersome", CodeNotCumbersomeCapable, "enemy does not have the Cumbersome ability")
	}
	return nil
}

func hasEnoughMoveForCumbersome(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("hasEnoughMoveForCumbersome", CodeNotYourTurn, "unknown player")
	}
	if p.Move < a.Int("move_points") {
		return reject("hasEnoughMoveForCumbersome", CodeNotEnoughMoveForCumbersome, "not enough move points to spend against Cumbersome")
	}
	return nil
}

var applyCumbersomePredicates = append(combatPhasePredicates(engine.PhaseBlock),
	enemyTargetAlive,
	targetIsCumbersome,
	hasEnoughMoveForCumbersome,
)

// convertInfluencePredicates validates convert-influence-to-block: must
// be in combat's block phase, and the player must hold an active
// InfluenceToBlock conversion modifier.
func hasConversionModifier(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	if len(engine.InfluenceToBlockConversions(state.Modifiers, playerID)) == 0 {
		return reject("hasConversionModifier", CodeNoConversionModifier, "no active influence-to-block conversion modifier")
	}
	return nil
}

func hasEnoughInfluenceForConversion(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("hasEnoughInfluenceForConversion", CodeNotYourTurn, "unknown player")
	}
	convs := engine.InfluenceToBlockConversions(state.Modifiers, playerID)
	if len(convs) == 0 {
		return nil
	}
	cost := convs[0].Effect.Cost
	if cost <= 0 {
		cost = 1
	}
	if p.Influence < cost*a.Int("amount") {
		return reject("hasEnoughInfluenceForConversion", CodeInsufficientInfluence, "not enough influence for this conversion")
	}
	return nil
}

var convertInfluencePredicates = append(append([]Predicate{
	isPlayersTurn,
	noPendingChoice,
	inCombat,
}, func(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
	if state.Combat.Phase != engine.PhaseBlock {
		return reject("convertInfluenceBlockPhase", CodeWrongCombatPhase, "influence-to-block conversion is only legal in the block phase")
	}
	return nil
}),
	hasConversionModifier,
	hasEnoughInfluenceForConversion,
)

// hasMoveConversionModifier and hasEnoughMoveForConversion mirror the
// influence-to-block pair above for convert-move-to-attack, which is
// legal in the ranged-siege or attack phase (the two sub-phases where
// attack pools are still being assembled).
func hasMoveConversionModifier(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	if len(engine.MoveToAttackConversions(state.Modifiers, playerID)) == 0 {
		return reject("hasMoveConversionModifier", CodeNoConversionModifier, "no active move-to-attack conversion modifier")
	}
	return nil
}

func hasEnoughMoveForConversion(state *engine.GameState, _ *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("hasEnoughMoveForConversion", CodeNotYourTurn, "unknown player")
	}
	convs := engine.MoveToAttackConversions(state.Modifiers, playerID)
	cost := 1
	if len(convs) > 0 && convs[0].Effect.Cost > 0 {
		cost = convs[0].Effect.Cost
	}
	if p.Move < cost*a.Int("amount") {
		return reject("hasEnoughMoveForConversion", CodeNotEnoughMove, "not enough move for this conversion")
	}
	return nil
}

var convertMoveToAttackPredicates = append(append([]Predicate{
	isPlayersTurn,
	noPendingChoice,
	inCombat,
}, func(state *engine.GameState, _ *catalog.Catalog, _ string, _ engine.Action) *Rejection {
	if state.Combat.Phase != engine.PhaseRangedSiege && state.Combat.Phase != engine.PhaseAttack {
		return reject("convertMoveToAttackPhase", CodeWrongCombatPhase, "move-to-attack conversion is only legal in the ranged-siege or attack phase")
	}
	return nil
}),
	hasMoveConversionModifier,
	hasEnoughMoveForConversion,
)
