package engine

// ModDuration classifies when a modifier expires. A duration plus the
// creation-round/turn tuple is sufficient to decide expiry without
// consulting external clocks.
type ModDuration string

const (
	DurationSingleEffect ModDuration = "single-effect"
	DurationTurn         ModDuration = "turn"
	DurationCombat       ModDuration = "combat"
	DurationRound        ModDuration = "round"
	DurationUntilConsumed ModDuration = "until-consumed"
)

// ModScope names what a modifier's effect applies to.
type ModScope string

const (
	ScopeSelf         ModScope = "self"
	ScopeOneEnemy     ModScope = "one-enemy"
	ScopeAllEnemies   ModScope = "all-enemies"
	ScopeTerrainClass ModScope = "terrain-class"
	ScopeRuleOverride ModScope = "rule-override"
)

// ExpireTrigger names the lifecycle events that can expire modifiers.
type ExpireTrigger string

const (
	TriggerTurnEnd       ExpireTrigger = "turn-end"
	TriggerRoundEnd      ExpireTrigger = "round-end"
	TriggerCombatEnd     ExpireTrigger = "combat-end"
	TriggerEffectResolve ExpireTrigger = "effect-resolved"
	TriggerMoveFinished  ExpireTrigger = "move-finished"
)

// EffectStat names the stat an EnemyStatDelta or CombatValueBonus
// payload affects.
type EffectStat string

const (
	StatArmor  EffectStat = "armor"
	StatAttack EffectStat = "attack"
)

// ValueType names the accumulator a CombatValueBonus contributes to.
type ValueType string

const (
	ValueAttack     ValueType = "attack"
	ValueBlock      ValueType = "block"
	ValueMove       ValueType = "move"
	ValueInfluence  ValueType = "influence"
)

// Element names an elemental damage/block channel: physical, fire,
// ice, or cold-fire.
type Element string

const (
	ElementPhysical Element = "physical"
	ElementFire     Element = "fire"
	ElementIce      Element = "ice"
	ElementColdFire Element = "cold-fire"
)

// EffectKind tags which payload a Modifier.Effect carries. Modeled as a
// closed tagged union: every read site is expected to exhaustively
// switch on Kind.
type EffectKind string

const (
	EffectEnemyStatDelta            EffectKind = "enemy-stat-delta"
	EffectAbilityNullifier          EffectKind = "ability-nullifier"
	EffectCombatValueBonus          EffectKind = "combat-value-bonus"
	EffectTerrainCostDelta          EffectKind = "terrain-cost-delta"
	EffectInfluenceToBlock          EffectKind = "influence-to-block-conversion"
	EffectMoveToAttack              EffectKind = "move-to-attack-conversion"
	EffectFameTracking              EffectKind = "fame-tracking"
	EffectDrawOnHeal                EffectKind = "draw-on-heal"
	EffectHeroDamageReduction       EffectKind = "hero-damage-reduction"
	EffectDefeatIfBlocked           EffectKind = "defeat-if-blocked"
	EffectPossessAttackRestriction  EffectKind = "possess-attack-restriction"
	EffectDiseaseArmor              EffectKind = "disease-armor"
	EffectRuleOverride              EffectKind = "rule-override"
)

// EffectPayload carries the fields relevant to one EffectKind. Only
// the fields named by Kind are meaningful: a single flat struct keeps
// the union serializable without per-kind wrapper types, at the cost
// of most fields being zero for any given modifier. Modifiers affect
// legality and ability presence, not just numeric stats, which is why
// the union is wider than a plain stat delta.
type EffectPayload struct {
	Kind EffectKind `yaml:"effect_kind"`

	// EnemyStatDelta / CombatValueBonus / TerrainCostDelta
	Stat               EffectStat `yaml:"stat,omitempty"`
	ValueType          ValueType  `yaml:"value_type,omitempty"`
	Terrain            string     `yaml:"terrain,omitempty"`
	Element            Element    `yaml:"element,omitempty"`
	Amount             int        `yaml:"amount,omitempty"`
	Minimum            int        `yaml:"minimum,omitempty"`
	PerResistance      bool       `yaml:"per_resistance,omitempty"`
	ExcludedResistance Element    `yaml:"excluded_resistance,omitempty"`
	FortifiedAmount    int        `yaml:"fortified_amount,omitempty"`

	// AbilityNullifier
	Ability string `yaml:"ability,omitempty"` // "*" for wildcard

	// InfluenceToBlockConversion / MoveToAttackConversion
	Cost       int    `yaml:"cost,omitempty"`
	AttackType string `yaml:"attack_type,omitempty"`

	// FameTracking
	RemainingPoints int `yaml:"remaining_points,omitempty"`

	// HeroDamageReduction
	Elements []Element `yaml:"elements,omitempty"`

	// PossessAttackRestriction
	EnemyID      string `yaml:"enemy_id,omitempty"`
	AttackAmount int    `yaml:"attack_amount,omitempty"`

	// DiseaseArmor
	SetTo int `yaml:"set_to,omitempty"`

	// RuleOverride
	RuleID string `yaml:"rule_id,omitempty"`
}

// Modifier is a tagged effect record. Modifiers are centralized in
// GameState.Modifiers (a single list), never embedded on entities, so
// effective-value queries stay pure and undo can restore by splicing
// the list.
type Modifier struct {
	ID               string        `yaml:"modifier_id"`
	Source           string        `yaml:"source"`            // card_*, skill_*, or enemy_* id
	Duration         ModDuration   `yaml:"duration"`
	Scope            ModScope      `yaml:"scope"`
	Target           string        `yaml:"target,omitempty"`  // enemy instance id when Scope==one-enemy
	Effect           EffectPayload `yaml:"effect"`
	CreationRound    int           `yaml:"creation_round"`
	CreatingPlayerID string        `yaml:"creating_player_id"`
}
