package engine

// UnitState is the lifecycle state of a player-owned unit instance.
type UnitState string

const (
	UnitReady     UnitState = "ready"
	UnitSpent     UnitState = "spent"
	UnitWounded   UnitState = "wounded"
	UnitParalyzed UnitState = "paralyzed"
)

// OwnedUnit is one unit instance a player has recruited.
type OwnedUnit struct {
	InstanceID string    `yaml:"instance_id"`
	UnitID     string    `yaml:"unit_id"` // catalog unit_* id
	State      UnitState `yaml:"state"`
	// ResistanceUsed records, per element, whether this unit's
	// once-per-combat resistance absorb has already been spent in the
	// CURRENT combat instance. Cleared whenever a new CombatState is
	// created — scoped per-combat-instance, not per-turn.
	ResistanceUsed map[Element]bool `yaml:"resistance_used,omitempty"`
	// AttachedMana holds unit-attached mana tokens (e.g. a Magic
	// Familiar's stored color), consumable as a card-payment source.
	AttachedMana []string `yaml:"attached_mana,omitempty"`
}

// PendingChoice captures a multi-step effect awaiting player input:
// pending choices are data, not control flow. RemainingEffects lets an
// effect like a two-target selection persist intermediate progress
// across host round-trips without a coroutine.
type PendingChoice struct {
	ID               string           `yaml:"id"`
	Source           string           `yaml:"source"` // card/skill id that created it
	Options          []ChoiceOption   `yaml:"options"`
	RemainingEffects []AtomicEffect   `yaml:"remaining_effects,omitempty"`
}

// ChoiceOption is one selectable branch of a PendingChoice.
type ChoiceOption struct {
	ID     string         `yaml:"id"`
	Label  string         `yaml:"label"`
	Params map[string]any `yaml:"params,omitempty"`
}

// AtomicEffectKind tags the atomic card-effect mutations a card or
// skill effect can produce.
type AtomicEffectKind string

const (
	EffGainMove           AtomicEffectKind = "gain-move"
	EffGainInfluence      AtomicEffectKind = "gain-influence"
	EffGainAttack         AtomicEffectKind = "gain-attack"
	EffGainBlock          AtomicEffectKind = "gain-block"
	EffGainHealing        AtomicEffectKind = "gain-healing"
	EffDrawCards          AtomicEffectKind = "draw-cards"
	EffModifyCrystal      AtomicEffectKind = "modify-crystal"
	EffModifyFame         AtomicEffectKind = "modify-fame"
	EffModifyReputation   AtomicEffectKind = "modify-reputation"
	EffAddModifier        AtomicEffectKind = "add-modifier"
	EffRemoveWoundCards   AtomicEffectKind = "remove-wound-cards"
	EffSelectCombatEnemy  AtomicEffectKind = "select-combat-enemy"
	EffSelectUnit         AtomicEffectKind = "select-unit"
)

// AtomicEffect is one atomic mutation a card/skill effect produces.
type AtomicEffect struct {
	Kind      AtomicEffectKind `yaml:"kind"`
	ValueType ValueType        `yaml:"value_type,omitempty"`
	Element   Element          `yaml:"element,omitempty"`
	// AttackKind distinguishes melee/ranged/siege for EffGainAttack
	// effects; empty defaults to "melee" (the common case for a basic
	// Attack gain).
	AttackKind string    `yaml:"attack_kind,omitempty"`
	Amount     int       `yaml:"amount,omitempty"`
	Color      string    `yaml:"color,omitempty"`
	Modifier   *Modifier `yaml:"modifier,omitempty"`
	Template   string    `yaml:"template,omitempty"` // enemy/unit catalog id for select-*
}

// Crystals holds a player's basic-color crystal reserves, each capped
// at 3.
type Crystals struct {
	Red   int `yaml:"red"`
	Blue  int `yaml:"blue"`
	White int `yaml:"white"`
	Green int `yaml:"green"`
}

// TurnFlags are the per-turn booleans reset at the start of each of a
// player's turns.
type TurnFlags struct {
	HasMoved             bool `yaml:"has_moved"`
	HasActed             bool `yaml:"has_acted"`
	HasCombatted         bool `yaml:"has_combatted"`
	IsResting            bool `yaml:"is_resting"`
	// RestKind is the kind ("standard" or "slow-recovery") locked in by
	// declare-rest, consulted by complete-rest.
	RestKind             string `yaml:"rest_kind,omitempty"`
	HasRested            bool `yaml:"has_rested"`
	WoundsHealedThisTurn int  `yaml:"wounds_healed_this_turn"`
	EnemiesDefeatedThisTurn int `yaml:"enemies_defeated_this_turn"`
	// MoveForbidden is set once a turn's single action has resolved —
	// moving after an action is forbidden — or once provoke-rampaging
	// has fired.
	MoveForbidden bool `yaml:"move_forbidden"`
	// DrewFromSourceThisTurn tracks the "at most once per turn" shared
	// die-source draw, unless a RuleOverride modifier grants extra
	// draws.
	DrewFromSourceThisTurn bool `yaml:"drew_from_source_this_turn"`
	// InteractionBonusUsed gates the single first-interaction-of-turn
	// bonus modifier.
	InteractionBonusUsed bool `yaml:"interaction_bonus_used"`
	// BorrowedSourceColor is the die color drawn from the shared source
	// this turn, if any, returned (and converted to a crystal) at
	// end-turn.
	BorrowedSourceColor string `yaml:"borrowed_source_color,omitempty"`
}

// SkillUsage tracks a learned skill's once-per-turn / once-per-round
// consumption.
type SkillUsage struct {
	SkillID       string `yaml:"skill_id"`
	UsedThisTurn  bool   `yaml:"used_this_turn"`
	UsedThisRound bool   `yaml:"used_this_round"`
}

// Player is one participant's full mutable-in-appearance, actually
// immutable (copy-on-write) record.
type Player struct {
	ID       string   `yaml:"id"`
	HeroID   string   `yaml:"hero_id"` // catalog hero identity
	Position HexCoord `yaml:"position"`

	Deck      []string `yaml:"deck"`
	Hand      []string `yaml:"hand"`
	Discard   []string `yaml:"discard"`
	PlayArea  []string `yaml:"play_area"`

	Units []OwnedUnit `yaml:"units"`

	Fame       int `yaml:"fame"`
	Level      int `yaml:"level"` // number of fame-threshold levels already granted
	Reputation int `yaml:"reputation"` // clamped [-7, 7]

	Influence int `yaml:"influence"`
	Move      int `yaml:"move"`
	// AttackPools accumulates attack by {value_type, element} pair for
	// the current combat sub-phase.
	AttackPools map[string]int `yaml:"attack_pools,omitempty"`
	BlockPools  map[string]int `yaml:"block_pools,omitempty"`

	Crystals  Crystals `yaml:"crystals"`
	PureMana  []string `yaml:"pure_mana,omitempty"` // colors earned this turn, lost at turn end

	Skills []SkillUsage `yaml:"skills,omitempty"`

	// TacticID is the tactic card chosen during this round's
	// tactics-selection phase, cleared at round transition.
	TacticID string `yaml:"tactic_id,omitempty"`

	PendingChoice     *PendingChoice   `yaml:"pending_choice,omitempty"`
	PendingLevelUps   []int            `yaml:"pending_level_ups,omitempty"` // queued thresholds crossed

	Flags TurnFlags `yaml:"flags"`
}

// FameLevelThresholds are the cumulative fame totals at which a player
// gains a level. Crossing one or more thresholds queues that many
// entries onto PendingLevelUps rather than resolving them inline,
// since the reward a level grants needs separate player input.
var FameLevelThresholds = []int{3, 6, 9, 12, 15, 18, 24, 30, 36, 42}

// CheckLevelUp compares p.Fame against FameLevelThresholds and queues
// any newly crossed level(s) onto p.PendingLevelUps, returning the
// level numbers newly queued (empty if none).
func CheckLevelUp(p *Player) []int {
	earned := 0
	for _, t := range FameLevelThresholds {
		if p.Fame >= t {
			earned++
		}
	}
	if earned <= p.Level {
		return nil
	}
	var queued []int
	for lvl := p.Level + 1; lvl <= earned; lvl++ {
		queued = append(queued, lvl)
	}
	p.PendingLevelUps = append(p.PendingLevelUps, queued...)
	p.Level = earned
	return queued
}

// ClampReputation returns rep clamped to [-7, 7] along with whether
// clamping changed the value (callers use this to decide whether to
// emit a zero-delta no-op event).
func ClampReputation(rep int) (clamped int, wasClamped bool) {
	switch {
	case rep > 7:
		return 7, true
	case rep < -7:
		return -7, true
	default:
		return rep, false
	}
}

// PoolKey builds the map key AttackPools/BlockPools are indexed by.
func PoolKey(vt ValueType, el Element) string {
	if el == "" {
		return string(vt)
	}
	return string(vt) + ":" + string(el)
}

// AttackPoolKey builds the AttackPools map key for one (attack-kind,
// element) pair, e.g. "melee:fire" or "ranged:physical". Kind defaults
// to "melee" when empty.
func AttackPoolKey(kind string, el Element) string {
	if kind == "" {
		kind = "melee"
	}
	if el == "" {
		el = ElementPhysical
	}
	return "attack:" + kind + ":" + string(el)
}

// Clone returns a deep copy of p so callers can mutate the copy and
// hand back a new GameState without aliasing the original's slices —
// a persistent-data-structure pattern adapted from a plain-struct-copy
// style rather than a sharing immutable-tree library.
func (p Player) Clone() Player {
	cp := p
	cp.Deck = append([]string(nil), p.Deck...)
	cp.Hand = append([]string(nil), p.Hand...)
	cp.Discard = append([]string(nil), p.Discard...)
	cp.PlayArea = append([]string(nil), p.PlayArea...)
	cp.PureMana = append([]string(nil), p.PureMana...)
	cp.PendingLevelUps = append([]int(nil), p.PendingLevelUps...)

	cp.Units = make([]OwnedUnit, len(p.Units))
	for i, u := range p.Units {
		cu := u
		cu.AttachedMana = append([]string(nil), u.AttachedMana...)
		if u.ResistanceUsed != nil {
			cu.ResistanceUsed = make(map[Element]bool, len(u.ResistanceUsed))
			for k, v := range u.ResistanceUsed {
				cu.ResistanceUsed[k] = v
			}
		}
		cp.Units[i] = cu
	}

	cp.Skills = append([]SkillUsage(nil), p.Skills...)

	if p.AttackPools != nil {
		cp.AttackPools = make(map[string]int, len(p.AttackPools))
		for k, v := range p.AttackPools {
			cp.AttackPools[k] = v
		}
	}
	if p.BlockPools != nil {
		cp.BlockPools = make(map[string]int, len(p.BlockPools))
		for k, v := range p.BlockPools {
			cp.BlockPools[k] = v
		}
	}

	if p.PendingChoice != nil {
		pc := *p.PendingChoice
		pc.Options = append([]ChoiceOption(nil), p.PendingChoice.Options...)
		pc.RemainingEffects = append([]AtomicEffect(nil), p.PendingChoice.RemainingEffects...)
		cp.PendingChoice = &pc
	}

	return cp
}
