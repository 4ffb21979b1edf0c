package engine

// EnemyStats is the subset of a catalog enemy definition the modifier
// engine's effective-value queries need. Kept as an engine-local type,
// rather than importing the catalog package, so pkg/engine has no
// dependency on static data definitions; callers that do hold a
// catalog definition build one of these from it before calling the
// functions below.
type EnemyStats struct {
	BaseArmor     int
	BaseAttack    int
	AttackElement Element
	Resistances   []Element
	Abilities     []string
	DefendValue   int
	// ElusiveArmor is the low armor value Elusive enemies use once
	// every block-phase attack against them was fully blocked. Only
	// meaningful when Abilities contains "elusive".
	ElusiveArmor int
}

// HasAbility reports whether s lists ability a.
func (s EnemyStats) HasAbility(a string) bool {
	for _, x := range s.Abilities {
		if x == a {
			return true
		}
	}
	return false
}

// IsResistantTo reports whether s resists element el.
func (s EnemyStats) IsResistantTo(el Element) bool {
	for _, r := range s.Resistances {
		if r == el {
			return true
		}
	}
	return false
}

const abilityWildcard = "*"

// ArcaneImmunityBlocksElement reports whether an arcane-immune enemy's
// immunity negates an effect of element el. Arcane immunity is applied
// as a read-time filter rather than a write-time rejection: effects
// that target an arcane-immune enemy are still added to the modifier
// list (so undo has a symmetric entry to remove) and are simply
// treated as zero by every query below. Physical damage and physical
// terrain/attack effects are never blocked.
func ArcaneImmunityBlocksElement(stats EnemyStats, el Element) bool {
	return stats.HasAbility("arcane-immunity") && el != ElementPhysical && el != ""
}

// IsAbilityNullified reports whether any active AbilityNullifier
// modifier in mods silences ability a for the enemy instance
// enemyInstanceID (Scope one-enemy targeting that instance, or
// all-enemies). Arcane-immune enemies can never have an ability
// nullified, regardless of scope.
func IsAbilityNullified(mods []Modifier, stats EnemyStats, enemyInstanceID string, ability string) bool {
	if stats.HasAbility("arcane-immunity") {
		return false
	}
	for _, m := range mods {
		if m.Effect.Kind != EffectAbilityNullifier {
			continue
		}
		if m.Effect.Ability != ability && m.Effect.Ability != abilityWildcard {
			continue
		}
		switch m.Scope {
		case ScopeAllEnemies:
			return true
		case ScopeOneEnemy:
			if m.Target == enemyInstanceID {
				return true
			}
		}
	}
	return false
}

// EffectiveEnemyArmor computes an enemy instance's armor following
// spec order: base (substituting Elusive's low armor once every
// block-phase attack against it was fully blocked) -> defend bonus ->
// vampiric bonus -> arithmetic EnemyStatDelta modifiers (respecting
// excluded-resistance and fortified-site variants) -> disease floor ->
// minimum 1.
func EffectiveEnemyArmor(inst EnemyInstance, stats EnemyStats, mods []Modifier) int {
	base := stats.BaseArmor
	if stats.HasAbility("elusive") && inst.AllBlockPhaseAttacksBlocked {
		base = stats.ElusiveArmor
	}
	total := base + inst.DefendBonus + inst.VampiricArmorBonus
	for _, m := range mods {
		if m.Effect.Kind != EffectEnemyStatDelta || m.Effect.Stat != StatArmor {
			continue
		}
		if !modifierAppliesToEnemy(m, inst.InstanceID) {
			continue
		}
		if ArcaneImmunityBlocksElement(stats, m.Effect.Element) {
			continue
		}
		if m.Effect.ExcludedResistance != "" && stats.IsResistantTo(m.Effect.ExcludedResistance) {
			continue
		}
		amount := m.Effect.Amount
		if m.Effect.FortifiedAmount != 0 {
			amount = m.Effect.FortifiedAmount
		}
		total += amount
	}
	for _, m := range mods {
		if m.Effect.Kind != EffectDiseaseArmor || stats.HasAbility("arcane-immunity") {
			continue
		}
		if !modifierAppliesToEnemy(m, inst.InstanceID) {
			continue
		}
		total = m.Effect.SetTo
	}
	if total < 1 {
		total = 1
	}
	return total
}

// EffectiveEnemyAttack folds EnemyStatDelta modifiers targeting attack
// into stats.BaseAttack, clamped to a minimum of 0.
func EffectiveEnemyAttack(inst EnemyInstance, stats EnemyStats, mods []Modifier) int {
	total := stats.BaseAttack
	for _, m := range mods {
		if m.Effect.Kind != EffectEnemyStatDelta || m.Effect.Stat != StatAttack {
			continue
		}
		if !modifierAppliesToEnemy(m, inst.InstanceID) {
			continue
		}
		if ArcaneImmunityBlocksElement(stats, m.Effect.Element) {
			continue
		}
		total += m.Effect.Amount
	}
	if total < 0 {
		total = 0
	}
	return total
}

func modifierAppliesToEnemy(m Modifier, enemyInstanceID string) bool {
	switch m.Scope {
	case ScopeAllEnemies:
		return true
	case ScopeOneEnemy:
		return m.Target == enemyInstanceID
	default:
		return false
	}
}

// CombatValueBonus sums CombatValueBonus modifiers scoped to the
// acting player for the given value type and element. Element "" means
// element-agnostic (e.g. move or influence).
func CombatValueBonus(mods []Modifier, playerID string, vt ValueType, el Element) int {
	total := 0
	for _, m := range mods {
		if m.Effect.Kind != EffectCombatValueBonus {
			continue
		}
		if m.Scope != ScopeSelf || m.CreatingPlayerID != playerID {
			continue
		}
		if m.Effect.ValueType != vt {
			continue
		}
		if m.Effect.Element != "" && m.Effect.Element != el {
			continue
		}
		total += m.Effect.Amount
	}
	return total
}

// TerrainCostDelta sums TerrainCostDelta modifiers scoped to the acting
// player that apply to the named terrain class.
func TerrainCostDelta(mods []Modifier, playerID string, terrain string) int {
	total := 0
	for _, m := range mods {
		if m.Effect.Kind != EffectTerrainCostDelta {
			continue
		}
		if m.Scope != ScopeTerrainClass || m.CreatingPlayerID != playerID {
			continue
		}
		if m.Effect.Terrain != "" && m.Effect.Terrain != terrain {
			continue
		}
		total += m.Effect.Amount
	}
	return total
}

// EffectiveTerrainCost folds TerrainCostDelta modifiers into base,
// clamped to a minimum of 1 movement point.
func EffectiveTerrainCost(mods []Modifier, playerID string, terrain string, base int) int {
	total := base + TerrainCostDelta(mods, playerID, terrain)
	if total < 1 {
		total = 1
	}
	return total
}

// InfluenceToBlockConversions returns every active InfluenceToBlock
// conversion modifier scoped to playerID, most-recently-added first, so
// callers can offer the cheapest conversion first.
func InfluenceToBlockConversions(mods []Modifier, playerID string) []Modifier {
	var out []Modifier
	for i := len(mods) - 1; i >= 0; i-- {
		m := mods[i]
		if m.Effect.Kind == EffectInfluenceToBlock && m.Scope == ScopeSelf && m.CreatingPlayerID == playerID {
			out = append(out, m)
		}
	}
	return out
}

// MoveToAttackConversions returns every active MoveToAttack conversion
// modifier scoped to playerID, most-recently-added first, mirroring
// InfluenceToBlockConversions above.
func MoveToAttackConversions(mods []Modifier, playerID string) []Modifier {
	var out []Modifier
	for i := len(mods) - 1; i >= 0; i-- {
		m := mods[i]
		if m.Effect.Kind == EffectMoveToAttack && m.Scope == ScopeSelf && m.CreatingPlayerID == playerID {
			out = append(out, m)
		}
	}
	return out
}

// EffectiveHandLimit returns base plus any RuleOverride modifiers tagged
// "hand-limit-bonus" scoped to playerID (e.g. a keep-hand-size skill),
// clamped to a minimum of 0.
func EffectiveHandLimit(mods []Modifier, playerID string, base int) int {
	total := base
	for _, m := range mods {
		if m.Effect.Kind != EffectRuleOverride || m.Effect.RuleID != "hand-limit-bonus" {
			continue
		}
		if m.Scope != ScopeSelf || m.CreatingPlayerID != playerID {
			continue
		}
		total += m.Effect.Amount
	}
	if total < 0 {
		total = 0
	}
	return total
}

// EffectiveRecruitCost folds RuleOverride modifiers tagged
// "recruit-discount" into base, clamped to a minimum of 0. Some
// discount modifiers carry an accompanying reputation penalty the
// caller applies separately when the discount is actually consumed.
func EffectiveRecruitCost(mods []Modifier, playerID string, base int) int {
	total := base
	for _, m := range mods {
		if m.Effect.Kind != EffectRuleOverride || m.Effect.RuleID != "recruit-discount" {
			continue
		}
		if m.Scope != ScopeSelf || m.CreatingPlayerID != playerID {
			continue
		}
		total -= m.Effect.Amount
	}
	if total < 0 {
		total = 0
	}
	return total
}

// ExpireModifiers removes every modifier in mods whose duration matches
// trigger, returning the remaining slice. Each trigger matches exactly
// one duration (TriggerCombatEnd strips DurationCombat modifiers).
func ExpireModifiers(mods []Modifier, trigger ExpireTrigger) []Modifier {
	out := make([]Modifier, 0, len(mods))
	for _, m := range mods {
		if durationMatchesTrigger(m.Duration, trigger) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func durationMatchesTrigger(d ModDuration, trigger ExpireTrigger) bool {
	switch trigger {
	case TriggerTurnEnd:
		return d == DurationTurn
	case TriggerRoundEnd:
		return d == DurationRound
	case TriggerCombatEnd:
		return d == DurationCombat
	case TriggerEffectResolve:
		return d == DurationSingleEffect
	default:
		return false
	}
}

// RemoveModifierByID splices the modifier with the given ID out of
// mods, if present.
func RemoveModifierByID(mods []Modifier, id string) []Modifier {
	out := make([]Modifier, 0, len(mods))
	for _, m := range mods {
		if m.ID == id {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ConsumeInfluenceToBlock returns m with points subtracted from its
// RemainingPoints budget. InfluenceToBlockConversion itself has no
// running budget (Cost is per-point, not capped). Nothing in the module
// calls this function; Golden Grail creates no fame-tracking modifier.
func ConsumeInfluenceToBlock(m Modifier, points int) Modifier {
	m.Effect.RemainingPoints -= points
	return m
}
