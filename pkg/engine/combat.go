package engine

// CombatPhase orders the sub-phases of a combat.
type CombatPhase string

const (
	PhaseRangedSiege  CombatPhase = "ranged-siege"
	PhaseBlock        CombatPhase = "block"
	PhaseAssignDamage CombatPhase = "assign-damage"
	PhaseAttack       CombatPhase = "attack"
	PhaseEnd          CombatPhase = "end"
)

// combatPhaseOrder is the fixed sequence combat advances through.
var combatPhaseOrder = []CombatPhase{
	PhaseRangedSiege, PhaseBlock, PhaseAssignDamage, PhaseAttack, PhaseEnd,
}

// NextPhase returns the phase that follows p, or PhaseEnd if p is
// already terminal.
func NextPhase(p CombatPhase) CombatPhase {
	for i, ph := range combatPhaseOrder {
		if ph == p && i+1 < len(combatPhaseOrder) {
			return combatPhaseOrder[i+1]
		}
	}
	return PhaseEnd
}

// CombatContext names the circumstance combat was entered under.
type CombatContext string

const (
	ContextStandard       CombatContext = "standard"
	ContextBurnMonastery  CombatContext = "burn-monastery"
	ContextDungeon        CombatContext = "dungeon"
	ContextAssault        CombatContext = "assault"
)

// ElementalDamage tracks points of pending damage per element, keyed by
// the Element constants (physical/fire/ice/cold-fire point counts).
type ElementalDamage map[Element]int

// Total sums all elements.
func (d ElementalDamage) Total() int {
	t := 0
	for _, v := range d {
		t += v
	}
	return t
}

// Clone returns an independent copy.
func (d ElementalDamage) Clone() ElementalDamage {
	if d == nil {
		return nil
	}
	out := make(ElementalDamage, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// EnemyInstance is one enemy present in the current combat. EnemyDefID
// refers to the catalog enemy_* definition; everything else here is
// per-instance combat bookkeeping.
type EnemyInstance struct {
	InstanceID         string          `yaml:"instance_id"`
	EnemyDefID         string          `yaml:"enemy_def_id"`
	Defeated           bool            `yaml:"defeated"`
	Blocked            bool            `yaml:"blocked"`
	DamageAssigned     bool            `yaml:"damage_assigned"`
	RequiredForConquest bool           `yaml:"required_for_conquest"`
	SummonerHidden     bool            `yaml:"summoner_hidden"`

	PendingDamage ElementalDamage `yaml:"pending_damage,omitempty"`
	PendingBlock  ElementalDamage `yaml:"pending_block,omitempty"`

	Attacking bool `yaml:"attacking"` // declared as an attacker this combat (false once defeated pre-attack or skipped)

	// DefendBonus accumulates defend contributions to THIS enemy. It
	// never decreases during a combat, and resets at combat end.
	DefendBonus int `yaml:"defend_bonus"`
	UsedDefend  bool `yaml:"used_defend"` // this enemy has already contributed its own defend this combat

	VampiricArmorBonus int `yaml:"vampiric_armor_bonus,omitempty"`
	CumbersomeReduction int `yaml:"cumbersome_reduction,omitempty"`

	// AllBlockPhaseAttacksBlocked tracks Elusive's armor-reversion
	// condition: stays true only while every block-phase attack this
	// enemy participated in was fully blocked.
	AllBlockPhaseAttacksBlocked bool `yaml:"all_block_phase_attacks_blocked"`
}

// Clone returns an independent copy of e.
func (e EnemyInstance) Clone() EnemyInstance {
	ce := e
	ce.PendingDamage = e.PendingDamage.Clone()
	ce.PendingBlock = e.PendingBlock.Clone()
	return ce
}

// CombatState is the optional combat sub-state of GameState: a
// GameState has exactly one CombatState or none.
type CombatState struct {
	Phase          CombatPhase     `yaml:"phase"`
	Enemies        []EnemyInstance `yaml:"enemies"`
	Context        CombatContext   `yaml:"context"`
	IsAtFortifiedSite bool         `yaml:"is_at_fortified_site"`
	AssaultOrigin  *HexCoord       `yaml:"assault_origin,omitempty"`
	CombatHex      *HexCoord       `yaml:"combat_hex,omitempty"` // hex the enemies occupy; set by every combat entry point
	// DeclaredTargets maps enemy instance id -> true for this phase's
	// locked targets: declaring attack targets locks which enemies
	// receive the attack pool.
	DeclaredTargets map[string]bool `yaml:"declared_targets,omitempty"`
	DefendingPlayerID string `yaml:"defending_player_id,omitempty"` // for cooperative proposals
}

// Clone returns an independent copy of c.
func (c CombatState) Clone() CombatState {
	cc := c
	cc.Enemies = make([]EnemyInstance, len(c.Enemies))
	for i, e := range c.Enemies {
		cc.Enemies[i] = e.Clone()
	}
	if c.AssaultOrigin != nil {
		h := *c.AssaultOrigin
		cc.AssaultOrigin = &h
	}
	if c.CombatHex != nil {
		h := *c.CombatHex
		cc.CombatHex = &h
	}
	if c.DeclaredTargets != nil {
		cc.DeclaredTargets = make(map[string]bool, len(c.DeclaredTargets))
		for k, v := range c.DeclaredTargets {
			cc.DeclaredTargets[k] = v
		}
	}
	return cc
}

// LiveEnemyCount returns the number of undefeated enemies, used to
// enforce the rule that combat sub-state exists if and only if at
// least one live enemy instance exists in it.
func (c *CombatState) LiveEnemyCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, e := range c.Enemies {
		if !e.Defeated {
			n++
		}
	}
	return n
}

// AllRequiredDefeated reports whether every RequiredForConquest enemy
// has been defeated.
func (c *CombatState) AllRequiredDefeated() bool {
	for _, e := range c.Enemies {
		if e.RequiredForConquest && !e.Defeated {
			return false
		}
	}
	return true
}

// EnemyByID finds an enemy instance by id.
func (c *CombatState) EnemyByID(id string) (*EnemyInstance, int) {
	for i := range c.Enemies {
		if c.Enemies[i].InstanceID == id {
			return &c.Enemies[i], i
		}
	}
	return nil, -1
}
