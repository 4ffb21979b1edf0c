// Package legal is the legal-action enumerator: given a state and a
// player, it names every currently executable action and its
// parameters. Computation is derivative — no internal state — and
// deliberately calls the SAME validator predicates pkg/validation runs
// at submit time, wherever an action kind is cheap to probe directly,
// so the two can never drift. Hand-rolling a second copy of each
// predicate here would let the enumerator and the validator disagree,
// and the UI is built on the promise that they never do.
package legal

import (
	"strings"

	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
	"hexmarch/pkg/validation"

	"golang.org/x/exp/slices"
)

// MovementOption describes one adjacent hex as a move target.
type MovementOption struct {
	Hex     engine.HexCoord
	Cost    int
	Allowed bool
	Reason  string // rejection code when Allowed is false
}

// CardOption names one hand card and which faces are currently legal.
type CardOption struct {
	CardID string
	Faces  []catalog.CardFace
}

// SkillOption names one learned skill and whether it can be activated.
type SkillOption struct {
	SkillID      string
	CanActivate  bool
	Reason       string
}

// UnitOption names one owned unit and whether it can be activated.
type UnitOption struct {
	InstanceID  string
	CanActivate bool
	Reason      string
}

// RecruitOption names one recruitable offer slot.
type RecruitOption struct {
	UnitID      string
	CanAfford   bool
	Cost        int
}

// EnemyAttackState summarizes one combat enemy for the UI: its
// effective armor, pending damage, and whether the current pool could
// defeat it.
type EnemyAttackState struct {
	InstanceID     string
	EffectiveArmor int
	PendingDamage  int
	CanDefeat      bool
	Defeated       bool
	Blocked        bool
}

// CombatOptions is populated only when a combat sub-state is active.
type CombatOptions struct {
	Phase                CombatPhase
	AvailableAttackPools map[string]int
	Enemies              []EnemyAttackState
	RequiredBlock        map[string]int // enemy instance id -> block points still needed
	CanFinalize          bool
	CanConvertInfluence  bool
	// CanConvertMove reports whether the player holds an active
	// MoveToAttack conversion modifier and has both the move points and
	// combat phase to use it right now.
	CanConvertMove bool
	// AvailableDefenders lists defend-capable, alive, not-yet-used
	// enemy instance ids that could still contribute their Defend
	// bonus this combat (attack phase only; empty otherwise).
	AvailableDefenders []string
	// CumbersomeTargets lists still-attacking Cumbersome enemy
	// instance ids the player could spend move against in the block
	// phase (empty otherwise, or if the player has no move left).
	CumbersomeTargets []string
}

// CombatPhase re-exports engine.CombatPhase for callers that only
// import pkg/legal.
type CombatPhase = engine.CombatPhase

// LegalActions is the full set of currently executable actions for one
// player, recomputed after every Submit call.
type LegalActions struct {
	PlayerID              string
	Movement              []MovementOption
	ExploreEdges          []engine.HexCoord
	PlayableCards         []CardOption
	SidewaysValueTypes    []catalog.SidewaysValueType
	Skills                []SkillOption
	Units                 []UnitOption
	RecruitOffers         []RecruitOption
	Combat                *CombatOptions
	// SelectableTactics lists offer tactics the player could select
	// right now; empty outside the tactics-selection round phase.
	SelectableTactics     []string
	CanEnterSite          bool
	CanInteract           bool
	CanPlunderVillage     bool
	CanDeclareRest        bool
	CanCompleteRest       bool
	CanAnnounceEndOfRound bool
	CanEndTurn            bool
	CanChallengeRampaging bool
	CanUndo               bool
	HasPendingChoice      bool
}

// probe runs validation.Validate for a synthetic candidate action and
// reports whether it currently passes.
func probe(state *engine.GameState, cat *catalog.Catalog, playerID string, a engine.Action) (bool, string) {
	if rej := validation.Validate(state, cat, playerID, a); rej != nil {
		return false, rej.Code
	}
	return true, ""
}

// Compute enumerates every legal action for playerID against state.
func Compute(state *engine.GameState, cat *catalog.Catalog, playerID string) LegalActions {
	out := LegalActions{PlayerID: playerID}

	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return out
	}
	out.HasPendingChoice = p.PendingChoice != nil

	out.Movement = computeMovement(state, cat, playerID, p)
	out.ExploreEdges = computeExploreEdges(state, cat, playerID)
	out.PlayableCards = computePlayableCards(state, cat, playerID, p)
	out.SidewaysValueTypes = computeSidewaysChoices(state, playerID)
	out.Skills = computeSkills(state, cat, playerID, p)
	out.Units = computeUnits(state, cat, playerID, p)
	out.RecruitOffers = computeRecruitOffers(state, cat, playerID, p)
	out.Combat = computeCombatOptions(state, cat, playerID, p)

	for _, tacticID := range state.Offers[engine.OfferTactic] {
		if ok, _ := probe(state, cat, playerID, engine.NewAction(engine.ActionSelectTactic).With("tactic_id", tacticID)); ok {
			out.SelectableTactics = append(out.SelectableTactics, tacticID)
		}
	}

	out.CanEnterSite, _ = probe(state, cat, playerID, engine.NewAction(engine.ActionEnterSite))
	out.CanInteract, _ = probe(state, cat, playerID, engine.NewAction(engine.ActionInteract))
	out.CanPlunderVillage, _ = probe(state, cat, playerID, engine.NewAction(engine.ActionPlunderVillage))
	out.CanDeclareRest, _ = probe(state, cat, playerID, engine.NewAction(engine.ActionDeclareRest).With("kind", "standard"))
	out.CanCompleteRest, _ = probe(state, cat, playerID, engine.NewAction(engine.ActionCompleteRest))
	out.CanAnnounceEndOfRound, _ = probe(state, cat, playerID, engine.NewAction(engine.ActionAnnounceEndOfRound))
	out.CanEndTurn, _ = probe(state, cat, playerID, engine.NewAction(engine.ActionEndTurn))

	for hex := range adjacentRampagingHexes(state, p) {
		out.CanChallengeRampaging = true
		_ = hex
		break
	}

	out.CanUndo = len(state.UndoStack) > 0 && state.UndoStack[len(state.UndoStack)-1].PlayerID == playerID

	return out
}

func adjacentRampagingHexes(state *engine.GameState, p *engine.Player) map[engine.HexCoord]bool {
	out := map[engine.HexCoord]bool{}
	for _, n := range p.Position.Neighbors() {
		if site, ok := state.Map.SiteAt(n); ok && len(site.RampagingEnemyIDs) > 0 {
			out[n] = true
		}
	}
	return out
}

func computeMovement(state *engine.GameState, cat *catalog.Catalog, playerID string, p *engine.Player) []MovementOption {
	var out []MovementOption
	for _, n := range p.Position.Neighbors() {
		terrain, ok := cat.TerrainAt(&state.Map, n)
		cost := 0
		if ok {
			cost = engine.EffectiveTerrainCost(state.Modifiers, playerID, string(terrain), catalog.BaseTerrainCost(terrain))
		}
		allowed, reason := probe(state, cat, playerID, engine.NewAction(engine.ActionMove).With("to", n))
		if allowed && ok && p.Move < cost {
			allowed = false
			reason = validation.CodeNotEnoughMove
		}
		out = append(out, MovementOption{Hex: n, Cost: cost, Allowed: allowed, Reason: reason})
	}
	return out
}

// computeExploreEdges reports whether explore is legal at all — a
// full board-edge scan (every coastline hex with no tile placed
// beyond it) is a host/UI rendering concern built from GameMap.Tiles
// directly; the validator this enumerator mirrors only checks turn
// state and undrawn-tile-deck emptiness, not hex-by-hex geometry.
func computeExploreEdges(state *engine.GameState, cat *catalog.Catalog, playerID string) []engine.HexCoord {
	var out []engine.HexCoord
	if ok, _ := probe(state, cat, playerID, engine.NewAction(engine.ActionExplore).With("edge", engine.HexCoord{})); ok {
		out = append(out, engine.HexCoord{})
	}
	return out
}

func computePlayableCards(state *engine.GameState, cat *catalog.Catalog, playerID string, p *engine.Player) []CardOption {
	var out []CardOption
	for _, cardID := range p.Hand {
		def, err := cat.Card(cardID)
		if err != nil {
			continue
		}
		opt := CardOption{CardID: cardID}
		if ok, _ := probe(state, cat, playerID, engine.NewAction(engine.ActionPlayCard).With("card_id", cardID).With("face", string(catalog.FaceBasic))); ok {
			opt.Faces = append(opt.Faces, catalog.FaceBasic)
		}
		if len(def.PoweredBy) > 0 {
			if ok, _ := probe(state, cat, playerID, engine.NewAction(engine.ActionPlayCard).With("card_id", cardID).With("face", string(catalog.FacePowered)).With("payment_colors", def.PoweredBy)); ok {
				opt.Faces = append(opt.Faces, catalog.FacePowered)
			}
		}
		if ok, _ := probe(state, cat, playerID, engine.NewAction(engine.ActionPlayCardSideways).With("card_id", cardID).With("value_type", string(catalog.SidewaysMove))); ok {
			opt.Faces = append(opt.Faces, catalog.FaceSideways)
		}
		if len(opt.Faces) > 0 {
			out = append(out, opt)
		}
	}
	return out
}

func computeSidewaysChoices(state *engine.GameState, _ string) []catalog.SidewaysValueType {
	if state.Combat == nil {
		return []catalog.SidewaysValueType{catalog.SidewaysMove, catalog.SidewaysInfluence}
	}
	switch state.Combat.Phase {
	case engine.PhaseBlock:
		return []catalog.SidewaysValueType{catalog.SidewaysBlock}
	case engine.PhaseAttack:
		return []catalog.SidewaysValueType{catalog.SidewaysAttack}
	default:
		return nil
	}
}

func computeSkills(state *engine.GameState, cat *catalog.Catalog, playerID string, p *engine.Player) []SkillOption {
	var out []SkillOption
	for _, s := range p.Skills {
		allowed, reason := probe(state, cat, playerID, engine.NewAction(engine.ActionUseSkill).With("skill_id", s.SkillID))
		out = append(out, SkillOption{SkillID: s.SkillID, CanActivate: allowed, Reason: reason})
	}
	return out
}

func computeUnits(state *engine.GameState, cat *catalog.Catalog, playerID string, p *engine.Player) []UnitOption {
	var out []UnitOption
	for _, u := range p.Units {
		allowed, reason := probe(state, cat, playerID, engine.NewAction(engine.ActionActivateUnit).With("unit_instance_id", u.InstanceID))
		out = append(out, UnitOption{InstanceID: u.InstanceID, CanActivate: allowed, Reason: reason})
	}
	return out
}

func computeRecruitOffers(state *engine.GameState, cat *catalog.Catalog, playerID string, p *engine.Player) []RecruitOption {
	var out []RecruitOption
	for _, unitID := range state.Offers[engine.OfferUnit] {
		def, err := cat.Unit(unitID)
		if err != nil {
			continue
		}
		cost := engine.EffectiveRecruitCost(state.Modifiers, playerID, def.InfluenceRequirement)
		allowed, _ := probe(state, cat, playerID, engine.NewAction(engine.ActionRecruitUnit).With("unit_id", unitID))
		out = append(out, RecruitOption{UnitID: unitID, CanAfford: allowed && p.Influence >= cost, Cost: cost})
	}
	slices.SortFunc(out, func(a, b RecruitOption) int { return strings.Compare(a.UnitID, b.UnitID) })
	return out
}

func computeCombatOptions(state *engine.GameState, cat *catalog.Catalog, playerID string, p *engine.Player) *CombatOptions {
	if state.Combat == nil {
		return nil
	}
	co := &CombatOptions{Phase: state.Combat.Phase, AvailableAttackPools: map[string]int{}, RequiredBlock: map[string]int{}}
	for k, v := range p.AttackPools {
		co.AvailableAttackPools[k] = v
	}
	for _, e := range state.Combat.Enemies {
		def, err := cat.Enemy(e.EnemyDefID)
		if err != nil {
			continue
		}
		stats := EnemyStatsFrom(def)
		armor := engine.EffectiveEnemyArmor(e, stats, state.Modifiers)
		pending := e.PendingDamage.Total()
		co.Enemies = append(co.Enemies, EnemyAttackState{
			InstanceID:     e.InstanceID,
			EffectiveArmor: armor,
			PendingDamage:  pending,
			CanDefeat:      pending >= armor,
			Defeated:       e.Defeated,
			Blocked:        e.Blocked,
		})
		if state.Combat.Phase == engine.PhaseBlock && e.Attacking && !e.Blocked {
			attack := engine.EffectiveEnemyAttack(e, stats, state.Modifiers)
			need := attack
			if stats.HasAbility("swift") {
				need = attack * 2
			}
			co.RequiredBlock[e.InstanceID] = need
			if stats.HasAbility("cumbersome") && p.Move > 0 {
				co.CumbersomeTargets = append(co.CumbersomeTargets, e.InstanceID)
			}
		}
		if state.Combat.Phase == engine.PhaseAttack && !e.Defeated && stats.HasAbility("defend") && !e.UsedDefend &&
			!engine.IsAbilityNullified(state.Modifiers, stats, e.InstanceID, "defend") {
			co.AvailableDefenders = append(co.AvailableDefenders, e.InstanceID)
		}
	}
	co.CanFinalize, _ = probe(state, cat, playerID, engine.NewAction(engine.ActionFinalizeAttack))
	co.CanConvertInfluence, _ = probe(state, cat, playerID, engine.NewAction(engine.ActionConvertInfluenceToBlock).With("amount", 0))
	co.CanConvertMove, _ = probe(state, cat, playerID, engine.NewAction(engine.ActionConvertMoveToAttack).With("amount", 1))
	return co
}

// EnemyStatsFrom converts a catalog.EnemyDef into the engine-local
// EnemyStats the modifier queries operate on, field for field the same
// conversion as pkg/actions' enemyStatsFrom.
func EnemyStatsFrom(def catalog.EnemyDef) engine.EnemyStats {
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
