package catalog

import "hexmarch/pkg/engine"

// Default builds the engine's built-in sample catalog: a small but
// real data set covering every entity kind the catalog defines, large
// enough to drive representative end-to-end play scenarios. It is
// hand-built rather than file-loaded, though every def carries yaml
// tags so a file-backed loader is a drop-in addition a host could add
// later without touching the engine.
func Default() *Catalog {
	c := &Catalog{
		Cards:       map[string]CardDef{},
		Units:       map[string]UnitDef{},
		Enemies:     map[string]EnemyDef{},
		Skills:      map[string]SkillDef{},
		Tiles:       map[string]TileDef{},
		Sites:       map[string]SiteDef{},
		Tactics:     map[string]TacticDef{},
		RuinsTokens: map[string]RuinsTokenDef{},
	}
	seedCards(c)
	seedEnemies(c)
	seedUnits(c)
	seedSkills(c)
	seedTiles(c)
	seedSites(c)
	seedTactics(c)
	seedRuinsTokens(c)
	return c
}

func seedCards(c *Catalog) {
	c.Cards["card_wound"] = CardDef{
		ID:   "card_wound",
		Name: "Wound",
		Kind: CardKindWound,
	}

	c.Cards["card_march"] = CardDef{
		ID:   "card_march",
		Name: "March",
		Kind: CardKindAction,
		BasicEffects: []engine.AtomicEffect{
			{Kind: engine.EffGainMove, Amount: 2},
		},
		PoweredEffects: []engine.AtomicEffect{
			{Kind: engine.EffGainMove, Amount: 4},
		},
		PoweredBy:     []string{"green"},
		SidewaysValue: 1,
	}

	c.Cards["card_rage"] = CardDef{
		ID:   "card_rage",
		Name: "Rage",
		Kind: CardKindAction,
		BasicEffects: []engine.AtomicEffect{
			{Kind: engine.EffGainAttack, ValueType: engine.ValueAttack, Element: engine.ElementPhysical, Amount: 2},
		},
		PoweredEffects: []engine.AtomicEffect{
			{Kind: engine.EffGainAttack, ValueType: engine.ValueAttack, Element: engine.ElementFire, Amount: 4},
		},
		PoweredBy:     []string{"red"},
		SidewaysValue: 1,
	}

	// Diplomacy's basic face grants influence AND a standing
	// influence-to-block conversion modifier for the rest of the turn.
	c.Cards["card_diplomacy"] = CardDef{
		ID:   "card_diplomacy",
		Name: "Diplomacy",
		Kind: CardKindAction,
		BasicEffects: []engine.AtomicEffect{
			{Kind: engine.EffGainInfluence, Amount: 2},
			{Kind: engine.EffAddModifier, Modifier: &engine.Modifier{
				Source:   "card_diplomacy",
				Duration: engine.DurationTurn,
				Scope:    engine.ScopeSelf,
				Effect: engine.EffectPayload{
					Kind:    engine.EffectInfluenceToBlock,
					Cost:    1,
					Element: engine.ElementPhysical,
				},
			}},
		},
		PoweredEffects: []engine.AtomicEffect{
			{Kind: engine.EffGainInfluence, Amount: 4},
			{Kind: engine.EffAddModifier, Modifier: &engine.Modifier{
				Source:   "card_diplomacy",
				Duration: engine.DurationTurn,
				Scope:    engine.ScopeSelf,
				Effect: engine.EffectPayload{
					Kind:    engine.EffectInfluenceToBlock,
					Cost:    1,
					Element: engine.ElementPhysical,
				},
			}},
		},
		PoweredBy:     []string{"white"},
		SidewaysValue: 1,
	}

	// Golden Grail has reactive, per-wound-healed behavior (fame per
	// wound on its basic face; a lingering draw-on-heal modifier on
	// its powered face) that does not fit the flat AtomicEffect list —
	// it is resolved by the dedicated goldenGrail* functions in
	// pkg/actions/cardplay.go. BasicEffects/PoweredEffects are left
	// empty deliberately; pkg/actions dispatches on the card id.
	c.Cards["card_golden_grail"] = CardDef{
		ID:         "card_golden_grail",
		Name:       "Golden Grail",
		Kind:       CardKindArtifact,
		PoweredBy:  []string{"white"},
		Categories: []string{"artifact", "healing"},
	}
}

func seedEnemies(c *Catalog) {
	c.Enemies["enemy_basic"] = EnemyDef{
		ID:            "enemy_basic",
		Name:          "Prowler",
		Color:         ColorGreen,
		BaseArmor:     4,
		BaseAttack:    3,
		AttackElement: engine.ElementPhysical,
		Fame:          3,
	}

	c.Enemies["enemy_defender"] = EnemyDef{
		ID:            "enemy_defender",
		Name:          "Shield Bearer",
		Color:         ColorGrey,
		BaseArmor:     4,
		BaseAttack:    3,
		AttackElement: engine.ElementPhysical,
		Fame:          4,
		Abilities:     []EnemyAbility{AbilityDefend},
		DefendValue:   2,
	}

	c.Enemies["enemy_swift_brute"] = EnemyDef{
		ID:            "enemy_swift_brute",
		Name:          "Swift Brute",
		Color:         ColorBrown,
		BaseArmor:     5,
		BaseAttack:    4,
		AttackElement: engine.ElementPhysical,
		Fame:          5,
		Abilities:     []EnemyAbility{AbilitySwift, AbilityBrutal},
	}

	c.Enemies["enemy_elusive_scout"] = EnemyDef{
		ID:            "enemy_elusive_scout",
		Name:          "Elusive Scout",
		Color:         ColorGreen,
		BaseArmor:     6,
		ElusiveArmor:  3,
		BaseAttack:    3,
		AttackElement: engine.ElementPhysical,
		Fame:          4,
		Abilities:     []EnemyAbility{AbilityElusive},
	}

	c.Enemies["enemy_arcane_guardian"] = EnemyDef{
		ID:            "enemy_arcane_guardian",
		Name:          "Arcane Guardian",
		Color:         ColorViolet,
		BaseArmor:     7,
		BaseAttack:    5,
		AttackElement: engine.ElementIce,
		Fame:          6,
		Abilities:     []EnemyAbility{AbilityArcaneImmunity, AbilityDefend},
		DefendValue:   1,
	}

	c.Enemies["enemy_rampaging_wolf"] = EnemyDef{
		ID:              "enemy_rampaging_wolf",
		Name:            "Rampaging Wolf",
		Color:           ColorGreen,
		BaseArmor:       3,
		BaseAttack:      2,
		AttackElement:   engine.ElementPhysical,
		Fame:            2,
		ReputationDelta: -1,
	}
}

func seedUnits(c *Catalog) {
	c.Units["unit_peasant_levy"] = UnitDef{
		ID:                   "unit_peasant_levy",
		Name:                 "Peasant Levy",
		Level:                1,
		Cost:                 3,
		RecruitSiteClasses:   []string{"village"},
		Armor:                2,
		InfluenceRequirement: 3,
	}
	c.Units["unit_monastery_guard"] = UnitDef{
		ID:                   "unit_monastery_guard",
		Name:                 "Monastery Guard",
		Level:                2,
		Cost:                 5,
		RecruitSiteClasses:   []string{"monastery"},
		Armor:                3,
		Abilities:            []string{"block-phase"},
		InfluenceRequirement: 5,
	}
}

func seedSkills(c *Catalog) {
	c.Skills["skill_tireless_march"] = SkillDef{
		ID:          "skill_tireless_march",
		Name:        "Tireless March",
		Usage:       UsageOncePerTurn,
		Categories:  []string{"movement"},
		Description: "Once per turn, gain 1 move.",
	}
	c.Skills["skill_steady_block"] = SkillDef{
		ID:          "skill_steady_block",
		Name:        "Steady Block",
		Usage:       UsageBlockPhase,
		Categories:  []string{"combat"},
		Description: "Once per combat, gain 2 physical block.",
	}
}

func seedTiles(c *Catalog) {
	c.Tiles["tile_greenglade"] = TileDef{
		ID:         "tile_greenglade",
		Name:       "Greenglade",
		IsCoreTile: false,
		Terrain: map[engine.HexCoord]TerrainKind{
			{Q: 0, R: 0}:  TerrainPlains,
			{Q: 1, R: 0}:  TerrainPlains,
			{Q: 1, R: -1}: TerrainForest,
			{Q: 0, R: -1}: TerrainHills,
			{Q: -1, R: 0}: TerrainPlains,
			{Q: -1, R: 1}: TerrainForest,
			{Q: 0, R: 1}:  TerrainPlains,
		},
		PreplacedSites: []PreplacedSite{
			{Offset: engine.HexCoord{Q: 1, R: 0}, SiteDefID: "site_village_greenglade"},
		},
	}
	c.Tiles["tile_ashreach"] = TileDef{
		ID:         "tile_ashreach",
		Name:       "Ashreach",
		IsCoreTile: true,
		Terrain: map[engine.HexCoord]TerrainKind{
			{Q: 0, R: 0}:  TerrainPlains,
			{Q: 1, R: 0}:  TerrainDesert,
			{Q: 1, R: -1}: TerrainMountains,
			{Q: 0, R: -1}: TerrainHills,
			{Q: -1, R: 0}: TerrainSwamp,
			{Q: -1, R: 1}: TerrainHills,
			{Q: 0, R: 1}:  TerrainDesert,
		},
		PreplacedSites: []PreplacedSite{
			{Offset: engine.HexCoord{Q: -1, R: 1}, SiteDefID: "site_keep_ashreach"},
		},
	}
}

func seedSites(c *Catalog) {
	c.Sites["site_village_greenglade"] = SiteDef{
		ID:             "site_village_greenglade",
		Name:           "Greenglade Village",
		Kind:           SiteVillage,
		Inhabited:      true,
		HasHealing:     true,
		HealingCost:    1,
		RecruitClasses: []string{"village"},
	}
	c.Sites["site_monastery_stillwater"] = SiteDef{
		ID:             "site_monastery_stillwater",
		Name:           "Stillwater Monastery",
		Kind:           SiteMonastery,
		Inhabited:      true,
		HasHealing:     true,
		HealingCost:    1,
		RecruitClasses: []string{"monastery"},
	}
	c.Sites["site_keep_ashreach"] = SiteDef{
		ID:        "site_keep_ashreach",
		Name:      "Ashreach Keep",
		Kind:      SiteKeep,
		Fortified: true,
		ConquestReward: ConquestReward{
			Fame:            5,
			ReputationDelta: 1,
		},
	}
}

func seedTactics(c *Catalog) {
	c.Tactics["tactic_early_scout"] = TacticDef{
		ID:        "tactic_early_scout",
		Name:      "Early Scout",
		TimeOfDay: engine.Day,
		Effects: []engine.AtomicEffect{
			{Kind: engine.EffGainMove, Amount: 2},
		},
	}
	c.Tactics["tactic_nightfall_haste"] = TacticDef{
		ID:        "tactic_nightfall_haste",
		Name:      "Nightfall Haste",
		TimeOfDay: engine.Night,
		Effects: []engine.AtomicEffect{
			{Kind: engine.EffGainMove, Amount: 3},
		},
	}
}

func seedRuinsTokens(c *Catalog) {
	c.RuinsTokens["ruins_hidden_den"] = RuinsTokenDef{
		ID:      "ruins_hidden_den",
		Kind:    RuinsEnemy,
		Enemies: []string{"enemy_basic"},
	}
	c.RuinsTokens["ruins_buried_cache"] = RuinsTokenDef{
		ID:      "ruins_buried_cache",
		Kind:    RuinsReward,
		Rewards: []string{"crystal:red"},
	}
}
