// Package catalog defines the read-only static data tables the rules
// engine is built against: card, unit, enemy, skill, tile, site, tactic,
// and ruins-token definitions. Lookups are total for recognized ids and
// return a CatalogMiss-shaped error for unknown ones; the catalogs
// themselves are never mutated once built.
package catalog

import "hexmarch/pkg/engine"

// Catalog bundles every static table the engine consults. Each map is
// built once (see Default) and never mutated afterward.
type Catalog struct {
	Cards       map[string]CardDef
	Units       map[string]UnitDef
	Enemies     map[string]EnemyDef
	Skills      map[string]SkillDef
	Tiles       map[string]TileDef
	Sites       map[string]SiteDef
	Tactics     map[string]TacticDef
	RuinsTokens map[string]RuinsTokenDef
}

// Card looks up a card definition by id.
func (c *Catalog) Card(id string) (CardDef, error) {
	d, ok := c.Cards[id]
	if !ok {
		return CardDef{}, &engine.CatalogMiss{Kind: "card", ID: id}
	}
	return d, nil
}

// Unit looks up a unit definition by id.
func (c *Catalog) Unit(id string) (UnitDef, error) {
	d, ok := c.Units[id]
	if !ok {
		return UnitDef{}, &engine.CatalogMiss{Kind: "unit", ID: id}
	}
	return d, nil
}

// Enemy looks up an enemy definition by id.
func (c *Catalog) Enemy(id string) (EnemyDef, error) {
	d, ok := c.Enemies[id]
	if !ok {
		return EnemyDef{}, &engine.CatalogMiss{Kind: "enemy", ID: id}
	}
	return d, nil
}

// Skill looks up a skill definition by id.
func (c *Catalog) Skill(id string) (SkillDef, error) {
	d, ok := c.Skills[id]
	if !ok {
		return SkillDef{}, &engine.CatalogMiss{Kind: "skill", ID: id}
	}
	return d, nil
}

// Tile looks up a tile definition by id.
func (c *Catalog) Tile(id string) (TileDef, error) {
	d, ok := c.Tiles[id]
	if !ok {
		return TileDef{}, &engine.CatalogMiss{Kind: "tile", ID: id}
	}
	return d, nil
}

// Site looks up a site definition by id.
func (c *Catalog) Site(id string) (SiteDef, error) {
	d, ok := c.Sites[id]
	if !ok {
		return SiteDef{}, &engine.CatalogMiss{Kind: "site", ID: id}
	}
	return d, nil
}

// Tactic looks up a tactic definition by id.
func (c *Catalog) Tactic(id string) (TacticDef, error) {
	d, ok := c.Tactics[id]
	if !ok {
		return TacticDef{}, &engine.CatalogMiss{Kind: "tactic", ID: id}
	}
	return d, nil
}

// RuinsToken looks up a ruins-token definition by id.
func (c *Catalog) RuinsToken(id string) (RuinsTokenDef, error) {
	d, ok := c.RuinsTokens[id]
	if !ok {
		return RuinsTokenDef{}, &engine.CatalogMiss{Kind: "ruins_token", ID: id}
	}
	return d, nil
}
