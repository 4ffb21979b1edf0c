package catalog

import "hexmarch/pkg/engine"

// TerrainKind names a hex's terrain class, used by terrain-cost
// modifiers (Modifier.Effect.Kind == EffectTerrainCostDelta).
type TerrainKind string

const (
	TerrainPlains TerrainKind = "plains"
	TerrainHills  TerrainKind = "hills"
	TerrainForest TerrainKind = "forest"
	TerrainDesert TerrainKind = "desert"
	TerrainSwamp  TerrainKind = "swamp"
	TerrainLake   TerrainKind = "lake"
	TerrainMountains TerrainKind = "mountains"
	TerrainCity   TerrainKind = "city"
)

// PreplacedSite marks a site token baked into a tile's layout at a hex
// offset relative to the tile's origin.
type PreplacedSite struct {
	Offset  engine.HexCoord `yaml:"offset"`
	SiteDefID string        `yaml:"site_def_id"`
}

// TileDef is the static definition of a map tile: terrain layout,
// preplaced site tokens, and whether it is a core tile (cannot be
// placed on the coastline) or a wedge-edge tile.
type TileDef struct {
	ID             string                         `yaml:"id"`
	Name           string                         `yaml:"name"`
	Terrain        map[engine.HexCoord]TerrainKind `yaml:"-"` // keyed by offset from origin; not yaml-serialized (map key type)
	PreplacedSites []PreplacedSite                `yaml:"preplaced_sites,omitempty"`
	IsCoreTile     bool                           `yaml:"is_core_tile"`
}

// RotateOffset rotates a tile-relative axial offset by steps sixty-
// degree clockwise turns, via the standard cube-coordinate rotation
// (x,y,z) -> (-z,-x,-y) applied `steps` times.
func RotateOffset(off engine.HexCoord, steps int) engine.HexCoord {
	x, z := off.Q, off.R
	y := -x - z
	steps = ((steps % 6) + 6) % 6
	for i := 0; i < steps; i++ {
		x, y, z = -z, -x, -y
	}
	return engine.HexCoord{Q: x, R: z}
}

// TerrainAt resolves the terrain kind at an absolute hex, given the
// map's placed tiles and this catalog's tile definitions. Returns
// ok=false when hex falls outside every placed tile.
func (c *Catalog) TerrainAt(m *engine.GameMap, hex engine.HexCoord) (TerrainKind, bool) {
	for _, pl := range m.Tiles {
		def, err := c.Tile(pl.TileDefID)
		if err != nil {
			continue
		}
		for off, terrain := range def.Terrain {
			rot := RotateOffset(off, pl.Rotation)
			abs := engine.HexCoord{Q: pl.Origin.Q + rot.Q, R: pl.Origin.R + rot.R}
			if abs == hex {
				return terrain, true
			}
		}
	}
	return "", false
}

// BaseTerrainCost is the movement-point cost of entering a hex of the
// given terrain class before any TerrainCostDelta modifiers apply.
func BaseTerrainCost(t TerrainKind) int {
	switch t {
	case TerrainPlains:
		return 2
	case TerrainHills, TerrainSwamp:
		return 3
	case TerrainForest:
		return 3
	case TerrainDesert:
		return 2
	case TerrainLake, TerrainMountains:
		return 4
	case TerrainCity:
		return 2
	default:
		return 2
	}
}
