package engine

// TilePlacement records one placed map tile: its catalog definition,
// board position, and the rotation it was placed under.
type TilePlacement struct {
	TileDefID string   `yaml:"tile_def_id"`
	Origin    HexCoord `yaml:"origin"` // anchor hex of the tile
	Rotation  int      `yaml:"rotation"` // 0..5, sixty-degree steps
}

// SiteOccupancy tracks a site token's runtime state, separate from its
// static SiteDef: a site's conquest-reward terms are static, while
// ownership/burned/plundered are runtime facts.
type SiteOccupancy struct {
	SiteDefID       string `yaml:"site_def_id"`
	Hex             HexCoord `yaml:"hex"`
	OwnerPlayerID   string `yaml:"owner_player_id,omitempty"`
	Burned          bool   `yaml:"burned"`
	Plundered       bool   `yaml:"plundered"`
	RampagingEnemyIDs []string `yaml:"rampaging_enemy_ids,omitempty"` // enemy_def ids currently garrisoned/rampaging here
	// RuinsTokenID is the catalog ruins_token id buried at this site, if
	// any, hidden from players until RuinsFaceUp.
	RuinsTokenID string `yaml:"ruins_token_id,omitempty"`
	RuinsFaceUp  bool   `yaml:"ruins_face_up,omitempty"`
}

// GameMap is the hex board: placed tiles, site occupancy, and the
// undrawn-tile deck. The board is built from hex-cluster tiles placed
// during exploration rather than a fixed rectangular grid, so tiles
// are stored as placements (definition, origin, rotation) instead of
// per-cell entries.
type GameMap struct {
	Tiles        []TilePlacement          `yaml:"tiles"`
	Sites        map[string]SiteOccupancy `yaml:"sites,omitempty"` // keyed by HexCoord.String()
	UndrawnTiles []string                 `yaml:"undrawn_tiles"`   // tile_def ids, deck order
}

// SiteAt returns the site occupancy at hex, if any.
func (m *GameMap) SiteAt(hex HexCoord) (SiteOccupancy, bool) {
	s, ok := m.Sites[hex.String()]
	return s, ok
}

// Clone returns an independent copy of m.
func (m GameMap) Clone() GameMap {
	cm := m
	cm.Tiles = append([]TilePlacement(nil), m.Tiles...)
	cm.UndrawnTiles = append([]string(nil), m.UndrawnTiles...)
	if m.Sites != nil {
		cm.Sites = make(map[string]SiteOccupancy, len(m.Sites))
		for k, v := range m.Sites {
			cv := v
			cv.RampagingEnemyIDs = append([]string(nil), v.RampagingEnemyIDs...)
			cm.Sites[k] = cv
		}
	}
	return cm
}
