package catalog

// UnitDef is the static definition of a recruitable unit.
type UnitDef struct {
	ID                  string   `yaml:"id"`
	Name                string   `yaml:"name"`
	Level               int      `yaml:"level"`
	Cost                int      `yaml:"cost"` // influence
	RecruitSiteClasses  []string `yaml:"recruit_site_classes"`
	Armor               int      `yaml:"armor"`
	Resistances         []string `yaml:"resistances,omitempty"`
	Abilities           []string `yaml:"abilities,omitempty"`
	InfluenceRequirement int     `yaml:"influence_requirement"`
}
