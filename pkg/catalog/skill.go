package catalog

// SkillUsageKind classifies when a skill may be used.
type SkillUsageKind string

const (
	UsagePassive       SkillUsageKind = "passive"
	UsageOncePerTurn   SkillUsageKind = "once-per-turn"
	UsageOncePerRound  SkillUsageKind = "once-per-round"
	UsageInteractive   SkillUsageKind = "interactive"
	UsageBlockPhase    SkillUsageKind = "block-phase"
	UsageRangedPhase   SkillUsageKind = "ranged-phase"
	UsageMeleePhase    SkillUsageKind = "melee-phase"
)

// SkillDef is the static definition of a learnable skill.
type SkillDef struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Usage       SkillUsageKind `yaml:"usage"`
	Categories  []string       `yaml:"categories,omitempty"`
	Description string         `yaml:"description"`
}
