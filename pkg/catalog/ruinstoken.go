package catalog

// RuinsTokenKind distinguishes a ruins token's two flavors.
type RuinsTokenKind string

const (
	RuinsEnemy  RuinsTokenKind = "enemy"
	RuinsReward RuinsTokenKind = "reward"
)

// RuinsTokenDef is the static definition of a ruins token. Exactly one
// of Enemies/Rewards is populated, matching Kind.
type RuinsTokenDef struct {
	ID      string         `yaml:"id"`
	Kind    RuinsTokenKind `yaml:"kind"`
	Enemies []string       `yaml:"enemies,omitempty"` // enemy_def ids
	Rewards []string       `yaml:"rewards,omitempty"` // reward descriptors
}
