package catalog

import "hexmarch/pkg/engine"

// CardKind classifies a card's basic nature.
type CardKind string

const (
	CardKindAction         CardKind = "action"
	CardKindSpell          CardKind = "spell"
	CardKindArtifact       CardKind = "artifact"
	CardKindAdvancedAction CardKind = "advanced-action"
	CardKindWound          CardKind = "wound"
)

// CardFace is one of the three ways a card can be played.
type CardFace string

const (
	FaceBasic    CardFace = "basic"
	FacePowered  CardFace = "powered"
	FaceSideways CardFace = "sideways"
)

// SidewaysValueType names what a card played sideways contributes.
type SidewaysValueType string

const (
	SidewaysMove      SidewaysValueType = "move"
	SidewaysInfluence SidewaysValueType = "influence"
	SidewaysAttack    SidewaysValueType = "attack"
	SidewaysBlock     SidewaysValueType = "block"
)

// CardDef is the static definition of one card.
type CardDef struct {
	ID               string                    `yaml:"id"`
	Name             string                    `yaml:"name"`
	Kind             CardKind                  `yaml:"kind"`
	BasicEffects     []engine.AtomicEffect     `yaml:"basic_effects"`
	PoweredEffects   []engine.AtomicEffect     `yaml:"powered_effects,omitempty"`
	PoweredBy        []string                  `yaml:"powered_by,omitempty"` // basic mana colors that power this card
	SidewaysValue    int                       `yaml:"sideways_value"`       // normally 1
	Categories       []string                  `yaml:"categories,omitempty"`
	DestroyOnPowered bool                      `yaml:"destroy_on_powered,omitempty"`
}
