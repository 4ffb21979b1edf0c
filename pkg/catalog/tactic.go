package catalog

import "hexmarch/pkg/engine"

// TacticDef is the static definition of a tactic card: a
// time-of-day-scoped effect chosen during the tactics-selection round
// phase.
type TacticDef struct {
	ID        string               `yaml:"id"`
	Name      string               `yaml:"name"`
	TimeOfDay engine.TimeOfDay     `yaml:"time_of_day"`
	Effects   []engine.AtomicEffect `yaml:"effects"`
}
