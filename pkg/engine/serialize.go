package engine

import "gopkg.in/yaml.v3"

// Marshal serializes a GameState to YAML. Every field on GameState and
// its substructures carries a yaml tag for exactly this purpose, so the
// host layer can persist and restore a game without the engine needing
// a bespoke wire format.
func Marshal(s GameState) ([]byte, error) {
	return yaml.Marshal(s)
}

// Unmarshal reconstructs a GameState from bytes produced by Marshal.
func Unmarshal(data []byte) (GameState, error) {
	var s GameState
	if err := yaml.Unmarshal(data, &s); err != nil {
		return GameState{}, NewInternal("failed to unmarshal game state", err)
	}
	return s, nil
}
