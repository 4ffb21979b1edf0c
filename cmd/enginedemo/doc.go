// Package main provides a small demonstration application for the
// hexmarch rules engine: pkg/engine, pkg/catalog, pkg/validation,
// pkg/actions, and pkg/legal wired together end to end.
//
// # Usage
//
// Run the demo directly:
//
//	go run ./cmd/enginedemo
//
// Or build and execute:
//
//	go build -o enginedemo ./cmd/enginedemo
//	./enginedemo -seed 7 -log-level debug
//
// # What it does
//
// The demo builds a minimal two-player GameState against the default
// catalog (two placed tiles, a village and a keep, two players on
// opposite ends of the board), then submits a short scripted sequence
// of actions through an actions.Dispatcher: a move, a card play, a
// second move, an end-of-round announcement, and an end turn. Each
// step prints the events the command produced and a compact state
// summary.
//
// # Output
//
// The demo prints, per step:
//
//   - the events emitted by that command, with their field maps
//   - each player's position, remaining move, hand, and fame
//   - the current contents of every shared offer
//
// At the end it serializes the final state to YAML via engine.Marshal,
// round-trips it back through engine.Unmarshal, and prints the
// encoded size, demonstrating that GameState survives a save/load
// cycle losslessly.
package main
