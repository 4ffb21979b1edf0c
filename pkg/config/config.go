// Package config holds the rules engine's own small set of tunables —
// knobs that govern the engine's own bookkeeping (undo depth, default
// RNG seed) rather than gameplay data, which belongs to pkg/catalog.
// The engine has no transport layer, so there are no server ports,
// TLS settings, or session timeouts to carry; the struct holds only
// the fields an embedded rules engine actually needs.
package config

// Config is the engine's tunable configuration, distinct from the
// static game-data catalog.
type Config struct {
	// MaxUndoDepth bounds how many reversible commands the undo stack
	// retains before the oldest entries are dropped. A non-reversible
	// command always truncates the stack regardless of this value.
	MaxUndoDepth int

	// DefaultSeed is the engine's default RNG seed value. No code in the
	// module reads it; callers pass a seed to engine.NewRNGStream
	// themselves.
	DefaultSeed int64

	// StrictCatalogLookups, when true, treats any CatalogMiss discovered
	// mid-execution as a fatal precondition violation (the default).
	// Reserved for a future permissive fixture-loading mode; no code
	// path currently sets this false.
	StrictCatalogLookups bool
}

// Default returns the engine's default configuration.
func Default() Config {
	return Config{
		MaxUndoDepth:          50,
		DefaultSeed:           1,
		StrictCatalogLookups:  true,
	}
}
