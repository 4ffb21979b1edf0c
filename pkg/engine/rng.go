package engine

import "math/rand"

// RNGStream is the engine's pseudo-random source. Its entire state is a
// single int64 seed plus a draw counter, both of which are persisted as
// part of GameState, so replaying the same sequence of actions against
// the same starting seed reproduces the same outcomes.
//
// Only two primitives are needed: rolling a die face and shuffling a
// reservoir. Stdlib math/rand is enough for both — the requirement is
// a seedable source, not any particular algorithm.
type RNGStream struct {
	Seed  int64 `yaml:"rng_seed"`  // seed the stream was created with
	Draws int64 `yaml:"rng_draws"` // number of values drawn so far
}

// NewRNGStream creates a stream seeded for deterministic play.
func NewRNGStream(seed int64) RNGStream {
	return RNGStream{Seed: seed}
}

// source rebuilds the underlying *rand.Rand and fast-forwards it past
// every value already drawn, so RNGStream stays a plain value type
// (serializable, comparable) instead of holding a live generator.
func (s RNGStream) source() *rand.Rand {
	r := rand.New(rand.NewSource(s.Seed))
	for i := int64(0); i < s.Draws; i++ {
		r.Int63()
	}
	return r
}

// RollDie returns a uniform value in [1, faces] and the stream advanced
// past that draw.
func (s RNGStream) RollDie(faces int) (int, RNGStream) {
	r := s.source()
	v := r.Intn(faces) + 1
	return v, RNGStream{Seed: s.Seed, Draws: s.Draws + 1}
}

// Shuffle returns a new permutation of ids (Fisher-Yates) and the stream
// advanced past the draws it consumed. The input slice is not mutated.
func (s RNGStream) Shuffle(ids []string) ([]string, RNGStream) {
	r := s.source()
	out := make([]string, len(ids))
	copy(out, ids)
	draws := int64(0)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		draws++
		out[i], out[j] = out[j], out[i]
	}
	return out, RNGStream{Seed: s.Seed, Draws: s.Draws + draws}
}

// DrawCard removes and returns the top id of reservoir (its last
// element, treated as the "top" of the deck) along with the reduced
// reservoir. DrawCard itself does not consume randomness; shuffling the
// reservoir is what Shuffle is for. Returns ok=false on an empty
// reservoir so callers can surface the "deck empty" edge case instead
// of panicking.
func DrawCard(reservoir []string) (id string, rest []string, ok bool) {
	if len(reservoir) == 0 {
		return "", reservoir, false
	}
	n := len(reservoir)
	id = reservoir[n-1]
	rest = make([]string, n-1)
	copy(rest, reservoir[:n-1])
	return id, rest, true
}
