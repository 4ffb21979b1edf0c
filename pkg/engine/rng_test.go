package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGStreamRollDieIsDeterministicForSameSeed(t *testing.T) {
	a := NewRNGStream(99)
	b := NewRNGStream(99)

	av, aNext := a.RollDie(6)
	bv, bNext := b.RollDie(6)

	assert.Equal(t, av, bv)
	assert.Equal(t, int64(1), aNext.Draws)
	assert.Equal(t, aNext, bNext)
	assert.GreaterOrEqual(t, av, 1)
	assert.LessOrEqual(t, av, 6)
}

func TestRNGStreamDrawsAdvanceIndependentlyOfOriginal(t *testing.T) {
	s := NewRNGStream(7)
	_, s2 := s.RollDie(6)
	assert.Equal(t, int64(0), s.Draws, "original stream must stay unmutated")
	assert.Equal(t, int64(1), s2.Draws)
}

func TestRNGStreamShuffleIsPermutationAndDoesNotMutateInput(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	original := append([]string(nil), ids...)

	shuffled, next := NewRNGStream(3).Shuffle(ids)

	require.Len(t, shuffled, len(ids))
	assert.ElementsMatch(t, original, shuffled)
	assert.Equal(t, original, ids, "input slice must not be mutated")
	assert.Greater(t, next.Draws, int64(0))
}

func TestRNGStreamShuffleSameSeedIsReproducible(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f"}
	s1, _ := NewRNGStream(55).Shuffle(ids)
	s2, _ := NewRNGStream(55).Shuffle(ids)
	assert.Equal(t, s1, s2)
}
