package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexCoordNeighborsAreAllAdjacent(t *testing.T) {
	origin := HexCoord{Q: 0, R: 0}
	for _, n := range origin.Neighbors() {
		assert.True(t, origin.IsAdjacent(n), "neighbor %+v should be adjacent to origin", n)
		assert.Equal(t, 1, origin.Distance(n))
	}
}

func TestHexCoordDistanceIsSymmetric(t *testing.T) {
	a := HexCoord{Q: 2, R: -1}
	b := HexCoord{Q: -1, R: 3}
	assert.Equal(t, a.Distance(b), b.Distance(a))
}

func TestHexCoordNotAdjacentAcrossTwoSteps(t *testing.T) {
	a := HexCoord{Q: 0, R: 0}
	b := HexCoord{Q: 2, R: 0}
	assert.False(t, a.IsAdjacent(b))
	assert.Equal(t, 2, a.Distance(b))
}

func TestHexCoordSharedNeighbor(t *testing.T) {
	a := HexCoord{Q: 0, R: 0}
	b := HexCoord{Q: 1, R: -1}
	candidate := HexCoord{Q: 1, R: 0}
	assert.True(t, a.SharedNeighbor(b, candidate))
}
