package engine

import "fmt"

// HexCoord identifies a hex on the map using axial coordinates. Q runs
// east, R runs south-east; the implied cube coordinate is (Q, -Q-R, R).
// Neighbor and distance math goes through the cube form, but only the
// axial pair is ever persisted since the third cube component is
// derived.
type HexCoord struct {
	Q int `yaml:"hex_q"` // axial column
	R int `yaml:"hex_r"` // axial row
}

// axialNeighborOffsets are the six axial deltas to adjacent hexes, in
// counter-clockwise order starting east (E, NE, NW, W, SW, SE). Equivalent to the six cube-coordinate
// unit directions CubeCoordinate.GetNeighbors uses.
var axialNeighborOffsets = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six hexes adjacent to h, in counter-clockwise order.
func (h HexCoord) Neighbors() [6]HexCoord {
	var out [6]HexCoord
	for i, d := range axialNeighborOffsets {
		out[i] = HexCoord{Q: h.Q + d.Q, R: h.R + d.R}
	}
	return out
}

// IsAdjacent reports whether h and other share an edge.
func (h HexCoord) IsAdjacent(other HexCoord) bool {
	return h.Distance(other) == 1
}

// Distance returns the hex distance (number of steps) between h and
// other, computed via the cube-coordinate formula.
func (h HexCoord) Distance(other HexCoord) int {
	dq := h.Q - other.Q
	dr := h.R - other.R
	ds := (-h.Q - h.R) - (-other.Q - other.R)
	return (abs(dq) + abs(dr) + abs(ds)) / 2
}

// SharedNeighbor reports whether h and other are both adjacent to
// candidate. This is the shape of movement's provoke-rampaging rule: a
// rampaging enemy hex adjacent to both the source and destination of a
// move is provoked.
func (h HexCoord) SharedNeighbor(other HexCoord, candidate HexCoord) bool {
	return h.IsAdjacent(candidate) && other.IsAdjacent(candidate)
}

func (h HexCoord) String() string {
	return fmt.Sprintf("hex_%d,%d", h.Q, h.R)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
