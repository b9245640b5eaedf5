package geo

import "math"

// Reference map dimensions produced by the map editor.
const (
	DefaultCols     = 60
	DefaultRows     = 34
	DefaultTileSize = 32
)

// Step costs for 8-directional movement.
const (
	CostOrthogonal = 1.0
	CostDiagonal   = math.Sqrt2
)

// Direction indices into compassOffsets.
// Order: N, NE, E, SE, S, SW, W, NW.
const (
	DirN = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
	DirCount
)

// compassOffsets lists (dx, dy) per direction; y grows downward (row index).
var compassOffsets = [DirCount]GridPoint{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}
