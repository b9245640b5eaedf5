package geo

import "fmt"

// GridPoint is a tile coordinate: X is the column, Y is the row.
type GridPoint struct {
	X, Y int
}

// Pt is shorthand for GridPoint{X: x, Y: y}.
func Pt(x, y int) GridPoint {
	return GridPoint{X: x, Y: y}
}

// Add returns p shifted by d.
func (p GridPoint) Add(d GridPoint) GridPoint {
	return GridPoint{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p GridPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// stepCost returns the cost of moving between two 8-adjacent points.
// ok is false when a and b are not adjacent (or equal).
func stepCost(a, b GridPoint) (cost float64, ok bool) {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	switch {
	case dx+dy == 1:
		return CostOrthogonal, true
	case dx == 1 && dy == 1:
		return CostDiagonal, true
	default:
		return 0, false
	}
}

// PathCost sums step costs along path (orthogonal 1, diagonal √2).
// Non-adjacent steps contribute their Euclidean length.
func PathCost(path []GridPoint) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		if c, ok := stepCost(path[i-1], path[i]); ok {
			total += c
			continue
		}
		total += heuristic(path[i-1], path[i])
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
