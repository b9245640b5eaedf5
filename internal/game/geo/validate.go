package geo

import (
	"errors"
	"fmt"
)

// ErrInvalidPath is returned by ValidatePath.
var ErrInvalidPath = errors.New("invalid path")

// ValidatePath checks that every point of path is walkable, that consecutive
// points are 8-adjacent, and, without allowCornerCut, that no diagonal step
// cuts a blocked corner. An empty path is valid.
func ValidatePath(g *Grid, path []GridPoint, allowCornerCut bool) error {
	for i, p := range path {
		if !g.CanWalk(p) {
			return fmt.Errorf("%w: point %d %v is not walkable", ErrInvalidPath, i, p)
		}
		if i == 0 {
			continue
		}

		prev := path[i-1]
		if _, ok := stepCost(prev, p); !ok {
			return fmt.Errorf("%w: step %d %v->%v is not adjacent", ErrInvalidPath, i, prev, p)
		}
		d := GridPoint{X: p.X - prev.X, Y: p.Y - prev.Y}
		if d.X != 0 && d.Y != 0 && !allowCornerCut && !g.canCutCorner(prev, d) {
			return fmt.Errorf("%w: step %d %v->%v cuts a corner", ErrInvalidPath, i, prev, p)
		}
	}
	return nil
}
