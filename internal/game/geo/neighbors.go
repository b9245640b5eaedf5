package geo

// Neighbors returns the walkable 8-neighbors of p in compass order
// N, NE, E, SE, S, SW, W, NW.
//
// Without allowCornerCut a diagonal neighbor is kept only when both
// orthogonal cells flanking the move are walkable as well.
func (g *Grid) Neighbors(p GridPoint, allowCornerCut bool) []GridPoint {
	return g.appendNeighbors(make([]GridPoint, 0, DirCount), p, allowCornerCut)
}

// appendNeighbors is Neighbors writing into dst, so the search loop can
// reuse one buffer.
func (g *Grid) appendNeighbors(dst []GridPoint, p GridPoint, allowCornerCut bool) []GridPoint {
	for _, d := range compassOffsets {
		n := p.Add(d)
		if !g.CanWalk(n) {
			continue
		}
		if d.X != 0 && d.Y != 0 && !allowCornerCut && !g.canCutCorner(p, d) {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

// canCutCorner reports whether both orthogonal cells beside the diagonal
// step p→p+d are walkable.
func (g *Grid) canCutCorner(p, d GridPoint) bool {
	return g.CanWalk(GridPoint{X: p.X + d.X, Y: p.Y}) &&
		g.CanWalk(GridPoint{X: p.X, Y: p.Y + d.Y})
}
