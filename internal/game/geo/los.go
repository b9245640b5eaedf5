package geo

// CanMoveDirect reports whether an entity can walk the straight tile line
// from from to to: every tile on the line is walkable and, without
// allowCornerCut, no diagonal step squeezes past a blocked orthogonal cell.
func (g *Grid) CanMoveDirect(from, to GridPoint, allowCornerCut bool) bool {
	return g.DirectPath(from, to, allowCornerCut) != nil
}

// DirectPath returns the Bresenham tile line from from to to when it is
// walkable under the same rules as Neighbors, or nil otherwise.
// Its cost equals the octile distance, so a non-nil result is a shortest
// path.
func (g *Grid) DirectPath(from, to GridPoint, allowCornerCut bool) []GridPoint {
	if !g.CanWalk(from) || !g.CanWalk(to) {
		return nil
	}

	path := make([]GridPoint, 0, max(abs(to.X-from.X), abs(to.Y-from.Y))+1)
	it := NewLineIterator(from, to)
	it.Next()
	prev := it.Point()
	path = append(path, prev)

	for it.Next() {
		cur := it.Point()
		if !g.CanWalk(cur) {
			return nil
		}
		d := GridPoint{X: cur.X - prev.X, Y: cur.Y - prev.Y}
		if d.X != 0 && d.Y != 0 && !allowCornerCut && !g.canCutCorner(prev, d) {
			return nil
		}
		path = append(path, cur)
		prev = cur
	}
	return path
}
