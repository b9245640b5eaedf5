package geo

// NearestWalkable returns origin if it is walkable, otherwise the first
// walkable cell found by breadth-first expansion over the 8 compass
// offsets. The expansion passes through blocked cells and ignores the
// corner rule: it snaps a point out of a wall by grid distance, it does not
// look for a navigable route. ok is false when no walkable cell is reached
// or g is nil.
func (g *Grid) NearestWalkable(origin GridPoint) (p GridPoint, ok bool) {
	if g == nil {
		return GridPoint{}, false
	}
	if g.CanWalk(origin) {
		return origin, true
	}

	visited := make([]bool, g.Size())
	if g.IsInside(origin) {
		visited[g.key(origin)] = true
	}

	queue := make([]GridPoint, 0, 64)
	queue = append(queue, origin)
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		for _, d := range compassOffsets {
			n := current.Add(d)
			if !g.IsInside(n) {
				continue
			}
			k := g.key(n)
			if visited[k] {
				continue
			}
			visited[k] = true
			if !g.blocked[k] {
				return n, true
			}
			queue = append(queue, n)
		}
	}

	return GridPoint{}, false
}
