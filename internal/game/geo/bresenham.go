package geo

// LineIterator steps through tiles on a 2D Bresenham line, start and end
// included. Consecutive tiles are always 8-adjacent.
type LineIterator struct {
	current, target GridPoint
	deltaX, deltaY  int
	stepX, stepY    int
	err             int
	started         bool
}

// NewLineIterator creates a Bresenham iterator from from to to.
func NewLineIterator(from, to GridPoint) *LineIterator {
	it := &LineIterator{
		current: from,
		target:  to,
		deltaX:  abs(to.X - from.X),
		deltaY:  -abs(to.Y - from.Y),
		stepX:   1,
		stepY:   1,
	}
	if from.X > to.X {
		it.stepX = -1
	}
	if from.Y > to.Y {
		it.stepY = -1
	}
	it.err = it.deltaX + it.deltaY
	return it
}

// Next advances to the next tile. Returns false once the target has been
// returned.
func (it *LineIterator) Next() bool {
	if !it.started {
		it.started = true
		return true // start point
	}
	if it.current == it.target {
		return false
	}

	e2 := 2 * it.err
	if e2 >= it.deltaY {
		it.err += it.deltaY
		it.current.X += it.stepX
	}
	if e2 <= it.deltaX {
		it.err += it.deltaX
		it.current.Y += it.stepY
	}
	return true
}

// Point returns the current tile.
func (it *LineIterator) Point() GridPoint { return it.current }

// Line returns every tile from from to to inclusive.
func Line(from, to GridPoint) []GridPoint {
	n := max(abs(to.X-from.X), abs(to.Y-from.Y)) + 1
	out := make([]GridPoint, 0, n)
	for it := NewLineIterator(from, to); it.Next(); {
		out = append(out, it.Point())
	}
	return out
}
