package geo

import (
	"container/heap"
	"math"
)

// Options control a single search.
type Options struct {
	// AllowCornerCut admits diagonal steps past blocked orthogonal cells.
	AllowCornerCut bool
	// MaxExpansions caps closed nodes; reaching it yields no path. Zero means
	// unlimited, which is bounded by the cell count anyway.
	MaxExpansions int
}

// Option modifies Options.
type Option func(*Options)

// WithCornerCut sets whether diagonal moves may cut blocked corners.
func WithCornerCut(allow bool) Option {
	return func(o *Options) { o.AllowCornerCut = allow }
}

// WithMaxExpansions caps the number of expanded nodes.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// Result is the outcome of Search.
type Result struct {
	Path     []GridPoint
	Cost     float64
	Expanded int
	Found    bool
}

// FindPath returns a shortest 8-directional path from start to goal, or nil
// when either endpoint is not walkable or the goal is unreachable.
// start == goal yields [start].
func FindPath(g *Grid, start, goal GridPoint, opts ...Option) []GridPoint {
	return Search(g, start, goal, opts...).Path
}

// Search runs A* with a Euclidean heuristic over g. Orthogonal steps cost 1
// and diagonal steps √2, so the returned path is optimal.
func Search(g *Grid, start, goal GridPoint, opts ...Option) Result {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil || !g.CanWalk(start) || !g.CanWalk(goal) {
		return Result{}
	}
	if start == goal {
		return Result{Path: []GridPoint{start}, Found: true}
	}

	nodes := make([]searchNode, g.Size())
	for i := range nodes {
		nodes[i].parent = -1
	}

	open := &openList{}
	var seq uint64
	push := func(k int, f float64) {
		heap.Push(open, openItem{key: k, f: f, seq: seq})
		seq++
	}

	startKey := g.key(start)
	goalKey := g.key(goal)
	nodes[startKey].state = nodeOpen
	push(startKey, heuristic(start, goal))

	buf := make([]GridPoint, 0, DirCount)
	expanded := 0

	for open.Len() > 0 {
		item := heap.Pop(open).(openItem)
		current := &nodes[item.key]
		// Improved nodes leave older entries behind in the heap.
		if current.state == nodeClosed {
			continue
		}

		if item.key == goalKey {
			return Result{
				Path:     reconstructPath(g, nodes, goalKey),
				Cost:     current.g,
				Expanded: expanded,
				Found:    true,
			}
		}

		if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
			return Result{Expanded: expanded}
		}
		current.state = nodeClosed
		expanded++

		p := g.point(item.key)
		buf = g.appendNeighbors(buf[:0], p, o.AllowCornerCut)
		for _, n := range buf {
			nk := g.key(n)
			next := &nodes[nk]
			if next.state == nodeClosed {
				continue
			}

			cost := CostOrthogonal
			if n.X != p.X && n.Y != p.Y {
				cost = CostDiagonal
			}
			tentative := current.g + cost
			if next.state == nodeOpen && tentative >= next.g {
				continue
			}

			next.g = tentative
			next.parent = int32(item.key)
			next.state = nodeOpen
			push(nk, tentative+heuristic(n, goal))
		}
	}

	return Result{Expanded: expanded}
}

// heuristic is the Euclidean distance, admissible and consistent for
// unit/√2 step costs.
func heuristic(a, b GridPoint) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// reconstructPath walks predecessor links from goal back to the start and
// reverses them.
func reconstructPath(g *Grid, nodes []searchNode, goalKey int) []GridPoint {
	path := make([]GridPoint, 0, 32)
	for k := int32(goalKey); k >= 0; k = nodes[k].parent {
		path = append(path, g.point(int(k)))
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

const (
	nodeUnseen uint8 = iota
	nodeOpen
	nodeClosed
)

// searchNode is per-cell bookkeeping, indexed by packed grid key.
type searchNode struct {
	g      float64
	parent int32
	state  uint8
}

// openItem is one heap entry. A cell may have several entries; only the
// first one popped is expanded.
type openItem struct {
	key int
	f   float64
	seq uint64
}

// openList implements container/heap as a min-heap by f, ties broken by
// insertion order.
type openList []openItem

func (h openList) Len() int { return len(h) }
func (h openList) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openList) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *openList) Push(x any)   { *h = append(*h, x.(openItem)) }
func (h *openList) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
