package geo

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ErrMalformedGrid is returned for grids with no rows, no columns, or
// rows whose lengths disagree.
var ErrMalformedGrid = errors.New("malformed occupancy grid")

// Grid is a rows×cols occupancy snapshot; a true cell is blocked.
// Searches only read it, so one Grid may be shared by concurrent searches
// as long as nobody calls SetBlocked meanwhile.
type Grid struct {
	cols, rows int
	blocked    []bool // row-major, index y*cols + x
}

// NewGrid validates cells (indexed [y][x]) and copies them into a Grid.
// Jagged or empty input is rejected with ErrMalformedGrid, never clamped.
func NewGrid(cells [][]bool) (*Grid, error) {
	rows := len(cells)
	if rows == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	cols := len(cells[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: row 0 has no columns", ErrMalformedGrid)
	}

	g := &Grid{cols: cols, rows: rows, blocked: make([]bool, rows*cols)}
	for y, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrMalformedGrid, y, len(row), cols)
		}
		copy(g.blocked[y*cols:(y+1)*cols], row)
	}
	return g, nil
}

// NewOpenGrid returns a cols×rows grid with every cell walkable.
func NewOpenGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformedGrid, cols, rows)
	}
	return &Grid{cols: cols, rows: rows, blocked: make([]bool, rows*cols)}, nil
}

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.blocked) }

// IsInside reports whether p lies within [0,cols)×[0,rows).
func (g *Grid) IsInside(p GridPoint) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// CanWalk reports whether p is inside the grid and not blocked.
func (g *Grid) CanWalk(p GridPoint) bool {
	return g.IsInside(p) && !g.blocked[g.key(p)]
}

// Blocked reports whether p is marked blocked. Points outside the grid
// count as blocked.
func (g *Grid) Blocked(p GridPoint) bool {
	return !g.CanWalk(p)
}

// SetBlocked marks p blocked or open. Out-of-bounds points are ignored.
// Not safe to call while a search runs on g.
func (g *Grid) SetBlocked(p GridPoint, blocked bool) {
	if g.IsInside(p) {
		g.blocked[g.key(p)] = blocked
	}
}

// Cells returns a fresh [y][x] copy of the occupancy matrix.
func (g *Grid) Cells() [][]bool {
	cells := make([][]bool, g.rows)
	for y := range cells {
		cells[y] = make([]bool, g.cols)
		copy(cells[y], g.blocked[y*g.cols:(y+1)*g.cols])
	}
	return cells
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{cols: g.cols, rows: g.rows, blocked: make([]bool, len(g.blocked))}
	copy(c.blocked, g.blocked)
	return c
}

// WalkableCount returns the number of unblocked cells.
func (g *Grid) WalkableCount() int {
	n := 0
	for _, b := range g.blocked {
		if !b {
			n++
		}
	}
	return n
}

// Fingerprint returns a BLAKE2b-256 digest of the grid shape and contents.
// Two grids with equal fingerprints describe the same terrain.
func (g *Grid) Fingerprint() [32]byte {
	buf := make([]byte, 8, 8+(len(g.blocked)+7)/8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(g.cols))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(g.rows))

	var acc byte
	for i, b := range g.blocked {
		if b {
			acc |= 1 << (i % 8)
		}
		if i%8 == 7 {
			buf = append(buf, acc)
			acc = 0
		}
	}
	if len(g.blocked)%8 != 0 {
		buf = append(buf, acc)
	}
	return blake2b.Sum256(buf)
}

// key packs p into its row-major index. p must be inside the grid.
func (g *Grid) key(p GridPoint) int {
	return p.Y*g.cols + p.X
}

// point unpacks a row-major index.
func (g *Grid) point(k int) GridPoint {
	return GridPoint{X: k % g.cols, Y: k / g.cols}
}
