// Package mapdata reads and writes collision maps produced by the map
// editor. A map is a row-per-line text grid: '#' blocked, '.' open.
package mapdata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udisondev/gridpath/internal/game/geo"
)

// Tile glyphs.
const (
	GlyphOpen    = '.'
	GlyphBlocked = '#'
	GlyphPath    = '*'
	GlyphStart   = 'S'
	GlyphGoal    = 'G'
)

// ErrBadGlyph is returned for row characters other than '.' and '#'.
var ErrBadGlyph = errors.New("unknown tile glyph")

// CollisionMap is a named occupancy grid.
type CollisionMap struct {
	ID       int64
	Name     string
	TileSize int
	Grid     *geo.Grid
}

// DecodeRows builds a grid from glyph rows.
// Rows of unequal length fail with geo.ErrMalformedGrid.
func DecodeRows(rows []string) (*geo.Grid, error) {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, 0, len(row))
		for x, c := range row {
			switch c {
			case GlyphOpen:
				cells[y] = append(cells[y], false)
			case GlyphBlocked:
				cells[y] = append(cells[y], true)
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrBadGlyph, c, x, y)
			}
		}
	}
	return geo.NewGrid(cells)
}

// EncodeRows renders g as glyph rows.
func EncodeRows(g *geo.Grid) []string {
	rows := make([]string, g.Rows())
	var b strings.Builder
	for y := range g.Rows() {
		b.Reset()
		b.Grow(g.Cols())
		for x := range g.Cols() {
			if g.Blocked(geo.Pt(x, y)) {
				b.WriteByte(GlyphBlocked)
			} else {
				b.WriteByte(GlyphOpen)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// Render draws g with path overlaid, one line per row.
func Render(g *geo.Grid, path []geo.GridPoint) string {
	rows := EncodeRows(g)
	canvas := make([][]byte, len(rows))
	for y, row := range rows {
		canvas[y] = []byte(row)
	}

	for i, p := range path {
		if !g.IsInside(p) {
			continue
		}
		glyph := byte(GlyphPath)
		switch i {
		case 0:
			glyph = GlyphStart
		case len(path) - 1:
			glyph = GlyphGoal
		}
		canvas[p.Y][p.X] = glyph
	}

	var b strings.Builder
	for _, line := range canvas {
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}
