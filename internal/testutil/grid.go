package testutil

import (
	"testing"

	"github.com/udisondev/gridpath/internal/game/geo"
	"github.com/udisondev/gridpath/internal/mapdata"
)

// Grid builds a grid from glyph rows ('#' blocked, '.' open) and fails the
// test on malformed input.
func Grid(t testing.TB, rows ...string) *geo.Grid {
	t.Helper()

	g, err := mapdata.DecodeRows(rows)
	if err != nil {
		t.Fatalf("building test grid: %v", err)
	}
	return g
}

// OpenGrid returns a fully walkable cols×rows grid.
func OpenGrid(t testing.TB, cols, rows int) *geo.Grid {
	t.Helper()

	g, err := geo.NewOpenGrid(cols, rows)
	if err != nil {
		t.Fatalf("building open grid: %v", err)
	}
	return g
}

// Map wraps Grid into a collision map with the default tile size.
func Map(t testing.TB, id int64, name string, rows ...string) *mapdata.CollisionMap {
	t.Helper()

	return &mapdata.CollisionMap{
		ID:       id,
		Name:     name,
		TileSize: geo.DefaultTileSize,
		Grid:     Grid(t, rows...),
	}
}
