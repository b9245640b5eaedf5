package geo

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestWalkableIdentity(t *testing.T) {
	g := openGrid(t, DefaultCols, DefaultRows)

	for _, p := range []GridPoint{Pt(0, 0), Pt(10, 10), Pt(59, 33)} {
		got, ok := g.NearestWalkable(p)
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
}

func TestNearestWalkableSingleBlocked(t *testing.T) {
	g := openGrid(t, DefaultCols, DefaultRows)
	g.SetBlocked(Pt(10, 10), true)

	got, ok := g.NearestWalkable(Pt(10, 10))
	require.True(t, ok)
	assert.NotEqual(t, Pt(10, 10), got)
	assert.True(t, g.CanWalk(got))
	assert.LessOrEqual(t, abs(got.X-10), 1)
	assert.LessOrEqual(t, abs(got.Y-10), 1)
	// First compass direction is north.
	assert.Equal(t, Pt(10, 9), got)
}

func TestNearestWalkableFullyBlocked(t *testing.T) {
	g := openGrid(t, DefaultCols, DefaultRows)
	for y := range DefaultRows {
		for x := range DefaultCols {
			g.SetBlocked(Pt(x, y), true)
		}
	}

	for _, p := range []GridPoint{Pt(0, 0), Pt(30, 17), Pt(59, 33)} {
		_, ok := g.NearestWalkable(p)
		assert.False(t, ok, "origin %v", p)
	}
}

func TestNearestWalkableNilGrid(t *testing.T) {
	var g *Grid
	got, ok := g.NearestWalkable(Pt(3, 4))
	assert.False(t, ok)
	assert.Equal(t, GridPoint{}, got)
}

func TestNearestWalkableExpandsThroughWalls(t *testing.T) {
	// The open cell is sealed off; the search still finds it by grid distance.
	g := gridFromRows(t,
		"#######",
		"#######",
		"###.###",
		"#######",
	)

	got, ok := g.NearestWalkable(Pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, Pt(3, 2), got)
}

func TestNearestWalkablePrefersCloserLayer(t *testing.T) {
	g := gridFromRows(t,
		".......",
		".#####.",
		".#####.",
		".#####.",
		".......",
	)

	got, ok := g.NearestWalkable(Pt(3, 2))
	require.True(t, ok)
	// Ring at Chebyshev distance 2; north side is discovered first.
	assert.Equal(t, 2, max(abs(got.X-3), abs(got.Y-2)))
	assert.True(t, g.CanWalk(got))
}

func TestNearestWalkableOutsideOrigin(t *testing.T) {
	g := openGrid(t, 5, 5)

	got, ok := g.NearestWalkable(Pt(-1, 2))
	require.True(t, ok)
	assert.True(t, g.IsInside(got))
	assert.Equal(t, 0, got.X)

	_, ok = g.NearestWalkable(Pt(-10, -10))
	assert.False(t, ok, "only in-bounds cells are expanded")
}

func TestNearestWalkableContainment(t *testing.T) {
	g := gridFromRows(t,
		"##.",
		"###",
		"###",
	)

	for y := range 3 {
		for x := range 3 {
			got, ok := g.NearestWalkable(Pt(x, y))
			require.True(t, ok)
			assert.True(t, g.IsInside(got))
			assert.True(t, g.CanWalk(got))
			assert.Equal(t, Pt(2, 0), got)
		}
	}
}

// TestNearestWalkableRandom checks containment and that the result is on
// the closest Chebyshev ring holding a walkable cell.
func TestNearestWalkableRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 11))

	for iter := range 200 {
		cols := 1 + rng.IntN(12)
		rows := 1 + rng.IntN(12)
		g := openGrid(t, cols, rows)
		for y := range rows {
			for x := range cols {
				if rng.Float64() < 0.7 {
					g.SetBlocked(Pt(x, y), true)
				}
			}
		}
		origin := Pt(rng.IntN(cols), rng.IntN(rows))

		got, ok := g.NearestWalkable(origin)
		if g.WalkableCount() == 0 {
			assert.False(t, ok, "iter %d", iter)
			continue
		}
		require.True(t, ok, "iter %d", iter)
		require.True(t, g.IsInside(got))
		require.True(t, g.CanWalk(got))

		best := math.MaxInt
		for y := range rows {
			for x := range cols {
				if g.CanWalk(Pt(x, y)) {
					best = min(best, max(abs(x-origin.X), abs(y-origin.Y)))
				}
			}
		}
		assert.Equal(t, best, max(abs(got.X-origin.X), abs(got.Y-origin.Y)), "iter %d", iter)
	}
}
