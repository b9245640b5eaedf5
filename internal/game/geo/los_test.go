package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectPathOpen(t *testing.T) {
	g := openGrid(t, 10, 10)

	path := g.DirectPath(Pt(1, 1), Pt(8, 4), false)
	require.NotNil(t, path)
	require.NoError(t, ValidatePath(g, path, false))
	assert.InDelta(t, bruteForceCost(g, Pt(1, 1), Pt(8, 4), false), PathCost(path), costDelta)
	assert.True(t, g.CanMoveDirect(Pt(1, 1), Pt(8, 4), false))
}

func TestDirectPathBlockedTile(t *testing.T) {
	g := gridFromRows(t,
		".....",
		"..#..",
		".....",
	)

	assert.Nil(t, g.DirectPath(Pt(0, 1), Pt(4, 1), true))
	assert.False(t, g.CanMoveDirect(Pt(0, 1), Pt(4, 1), true))
	assert.True(t, g.CanMoveDirect(Pt(0, 0), Pt(4, 0), false))
}

func TestDirectPathCornerRule(t *testing.T) {
	g := gridFromRows(t,
		".#",
		"#.",
	)

	assert.False(t, g.CanMoveDirect(Pt(0, 0), Pt(1, 1), false))
	assert.Equal(t, []GridPoint{Pt(0, 0), Pt(1, 1)}, g.DirectPath(Pt(0, 0), Pt(1, 1), true))
}

func TestDirectPathEndpoints(t *testing.T) {
	g := gridFromRows(t, "..#")

	assert.Nil(t, g.DirectPath(Pt(0, 0), Pt(2, 0), true), "blocked goal")
	assert.Nil(t, g.DirectPath(Pt(-1, 0), Pt(1, 0), true), "outside start")
	assert.Equal(t, []GridPoint{Pt(1, 0)}, g.DirectPath(Pt(1, 0), Pt(1, 0), false))
}

func TestValidatePath(t *testing.T) {
	g := gridFromRows(t,
		".#.",
		"...",
	)

	tests := []struct {
		name    string
		path    []GridPoint
		cut     bool
		wantErr bool
	}{
		{"empty", nil, false, false},
		{"single", []GridPoint{Pt(0, 0)}, false, false},
		{"corner cut rejected", []GridPoint{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(2, 0)}, false, true},
		{"corner cut allowed", []GridPoint{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(2, 0)}, true, false},
		{"blocked point", []GridPoint{Pt(0, 0), Pt(1, 0)}, false, true},
		{"gap", []GridPoint{Pt(0, 1), Pt(2, 1)}, false, true},
		{"repeat", []GridPoint{Pt(0, 1), Pt(0, 1)}, false, true},
		{"outside", []GridPoint{Pt(0, 1), Pt(-1, 1)}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(g, tt.path, tt.cut)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
