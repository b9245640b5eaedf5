package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileOf(t *testing.T) {
	tests := []struct {
		name   string
		wx, wy float64
		want   GridPoint
	}{
		{"origin", 0, 0, Pt(0, 0)},
		{"inside first tile", 31.9, 31.9, Pt(0, 0)},
		{"tile boundary", 32, 64, Pt(1, 2)},
		{"last tile of reference map", 59*32 + 5, 33*32 + 5, Pt(59, 33)},
		{"negative floors", -1, -33, Pt(-1, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TileOf(tt.wx, tt.wy, DefaultTileSize))
		})
	}
}

func TestWorldRoundTrip(t *testing.T) {
	p := Pt(7, 3)
	x, y := p.World(DefaultTileSize)
	assert.Equal(t, 7*32+16.0, x)
	assert.Equal(t, 3*32+16.0, y)
	assert.Equal(t, p, TileOf(x, y, DefaultTileSize))
}

func TestWorldPath(t *testing.T) {
	assert.Nil(t, WorldPath(nil, DefaultTileSize))

	got := WorldPath([]GridPoint{Pt(0, 0), Pt(1, 1)}, 10)
	assert.Equal(t, [][2]float64{{5, 5}, {15, 15}}, got)
}
