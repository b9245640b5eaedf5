package geo

import "math"

// TileOf converts a world position to the tile containing it.
// Negative coordinates floor toward the tile at -1, not 0.
func TileOf(worldX, worldY float64, tileSize int) GridPoint {
	ts := float64(tileSize)
	return GridPoint{
		X: int(math.Floor(worldX / ts)),
		Y: int(math.Floor(worldY / ts)),
	}
}

// World returns the world position of the tile center.
func (p GridPoint) World(tileSize int) (x, y float64) {
	half := float64(tileSize) / 2
	return float64(p.X*tileSize) + half, float64(p.Y*tileSize) + half
}

// WorldPath converts tile path to tile-center waypoints.
func WorldPath(path []GridPoint, tileSize int) [][2]float64 {
	if len(path) == 0 {
		return nil
	}
	out := make([][2]float64, len(path))
	for i, p := range path {
		x, y := p.World(tileSize)
		out[i] = [2]float64{x, y}
	}
	return out
}
