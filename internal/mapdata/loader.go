package mapdata

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/gridpath/internal/game/geo"
)

// mapFile is the on-disk YAML layout.
type mapFile struct {
	ID       int64    `yaml:"id"`
	Name     string   `yaml:"name"`
	TileSize int      `yaml:"tile_size"`
	Rows     []string `yaml:"rows"`
}

// Parse decodes a YAML collision map. A missing tile_size defaults to
// geo.DefaultTileSize.
func Parse(data []byte) (*CollisionMap, error) {
	var f mapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding map yaml: %w", err)
	}

	grid, err := DecodeRows(f.Rows)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", f.Name, err)
	}

	tileSize := f.TileSize
	if tileSize == 0 {
		tileSize = geo.DefaultTileSize
	}
	if tileSize < 0 {
		return nil, fmt.Errorf("map %q: negative tile_size %d", f.Name, tileSize)
	}

	return &CollisionMap{
		ID:       f.ID,
		Name:     f.Name,
		TileSize: tileSize,
		Grid:     grid,
	}, nil
}

// Marshal encodes m as YAML accepted by Parse.
func Marshal(m *CollisionMap) ([]byte, error) {
	f := mapFile{
		ID:       m.ID,
		Name:     m.Name,
		TileSize: m.TileSize,
		Rows:     EncodeRows(m.Grid),
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encoding map %q: %w", m.Name, err)
	}
	return data, nil
}

// LoadFile reads and parses one map file.
func LoadFile(path string) (*CollisionMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing map %s: %w", path, err)
	}
	return m, nil
}

// LoadDir loads every .yaml/.yml map in dir, ordered by file name.
// Subdirectories and other files are skipped.
func LoadDir(dir string) ([]*CollisionMap, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading maps dir %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	maps := make([]*CollisionMap, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			slog.Warn("skip map file (bad extension)", "file", name)
			continue
		}

		m, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}

	slog.Info("collision maps loaded", "maps", len(maps), "dir", dir)
	return maps, nil
}
