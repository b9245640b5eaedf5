package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/gridpath/internal/game/geo"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Pathfind holds all configuration for the pathfinding service and CLI.
type Pathfind struct {
	LogLevel string `yaml:"log_level"`

	// Map geometry of the active deployment
	Map MapConfig `yaml:"map"`

	// A* defaults
	Search SearchConfig `yaml:"search"`

	// Batch planning
	Planner PlannerConfig `yaml:"planner"`

	// Collision map sources
	MapsDir  string         `yaml:"maps_dir"`
	Database DatabaseConfig `yaml:"database"`
}

// MapConfig describes the tile grid.
type MapConfig struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	TileSize int `yaml:"tile_size"` // world units per tile
}

// SearchConfig holds per-search defaults.
type SearchConfig struct {
	AllowCornerCut bool `yaml:"allow_corner_cut"`
	MaxExpansions  int  `yaml:"max_expansions"` // 0 = unlimited
}

// PlannerConfig controls concurrent route planning.
type PlannerConfig struct {
	Workers int `yaml:"workers"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Pathfind config matching the reference deployment
// (60x34 tiles of 32 units).
func Default() Pathfind {
	return Pathfind{
		LogLevel: "info",
		Map: MapConfig{
			Cols:     geo.DefaultCols,
			Rows:     geo.DefaultRows,
			TileSize: geo.DefaultTileSize,
		},
		Search: SearchConfig{
			AllowCornerCut: false,
			MaxExpansions:  0,
		},
		Planner: PlannerConfig{
			Workers: 4,
		},
		MapsDir: "data/maps",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "gridpath",
			Password: "gridpath",
			DBName:   "gridpath",
			SSLMode:  "disable",
		},
	}
}

// Load loads config from a YAML file on top of Default.
// If the file doesn't exist, returns defaults.
func Load(path string) (Pathfind, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects geometry and limits the pathfinder cannot work with.
func (c Pathfind) Validate() error {
	if c.Map.Cols <= 0 || c.Map.Rows <= 0 {
		return fmt.Errorf("%w: map dimensions %dx%d", ErrInvalidConfig, c.Map.Cols, c.Map.Rows)
	}
	if c.Map.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size %d", ErrInvalidConfig, c.Map.TileSize)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d", ErrInvalidConfig, c.Search.MaxExpansions)
	}
	if c.Planner.Workers <= 0 {
		return fmt.Errorf("%w: planner workers %d", ErrInvalidConfig, c.Planner.Workers)
	}
	return nil
}

// SearchOptions converts search defaults into geo options.
func (c Pathfind) SearchOptions() []geo.Option {
	return []geo.Option{
		geo.WithCornerCut(c.Search.AllowCornerCut),
		geo.WithMaxExpansions(c.Search.MaxExpansions),
	}
}

// ParseLogLevel maps a config string to a slog level; unknown values fall
// back to info.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
