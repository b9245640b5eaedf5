// Command pathfind plans a route on a collision map and prints it.
//
// The map comes from a YAML file (-map) or from PostgreSQL (-map-id).
// Without either, an open grid of the configured size is used.
//
// Usage:
//
//	go run ./cmd/pathfind -map data/maps/town.yaml -from 1,1 -to 40,20
//	go run ./cmd/pathfind -map data/maps/town.yaml -save   # store in DB
//	go run ./cmd/pathfind -map-id 3 -from 0,0 -to 10,5 -corner-cut
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/udisondev/gridpath/internal/config"
	"github.com/udisondev/gridpath/internal/db"
	"github.com/udisondev/gridpath/internal/game/geo"
	"github.com/udisondev/gridpath/internal/mapdata"
	"github.com/udisondev/gridpath/internal/movement"
)

const defaultConfigPath = "config/pathfind.yaml"

type options struct {
	configPath string
	mapPath    string
	mapID      int64
	from, to   string
	cornerCut  bool
	save       bool
	render     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", defaultConfigPath, "YAML config file")
	flag.StringVar(&opts.mapPath, "map", "", "collision map YAML file")
	flag.Int64Var(&opts.mapID, "map-id", 0, "collision map ID in the database")
	flag.StringVar(&opts.from, "from", "", "start tile as x,y")
	flag.StringVar(&opts.to, "to", "", "destination tile as x,y")
	flag.BoolVar(&opts.cornerCut, "corner-cut", false, "allow diagonal moves past blocked corners")
	flag.BoolVar(&opts.save, "save", false, "store the -map file in the database and exit")
	flag.BoolVar(&opts.render, "render", true, "print the map with the route drawn on it")
	flag.Parse()

	if p := os.Getenv("GRIDPATH_CONFIG"); p != "" && opts.configPath == defaultConfigPath {
		opts.configPath = p
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))
	if opts.cornerCut {
		cfg.Search.AllowCornerCut = true
	}

	m, err := loadMap(ctx, cfg, opts)
	if err != nil {
		return err
	}
	slog.Info("collision map ready",
		"name", m.Name,
		"cols", m.Grid.Cols(),
		"rows", m.Grid.Rows(),
		"walkable", m.Grid.WalkableCount())

	if opts.save {
		return saveMap(ctx, cfg, m)
	}

	from, err := parsePoint(opts.from)
	if err != nil {
		return fmt.Errorf("parsing -from: %w", err)
	}
	to, err := parsePoint(opts.to)
	if err != nil {
		return fmt.Errorf("parsing -to: %w", err)
	}

	cfg.Map.TileSize = m.TileSize
	planner, err := movement.NewPlanner(m.Grid, cfg)
	if err != nil {
		return fmt.Errorf("creating planner: %w", err)
	}

	route := planner.Plan(from, to)
	printRoute(out, route)
	if opts.render && !route.Stay() {
		fmt.Fprint(out, mapdata.Render(m.Grid, route.Path))
	}
	return nil
}

func loadMap(ctx context.Context, cfg config.Pathfind, opts options) (*mapdata.CollisionMap, error) {
	switch {
	case opts.mapPath != "":
		return mapdata.LoadFile(opts.mapPath)

	case opts.mapID != 0:
		database, err := connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer database.Close()
		return db.NewCollisionRepository(database.Pool()).LoadByID(ctx, opts.mapID)

	default:
		grid, err := geo.NewOpenGrid(cfg.Map.Cols, cfg.Map.Rows)
		if err != nil {
			return nil, fmt.Errorf("creating open grid: %w", err)
		}
		return &mapdata.CollisionMap{Name: "open", TileSize: cfg.Map.TileSize, Grid: grid}, nil
	}
}

func saveMap(ctx context.Context, cfg config.Pathfind, m *mapdata.CollisionMap) error {
	if m.ID == 0 {
		return errors.New("-save needs a map file with a non-zero id")
	}
	database, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.NewCollisionRepository(database.Pool()).Save(ctx, m); err != nil {
		return err
	}
	sum := m.Grid.Fingerprint()
	slog.Info("collision map saved", "id", m.ID, "name", m.Name, "checksum", fmt.Sprintf("%x", sum[:8]))
	return nil
}

func connect(ctx context.Context, cfg config.Pathfind) (*db.DB, error) {
	dsn := cfg.Database.DSN()
	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := db.RunMigrations(ctx, dsn); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return database, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (geo.GridPoint, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geo.GridPoint{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return geo.GridPoint{}, fmt.Errorf("point %q: x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return geo.GridPoint{}, fmt.Errorf("point %q: y: %w", s, err)
	}
	return geo.Pt(x, y), nil
}

func printRoute(w io.Writer, r movement.Route) {
	if r.Stay() {
		fmt.Fprintf(w, "no path from %v to %v\n", r.From, r.Requested)
		return
	}
	if r.Snapped {
		fmt.Fprintf(w, "destination %v blocked, using %v\n", r.Requested, r.To)
	}

	steps := make([]string, len(r.Path))
	for i, p := range r.Path {
		steps[i] = p.String()
	}
	fmt.Fprintf(w, "path: %s\n", strings.Join(steps, " "))
	fmt.Fprintf(w, "steps: %d cost: %.4f direct: %t\n", len(r.Path)-1, r.Cost, r.Direct)
}
