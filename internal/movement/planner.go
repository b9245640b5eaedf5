// Package movement turns move requests into tile routes on a collision grid.
package movement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gridpath/internal/config"
	"github.com/udisondev/gridpath/internal/game/geo"
)

// Request asks for a route for one entity.
type Request struct {
	EntityID int64
	From     geo.GridPoint
	To       geo.GridPoint
}

// Route is the planned movement for one request.
type Route struct {
	EntityID  int64
	From      geo.GridPoint
	Requested geo.GridPoint // destination as asked
	To        geo.GridPoint // destination actually routed to
	Path      []geo.GridPoint
	Cost      float64
	// Direct is true when the straight tile line was walkable and A* was skipped.
	Direct bool
	// Snapped is true when Requested was blocked and To is the nearest open tile.
	Snapped bool
}

// Stay reports whether the entity should not move: no path was found or the
// destination request was ignored.
func (r Route) Stay() bool {
	return len(r.Path) == 0
}

// Planner plans routes on one grid snapshot. The grid is only read, so a
// Planner may serve many goroutines.
type Planner struct {
	grid           *geo.Grid
	tileSize       int
	workers        int
	allowCornerCut bool
	opts           []geo.Option
}

// NewPlanner creates a planner over grid using search and planner settings
// from cfg.
func NewPlanner(grid *geo.Grid, cfg config.Pathfind) (*Planner, error) {
	if grid == nil {
		return nil, errors.New("planner: nil grid")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	return &Planner{
		grid:           grid,
		tileSize:       cfg.Map.TileSize,
		workers:        cfg.Planner.Workers,
		allowCornerCut: cfg.Search.AllowCornerCut,
		opts:           cfg.SearchOptions(),
	}, nil
}

// Grid returns the planner's grid snapshot.
func (p *Planner) Grid() *geo.Grid {
	return p.grid
}

// ResolveDestination returns target when it is walkable, otherwise the
// nearest walkable tile. ok is false when there is none and the request
// should be ignored.
func (p *Planner) ResolveDestination(target geo.GridPoint) (geo.GridPoint, bool) {
	return p.grid.NearestWalkable(target)
}

// Plan routes from → to. A blocked destination is snapped to the nearest
// walkable tile; a clear straight line is taken as is; otherwise A* runs.
func (p *Planner) Plan(from, to geo.GridPoint) Route {
	route := Route{From: from, Requested: to}

	dest, ok := p.ResolveDestination(to)
	if !ok {
		slog.Debug("destination ignored, no walkable tile", "to", to)
		return route
	}
	route.To = dest
	route.Snapped = dest != to

	if direct := p.grid.DirectPath(from, dest, p.allowCornerCut); direct != nil {
		route.Path = direct
		route.Cost = geo.PathCost(direct)
		route.Direct = true
		return route
	}

	res := geo.Search(p.grid, from, dest, p.opts...)
	route.Path = res.Path
	route.Cost = res.Cost

	slog.Debug("route planned",
		"from", from,
		"to", dest,
		"snapped", route.Snapped,
		"found", res.Found,
		"steps", len(res.Path),
		"expanded", res.Expanded)
	return route
}

// PlanWorld plans between world positions, mapping each to its tile.
func (p *Planner) PlanWorld(fromX, fromY, toX, toY float64) Route {
	return p.Plan(
		geo.TileOf(fromX, fromY, p.tileSize),
		geo.TileOf(toX, toY, p.tileSize),
	)
}

// Waypoints converts a route to tile-center world positions for the
// movement loop.
func (p *Planner) Waypoints(r Route) [][2]float64 {
	return geo.WorldPath(r.Path, p.tileSize)
}

// PlanAll plans every request concurrently, at most cfg.Planner.Workers at a
// time. routes[i] answers reqs[i]. Cancelling ctx stops scheduling new
// requests and returns ctx's error.
func (p *Planner) PlanAll(ctx context.Context, reqs []Request) ([]Route, error) {
	routes := make([]Route, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, req := range reqs {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			route := p.Plan(req.From, req.To)
			route.EntityID = req.EntityID
			routes[i] = route
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("planning %d routes: %w", len(reqs), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("planning %d routes: %w", len(reqs), err)
	}
	return routes, nil
}
