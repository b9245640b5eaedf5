package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/gridpath/internal/mapdata"
)

var (
	// ErrMapNotFound is returned when no collision map has the requested ID.
	ErrMapNotFound = errors.New("collision map not found")
	// ErrChecksumMismatch is returned when stored cells do not match their
	// stored fingerprint.
	ErrChecksumMismatch = errors.New("collision map checksum mismatch")
)

// CollisionRepository persists collision maps.
type CollisionRepository struct {
	pool *pgxpool.Pool
}

// NewCollisionRepository creates a new collision map repository
func NewCollisionRepository(pool *pgxpool.Pool) *CollisionRepository {
	return &CollisionRepository{pool: pool}
}

// Save inserts or replaces a collision map.
func (r *CollisionRepository) Save(ctx context.Context, m *mapdata.CollisionMap) error {
	sum := m.Grid.Fingerprint()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO collision_maps (map_id, name, cols, rows, tile_size, cells, checksum, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7, now())
		 ON CONFLICT (map_id) DO UPDATE SET
		  name=$2, cols=$3, rows=$4, tile_size=$5, cells=$6, checksum=$7, updated_at=now()`,
		m.ID, m.Name, m.Grid.Cols(), m.Grid.Rows(), m.TileSize,
		mapdata.EncodeRows(m.Grid), sum[:],
	)
	if err != nil {
		return fmt.Errorf("saving collision map %d: %w", m.ID, err)
	}
	return nil
}

// LoadByID loads one collision map and verifies its checksum.
func (r *CollisionRepository) LoadByID(ctx context.Context, mapID int64) (*mapdata.CollisionMap, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT map_id, name, cols, rows, tile_size, cells, checksum
		 FROM collision_maps WHERE map_id = $1`, mapID)

	m, err := scanCollisionMap(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("map %d: %w", mapID, ErrMapNotFound)
		}
		return nil, fmt.Errorf("loading collision map %d: %w", mapID, err)
	}
	return m, nil
}

// LoadAll loads every collision map ordered by ID.
func (r *CollisionRepository) LoadAll(ctx context.Context) ([]*mapdata.CollisionMap, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT map_id, name, cols, rows, tile_size, cells, checksum
		 FROM collision_maps ORDER BY map_id`)
	if err != nil {
		return nil, fmt.Errorf("loading all collision maps: %w", err)
	}
	defer rows.Close()

	maps := make([]*mapdata.CollisionMap, 0, 8)
	for rows.Next() {
		m, err := scanCollisionMap(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning collision map row: %w", err)
		}
		maps = append(maps, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collision map rows: %w", err)
	}
	return maps, nil
}

// Delete removes a collision map. Deleting a missing map is not an error.
func (r *CollisionRepository) Delete(ctx context.Context, mapID int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM collision_maps WHERE map_id = $1`, mapID); err != nil {
		return fmt.Errorf("deleting collision map %d: %w", mapID, err)
	}
	return nil
}

func scanCollisionMap(row pgx.Row) (*mapdata.CollisionMap, error) {
	var (
		id         int64
		name       string
		cols, rows int
		tileSize   int
		cells      []string
		checksum   []byte
	)
	if err := row.Scan(&id, &name, &cols, &rows, &tileSize, &cells, &checksum); err != nil {
		return nil, err
	}

	grid, err := mapdata.DecodeRows(cells)
	if err != nil {
		return nil, fmt.Errorf("map %d: %w", id, err)
	}
	if grid.Cols() != cols || grid.Rows() != rows {
		return nil, fmt.Errorf("map %d: stored %dx%d, cells are %dx%d",
			id, cols, rows, grid.Cols(), grid.Rows())
	}
	sum := grid.Fingerprint()
	if !bytes.Equal(sum[:], checksum) {
		return nil, fmt.Errorf("map %d: %w", id, ErrChecksumMismatch)
	}

	return &mapdata.CollisionMap{
		ID:       id,
		Name:     name,
		TileSize: tileSize,
		Grid:     grid,
	}, nil
}
