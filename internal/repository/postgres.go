package repository

import (
	"context"
	"errors"
	"fmt"

	"latlng-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// nearestRadiusMeters bounds FindNearestLocation.
const nearestRadiusMeters = 10000

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		prefecture VARCHAR(255),
		municipality VARCHAR(255),
		address_1 VARCHAR(255),
		address_2 VARCHAR(255),
		block_lot VARCHAR(255),
		full_address TEXT GENERATED ALWAYS AS (
			coalesce(prefecture, '') || coalesce(municipality, '') || coalesce(address_1, '') || coalesce(address_2, '')
		) STORED,
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS locations_geom_idx ON locations USING GIST (geom);
`

const locationColumns = `
	id,
	coalesce(prefecture, ''),
	coalesce(municipality, ''),
	coalesce(address_1, ''),
	coalesce(address_2, ''),
	coalesce(block_lot, ''),
	ST_Y(geom::geometry) AS latitude,
	ST_X(geom::geometry) AS longitude
`

// Repository stores addressable locations in PostgreSQL with PostGIS
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the locations table and its indexes when missing
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// InsertLocations bulk loads locations with COPY and returns the number of rows copied.
// IDs of the input are ignored.
//
// geography has no binary COPY encoding in pgx, so rows are copied as EWKT text into a
// staging table that is dropped on commit, then cast on the way into locations.
func (r *Repository) InsertLocations(ctx context.Context, locations []models.Location) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin import: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		CREATE TEMP TABLE locations_import (
			prefecture TEXT,
			municipality TEXT,
			address_1 TEXT,
			address_2 TEXT,
			block_lot TEXT,
			geom TEXT
		) ON COMMIT DROP
	`)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to create staging table: %w", err)
	}

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"locations_import"},
		[]string{"prefecture", "municipality", "address_1", "address_2", "block_lot", "geom"},
		pgx.CopyFromSlice(len(locations), func(i int) ([]any, error) {
			l := locations[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", l.Longitude, l.Latitude) // EWKT is lon lat
			return []any{l.Prefecture, l.Municipality, l.Address1, l.Address2, l.BlockLot, geom}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy locations: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO locations (prefecture, municipality, address_1, address_2, block_lot, geom)
		SELECT prefecture, municipality, address_1, address_2, block_lot, geom::geography
		FROM locations_import
	`)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to move copied locations: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit import: %w", err)
	}
	return n, nil
}

// CountLocations returns the number of stored locations
func (r *Repository) CountLocations(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM locations").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count locations: %w", err)
	}
	return count, nil
}

// SearchLocationsByText returns locations whose concatenated address contains query.
// Shorter, more specific addresses rank first.
func (r *Repository) SearchLocationsByText(ctx context.Context, query string) ([]models.Location, error) {
	sql := `SELECT` + locationColumns + `
		FROM locations
		WHERE strpos(full_address, $1) > 0
		ORDER BY length(full_address), id
		LIMIT 10
	`

	rows, err := r.db.Query(ctx, sql, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}

	locations, err := pgx.CollectRows(rows, scanLocation)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan locations: %w", err)
	}

	return locations, nil
}

// FindNearestLocation returns the location closest to lat/lon within nearestRadiusMeters.
// models.ErrNotFound is returned when nothing is in range.
func (r *Repository) FindNearestLocation(ctx context.Context, lat, lon float64) (*models.Location, error) {
	sql := `SELECT` + locationColumns + `
		FROM locations
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	rows, err := r.db.Query(ctx, sql, lat, lon, nearestRadiusMeters)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	loc, err := pgx.CollectExactlyOneRow(rows, scanLocation)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repository: no location near %f,%f: %w", lat, lon, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan location: %w", err)
	}

	return &loc, nil
}

func scanLocation(row pgx.CollectableRow) (models.Location, error) {
	var loc models.Location
	err := row.Scan(
		&loc.ID,
		&loc.Prefecture,
		&loc.Municipality,
		&loc.Address1,
		&loc.Address2,
		&loc.BlockLot,
		&loc.Latitude,
		&loc.Longitude,
	)
	return loc, err
}
