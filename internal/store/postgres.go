package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sodam-labs/sodam/internal/db"
	"github.com/sodam-labs/sodam/internal/model"
	"github.com/sodam-labs/sodam/internal/resilience"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 1
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := resilience.Do(ctx, resilience.ConnectPolicy("postgres ping"), pool.Ping); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS areas (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	name       TEXT NOT NULL DEFAULT '',
	lat        DOUBLE PRECISION,
	lon        DOUBLE PRECISION,
	features   JSONB NOT NULL DEFAULT '{}'::jsonb,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_areas_name ON areas(name);
`

var areaColumns = []string{"id", "name", "lat", "lon", "features", "updated_at"}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) UpsertArea(ctx context.Context, area model.Area) (*model.Area, error) {
	a, featuresJSON, err := prepareArea(area)
	if err != nil {
		return nil, err
	}
	a.UpdatedAt = time.Now().UTC()

	_, err = s.pool.Exec(ctx,
		`INSERT INTO areas (id, name, lat, lon, features, updated_at) VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, lat = EXCLUDED.lat, lon = EXCLUDED.lon,
		 features = EXCLUDED.features, updated_at = EXCLUDED.updated_at`,
		a.ID, a.Name, a.Lat, a.Lon, featuresJSON, a.UpdatedAt,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: upsert area %s", a.ID)
	}
	return &a, nil
}

// ImportAreas bulk-loads areas through a staging table. A repeated id keeps
// its last row, since the merge may touch each target row only once.
func (s *PostgresStore) ImportAreas(ctx context.Context, areas []model.Area) (int, error) {
	areas = latestByID(areas)
	now := time.Now().UTC()
	rows := make([][]any, 0, len(areas))
	for _, area := range areas {
		a, featuresJSON, err := prepareArea(area)
		if err != nil {
			return 0, err
		}
		rows = append(rows, []any{a.ID, a.Name, a.Lat, a.Lon, featuresJSON, now})
	}

	n, err := db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        "areas",
		Columns:      areaColumns,
		ConflictKeys: []string{"id"},
	}, rows)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: import areas")
	}
	return int(n), nil
}

func (s *PostgresStore) GetArea(ctx context.Context, id string) (*model.Area, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, lat, lon, features, updated_at FROM areas WHERE id = $1`, id,
	)
	a, err := scanPgArea(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Wrapf(ErrNotFound, "postgres: get area %s", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get area %s", id)
	}
	return a, nil
}

func (s *PostgresStore) ListAreas(ctx context.Context, filter AreaFilter) ([]model.Area, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, lat, lon, features, updated_at FROM areas ORDER BY id LIMIT $1 OFFSET $2`,
		limitOf(filter), max(filter.Offset, 0),
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list areas")
	}
	defer rows.Close()

	var areas []model.Area
	for rows.Next() {
		a, err := scanPgArea(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan area")
		}
		areas = append(areas, *a)
	}
	return areas, eris.Wrap(rows.Err(), "postgres: list areas iterate")
}

// SeedSamples inserts the sample areas when the table is empty.
func (s *PostgresStore) SeedSamples(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM areas`).Scan(&count); err != nil {
		return 0, eris.Wrap(err, "postgres: count areas")
	}
	if count > 0 {
		return 0, nil
	}

	n, err := s.ImportAreas(ctx, SampleAreas())
	if err != nil {
		return 0, err
	}
	zap.L().Info("postgres: seeded sample areas", zap.Int("count", n))
	return n, nil
}

func scanPgArea(row pgx.Row) (*model.Area, error) {
	var a model.Area
	var featuresJSON []byte
	if err := row.Scan(&a.ID, &a.Name, &a.Lat, &a.Lon, &featuresJSON, &a.UpdatedAt); err != nil {
		return nil, err
	}
	fs, err := decodeFeatures(featuresJSON)
	if err != nil {
		return nil, err
	}
	a.Features = fs
	return &a, nil
}
