package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/sodam-labs/sodam/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS areas (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	lat        REAL,
	lon        REAL,
	features   TEXT NOT NULL DEFAULT '{}',
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_areas_name ON areas(name);
`

const sqliteUpsertArea = `INSERT INTO areas (id, name, lat, lon, features, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	name = excluded.name,
	lat = excluded.lat,
	lon = excluded.lon,
	features = excluded.features,
	updated_at = excluded.updated_at`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertSQLite(ctx context.Context, ex execer, area model.Area) (*model.Area, error) {
	a, featuresJSON, err := prepareArea(area)
	if err != nil {
		return nil, err
	}
	a.UpdatedAt = time.Now().UTC()

	_, err = ex.ExecContext(ctx, sqliteUpsertArea,
		a.ID, a.Name, nullFloat(a.Lat), nullFloat(a.Lon), string(featuresJSON), a.UpdatedAt,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: upsert area %s", a.ID)
	}
	return &a, nil
}

func (s *SQLiteStore) UpsertArea(ctx context.Context, area model.Area) (*model.Area, error) {
	return upsertSQLite(ctx, s.db, area)
}

// ImportAreas upserts all areas in a single transaction.
func (s *SQLiteStore) ImportAreas(ctx context.Context, areas []model.Area) (int, error) {
	areas = latestByID(areas)
	if len(areas) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin import")
	}
	defer tx.Rollback() //nolint:errcheck

	for _, a := range areas {
		if _, err := upsertSQLite(ctx, tx, a); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: commit import")
	}
	return len(areas), nil
}

func (s *SQLiteStore) GetArea(ctx context.Context, id string) (*model.Area, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, lat, lon, features, updated_at FROM areas WHERE id = ?`, id,
	)
	a, err := scanArea(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, eris.Wrapf(ErrNotFound, "sqlite: get area %s", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get area %s", id)
	}
	return a, nil
}

func (s *SQLiteStore) ListAreas(ctx context.Context, filter AreaFilter) ([]model.Area, error) {
	query := `SELECT id, name, lat, lon, features, updated_at FROM areas ORDER BY id LIMIT ?`
	args := []any{limitOf(filter)}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list areas")
	}
	defer rows.Close()

	var areas []model.Area
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan area")
		}
		areas = append(areas, *a)
	}
	return areas, eris.Wrap(rows.Err(), "sqlite: list areas iterate")
}

// SeedSamples inserts the sample areas when the table is empty.
func (s *SQLiteStore) SeedSamples(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM areas`).Scan(&count); err != nil {
		return 0, eris.Wrap(err, "sqlite: count areas")
	}
	if count > 0 {
		return 0, nil
	}

	n, err := s.ImportAreas(ctx, SampleAreas())
	if err != nil {
		return 0, err
	}
	zap.L().Info("sqlite: seeded sample areas", zap.Int("count", n))
	return n, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanArea(row scannable) (*model.Area, error) {
	var a model.Area
	var lat, lon sql.NullFloat64
	var featuresJSON string
	if err := row.Scan(&a.ID, &a.Name, &lat, &lon, &featuresJSON, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if lat.Valid {
		a.Lat = &lat.Float64
	}
	if lon.Valid {
		a.Lon = &lon.Float64
	}
	fs, err := decodeFeatures([]byte(featuresJSON))
	if err != nil {
		return nil, err
	}
	a.Features = fs
	return &a, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
