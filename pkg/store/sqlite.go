package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/planio"
)

const backendSQLite = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS plans (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	rooms      INTEGER NOT NULL,
	area       REAL NOT NULL,
	created_at TEXT NOT NULL,
	body       BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS plans_created_at ON plans (created_at);
`

// SQLiteStore stores plans in a SQLite database file.
type SQLiteStore struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// NewSQLiteStore opens (creating if needed) the database at path and
// applies the schema.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, storageErr(err, "create database directory")
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, storageErr(err, "open database")
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, storageErr(err, "apply schema")
	}
	return &SQLiteStore{db: db, path: path, now: time.Now}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

// Save upserts p, keeping the original creation time.
func (s *SQLiteStore) Save(ctx context.Context, p *plan.Plan) (err error) {
	defer func(start time.Time) { observe(ctx, backendSQLite, "save", start, err) }(time.Now())
	if err := checkPlan(p); err != nil {
		return err
	}
	body, err := planio.MarshalPlan(p)
	if err != nil {
		return storageErr(err, "encode plan")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO plans (id, name, rooms, area, created_at, body)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name  = excluded.name,
			rooms = excluded.rooms,
			area  = excluded.area,
			body  = excluded.body
	`, p.ID, p.Name, len(p.Rooms), p.TotalArea(), s.now().UTC().Format(time.RFC3339Nano), body)
	return storageErr(err, "save plan")
}

// Get loads the plan with the given id.
func (s *SQLiteStore) Get(ctx context.Context, id string) (p *plan.Plan, err error) {
	defer func(start time.Time) { observe(ctx, backendSQLite, "get", start, err) }(time.Now())

	var body []byte
	row := s.db.QueryRowContext(ctx, `SELECT body FROM plans WHERE id = ?`, id)
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, storageErr(err, "load plan")
	}
	p, err = planio.UnmarshalPlan(body)
	if err != nil {
		return nil, storageErr(err, "decode plan")
	}
	return p, nil
}

// List returns every summary, newest first.
func (s *SQLiteStore) List(ctx context.Context) (out []Summary, err error) {
	defer func(start time.Time) { observe(ctx, backendSQLite, "list", start, err) }(time.Now())

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, rooms, area, created_at FROM plans`)
	if err != nil {
		return nil, storageErr(err, "list plans")
	}
	defer rows.Close()

	out = []Summary{}
	for rows.Next() {
		var (
			sum     Summary
			created string
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Rooms, &sum.Area, &created); err != nil {
			return nil, storageErr(err, "scan plan")
		}
		if sum.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, storageErr(err, "parse created_at")
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list plans")
	}
	sortSummaries(out)
	return out, nil
}

// Delete removes the plan with the given id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { observe(ctx, backendSQLite, "delete", start, err) }(time.Now())

	res, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return storageErr(err, "delete plan")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(err, "delete plan")
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
