package clients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const clientsSchema = `
CREATE TABLE IF NOT EXISTS clients (
	id              TEXT PRIMARY KEY,
	advisor         TEXT NOT NULL DEFAULT '',
	name            TEXT NOT NULL,
	date            TEXT NOT NULL DEFAULT '',
	case_type       TEXT NOT NULL DEFAULT '',
	plan_count      INTEGER NOT NULL DEFAULT 0,
	plans_complete  INTEGER NOT NULL DEFAULT 0,
	checklist_done  INTEGER NOT NULL DEFAULT 0,
	checklist_total INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteStore implements Store on an embedded SQLite database. List order is
// insertion order (rowid).
type SQLiteStore struct {
	db  *sql.DB
	log *zap.Logger
}

// SQLiteOption mutates store configuration.
type SQLiteOption func(*SQLiteStore)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) SQLiteOption {
	return func(s *SQLiteStore) {
		if log != nil {
			s.log = log
		}
	}
}

// OpenSQLite opens (creating if needed) the client database at path and
// bootstraps the schema.
func OpenSQLite(path string, opts ...SQLiteOption) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open client db: %w", err)
	}
	if _, err := db.Exec(clientsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap client schema: %w", err)
	}
	s := &SQLiteStore{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Empty reports whether the database holds no clients, so callers can decide
// to seed demo data.
func (s *SQLiteStore) Empty(ctx context.Context) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

const recordColumns = `id, advisor, name, date, case_type, plan_count, plans_complete, checklist_done, checklist_total`

func scanRecord(scan func(dest ...any) error) (Record, error) {
	var rec Record
	var id string
	err := scan(&id, &rec.Advisor, &rec.Name, &rec.Date, &rec.CaseType,
		&rec.PlanCount, &rec.PlansComplete, &rec.ChecklistDone, &rec.ChecklistTotal)
	if err != nil {
		return Record{}, err
	}
	rec.ID, err = uuid.Parse(id)
	if err != nil {
		return Record{}, fmt.Errorf("corrupt client id %q: %w", id, err)
	}
	return rec, nil
}

func (s *SQLiteStore) List(ctx context.Context, page, pageSize int) ([]Record, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM clients ORDER BY rowid LIMIT ? OFFSET ?`,
		pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	s.log.Debug("listed clients", zap.Int("page", page), zap.Int("count", len(records)), zap.Int("total", total))
	return records, total, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM clients WHERE id = ?`, id.String())
	rec, err := scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, NotFoundError{ID: id}
	}
	return rec, err
}

func (s *SQLiteStore) Create(ctx context.Context, rec Record) (Record, error) {
	if rec.Name == "" {
		return Record{}, ValidationError{Reason: "name must not be empty"}
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO clients (`+recordColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Advisor, rec.Name, rec.Date, rec.CaseType,
		rec.PlanCount, rec.PlansComplete, rec.ChecklistDone, rec.ChecklistTotal)
	if err != nil {
		return Record{}, err
	}
	s.log.Info("created client", zap.String("id", rec.ID.String()), zap.String("name", rec.Name))
	return rec, nil
}

func (s *SQLiteStore) Update(ctx context.Context, rec Record) (Record, error) {
	if rec.Name == "" {
		return Record{}, ValidationError{Reason: "name must not be empty"}
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE clients SET advisor = ?, name = ?, date = ?, case_type = ?,
			plan_count = ?, plans_complete = ?, checklist_done = ?, checklist_total = ?
		 WHERE id = ?`,
		rec.Advisor, rec.Name, rec.Date, rec.CaseType,
		rec.PlanCount, rec.PlansComplete, rec.ChecklistDone, rec.ChecklistTotal,
		rec.ID.String())
	if err != nil {
		return Record{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Record{}, err
	}
	if affected == 0 {
		return Record{}, NotFoundError{ID: rec.ID}
	}
	return rec, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NotFoundError{ID: id}
	}
	return nil
}
