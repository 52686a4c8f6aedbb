package tabular

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLiteStore keeps every sheet in one SQLite table, one JSON-encoded row
// of cells per record.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates the backing table if needed.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS sheet_rows (
		sheet TEXT NOT NULL,
		row_num INTEGER NOT NULL,
		cells TEXT NOT NULL,
		PRIMARY KEY (sheet, row_num)
	)`)
	if err != nil {
		return nil, fmt.Errorf("migrate sheet_rows: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) exists(ctx context.Context, name string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sheet_rows WHERE sheet = ? AND row_num = 0`, name).Scan(&n)
	return n > 0, err
}

func (s *SQLiteStore) OpenTable(ctx context.Context, name string) (Table, error) {
	ok, err := s.exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound(name)
	}
	return &sqliteTable{db: s.db, name: name}, nil
}

func (s *SQLiteStore) CreateTable(ctx context.Context, name string, headers []string) (Table, error) {
	raw, err := json.Marshal(cloneRow(headers))
	if err != nil {
		return nil, err
	}
	res, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO sheet_rows (sheet, row_num, cells) VALUES (?, 0, ?)`, name, string(raw))
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableExists, name)
	}
	return &sqliteTable{db: s.db, name: name}, nil
}

type sqliteTable struct {
	db   *sql.DB
	name string
}

func (t *sqliteTable) Name() string { return t.name }

func (t *sqliteTable) ReadAll(ctx context.Context) ([][]string, error) {
	rows, err := t.db.QueryContext(ctx, `SELECT cells FROM sheet_rows WHERE sheet = ? ORDER BY row_num`, t.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var cells []string
		if err := json.Unmarshal([]byte(raw), &cells); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", t.name, err)
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, notFound(t.name)
	}
	return out, nil
}

func (t *sqliteTable) AppendRow(ctx context.Context, values []string) (int, error) {
	raw, err := json.Marshal(cloneRow(values))
	if err != nil {
		return 0, err
	}
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var last sql.NullInt64
	if err := tx.QueryRowContext(ctx, `SELECT MAX(row_num) FROM sheet_rows WHERE sheet = ?`, t.name).Scan(&last); err != nil {
		return 0, err
	}
	if !last.Valid {
		return 0, notFound(t.name)
	}
	next := int(last.Int64) + 1
	if _, err := tx.ExecContext(ctx, `INSERT INTO sheet_rows (sheet, row_num, cells) VALUES (?, ?, ?)`, t.name, next, string(raw)); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return next, nil
}

func (t *sqliteTable) WriteCell(ctx context.Context, row, col int, value string) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: %s[%d][%d]", ErrRowNotFound, t.name, row, col)
	}
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var raw string
	err = tx.QueryRowContext(ctx, `SELECT cells FROM sheet_rows WHERE sheet = ? AND row_num = ?`, t.name, row).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s[%d]", ErrRowNotFound, t.name, row)
	}
	if err != nil {
		return err
	}
	var cells []string
	if err := json.Unmarshal([]byte(raw), &cells); err != nil {
		return fmt.Errorf("decode %s row: %w", t.name, err)
	}
	cells = padRow(cells, col+1)
	cells[col] = value

	updated, err := json.Marshal(cells)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE sheet_rows SET cells = ? WHERE sheet = ? AND row_num = ?`, string(updated), t.name, row); err != nil {
		return err
	}
	return tx.Commit()
}
