// Package tabular is the storage contract for sheet-shaped data: named
// tables of string cells whose first row holds the column headers.
//
// Rows are addressed by their 0-based position in ReadAll's result, the
// header row being row 0. Rows are only ever appended, so positions are
// stable for the life of a table.
package tabular

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrTableNotFound = errors.New("table not found")
	ErrTableExists   = errors.New("table already exists")
	ErrEmptyTable    = errors.New("table has no data rows")
	ErrRowNotFound   = errors.New("row not found")
)

type Store interface {
	// OpenTable fails with ErrTableNotFound when the table has no header row.
	OpenTable(ctx context.Context, name string) (Table, error)
	// CreateTable writes the header row of a new table.
	CreateTable(ctx context.Context, name string, headers []string) (Table, error)
}

type Table interface {
	Name() string
	ReadAll(ctx context.Context) ([][]string, error)
	// AppendRow writes values after the last row and returns its position.
	AppendRow(ctx context.Context, values []string) (int, error)
	// WriteCell overwrites one cell, padding the row with empty cells when
	// col is past its end.
	WriteCell(ctx context.Context, row, col int, value string) error
}

// Snapshot is a table read in one call.
type Snapshot struct {
	Table   string
	Headers []string
	// Rows are the data rows; Rows[i] is stored at position i+1.
	Rows [][]string
}

// Position returns the storage position of data row i.
func (s Snapshot) Position(i int) int {
	return i + 1
}

// ReadTable reads a whole table, splitting the header row from the data rows.
//
// It fails with ErrTableNotFound when the table does not exist and with
// ErrEmptyTable when it holds no data rows. On ErrEmptyTable the returned
// snapshot still carries the headers.
func ReadTable(ctx context.Context, store Store, name string) (Snapshot, error) {
	t, err := store.OpenTable(ctx, name)
	if err != nil {
		return Snapshot{Table: name}, err
	}
	return Read(ctx, t)
}

// Read is ReadTable for an already opened table.
func Read(ctx context.Context, t Table) (Snapshot, error) {
	rows, err := t.ReadAll(ctx)
	if err != nil {
		return Snapshot{Table: t.Name()}, fmt.Errorf("read %s: %w", t.Name(), err)
	}
	snap := Snapshot{Table: t.Name()}
	if len(rows) == 0 {
		return snap, fmt.Errorf("%w: %s", ErrEmptyTable, t.Name())
	}
	snap.Headers = rows[0]
	snap.Rows = rows[1:]
	if len(snap.Rows) == 0 {
		return snap, fmt.Errorf("%w: %s", ErrEmptyTable, t.Name())
	}
	return snap, nil
}

func notFound(name string) error {
	return fmt.Errorf("%w: %s", ErrTableNotFound, name)
}

func padRow(cells []string, width int) []string {
	if len(cells) >= width {
		return cells
	}
	out := make([]string, width)
	copy(out, cells)
	return out
}

func cloneRow(cells []string) []string {
	out := make([]string, len(cells))
	copy(out, cells)
	return out
}
