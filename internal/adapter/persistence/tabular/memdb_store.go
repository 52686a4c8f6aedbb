package tabular

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-memdb"
)

const memRowsTable = "rows"

type memRow struct {
	Sheet string
	Row   int
	Cells []string
}

func memSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memRowsTable: {
				Name: memRowsTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:   "id",
						Unique: true,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.StringFieldIndex{Field: "Sheet"},
								&memdb.IntFieldIndex{Field: "Row"},
							},
						},
					},
					"sheet": {
						Name:    "sheet",
						Indexer: &memdb.StringFieldIndex{Field: "Sheet"},
					},
				},
			},
		},
	}
}

// MemStore keeps tables in an in-memory go-memdb database. Writes are
// serialized by memdb's single writer; readers see committed snapshots.
type MemStore struct {
	db *memdb.MemDB
}

var _ Store = (*MemStore)(nil)

func NewMemStore() (*MemStore, error) {
	db, err := memdb.NewMemDB(memSchema())
	if err != nil {
		return nil, err
	}
	return &MemStore{db: db}, nil
}

func (s *MemStore) OpenTable(_ context.Context, name string) (Table, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memRowsTable, "id", name, 0)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, notFound(name)
	}
	return &memTable{db: s.db, name: name}, nil
}

func (s *MemStore) CreateTable(_ context.Context, name string, headers []string) (Table, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(memRowsTable, "id", name, 0)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		return nil, fmt.Errorf("%w: %s", ErrTableExists, name)
	}
	if err := txn.Insert(memRowsTable, &memRow{Sheet: name, Row: 0, Cells: cloneRow(headers)}); err != nil {
		return nil, err
	}
	txn.Commit()
	return &memTable{db: s.db, name: name}, nil
}

type memTable struct {
	db   *memdb.MemDB
	name string
}

func (t *memTable) Name() string { return t.name }

func (t *memTable) rows(txn *memdb.Txn) ([]*memRow, error) {
	it, err := txn.Get(memRowsTable, "sheet", t.name)
	if err != nil {
		return nil, err
	}
	var out []*memRow
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, obj.(*memRow))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Row < out[j].Row })
	return out, nil
}

func (t *memTable) ReadAll(_ context.Context) ([][]string, error) {
	txn := t.db.Txn(false)
	defer txn.Abort()

	rows, err := t.rows(txn)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound(t.name)
	}
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = cloneRow(r.Cells)
	}
	return out, nil
}

func (t *memTable) AppendRow(_ context.Context, values []string) (int, error) {
	txn := t.db.Txn(true)
	defer txn.Abort()

	rows, err := t.rows(txn)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, notFound(t.name)
	}
	next := rows[len(rows)-1].Row + 1
	if err := txn.Insert(memRowsTable, &memRow{Sheet: t.name, Row: next, Cells: cloneRow(values)}); err != nil {
		return 0, err
	}
	txn.Commit()
	return next, nil
}

func (t *memTable) WriteCell(_ context.Context, row, col int, value string) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: %s[%d][%d]", ErrRowNotFound, t.name, row, col)
	}
	txn := t.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(memRowsTable, "id", t.name, row)
	if err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("%w: %s[%d]", ErrRowNotFound, t.name, row)
	}
	// memdb objects are immutable once inserted; write a modified copy.
	cells := padRow(cloneRow(raw.(*memRow).Cells), col+1)
	cells[col] = value
	if err := txn.Insert(memRowsTable, &memRow{Sheet: t.name, Row: row, Cells: cells}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}
