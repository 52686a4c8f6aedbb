package repository

import (
	"context"
	"strings"

	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/tabular"
)

// sheet binds a record schema to a store and carries the read/locate/write
// steps shared by every repository.
type sheet struct {
	store  tabular.Store
	schema tabular.Schema
}

type loaded struct {
	table  tabular.Table
	layout tabular.Layout
	rows   [][]string
	// positions[i] is the storage position of rows[i].
	positions []int
}

// load reads the table and resolves its layout. A table with only a header
// row loads with no rows.
func (s sheet) load(ctx context.Context) (loaded, error) {
	t, err := s.store.OpenTable(ctx, s.schema.Table)
	if err != nil {
		return loaded{}, err
	}
	snap, l, err := tabular.Load(ctx, t, s.schema)
	if err != nil {
		return loaded{}, err
	}

	out := loaded{table: t, layout: l, rows: snap.Rows, positions: make([]int, len(snap.Rows))}
	for i := range snap.Rows {
		out.positions[i] = snap.Position(i)
	}
	return out, nil
}

// find returns the first row whose col equals value (ignoring surrounding
// whitespace) and its position; position 0 means no match.
func (ld loaded) find(col, value string) ([]string, int) {
	value = strings.TrimSpace(value)
	for i, row := range ld.rows {
		if strings.TrimSpace(ld.layout.Get(row, col)) == value {
			return row, ld.positions[i]
		}
	}
	return nil, 0
}

func (ld loaded) filter(col, value string) [][]string {
	value = strings.TrimSpace(value)
	var out [][]string
	for _, row := range ld.rows {
		if strings.TrimSpace(ld.layout.Get(row, col)) == value {
			out = append(out, row)
		}
	}
	return out
}

type cell struct {
	col   string
	value string
}

// write updates the given cells of the row at pos, in order, and applies
// the same values to row. Columns the sheet lacks are skipped, as are cells
// that already hold the value so their stored text is kept.
func (ld loaded) write(ctx context.Context, pos int, row []string, cells ...cell) ([]string, error) {
	updated := append([]string(nil), row...)
	for _, c := range cells {
		i, ok := ld.layout.Index(c.col)
		if !ok {
			continue
		}
		if i < len(updated) && records.SameValue(ld.layout.Type(c.col), updated[i], c.value) {
			continue
		}
		if err := ld.table.WriteCell(ctx, pos, i, c.value); err != nil {
			return nil, err
		}
		if i >= len(updated) {
			grown := make([]string, i+1)
			copy(grown, updated)
			updated = grown
		}
		updated[i] = c.value
	}
	return updated, nil
}

func (ld loaded) append(ctx context.Context, row []string) error {
	_, err := ld.table.AppendRow(ctx, row)
	return err
}
