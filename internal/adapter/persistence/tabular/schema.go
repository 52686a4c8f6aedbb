package tabular

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrSchema = errors.New("schema mismatch")

type ColumnType int

const (
	Text ColumnType = iota
	Number
	Time
	Bool
	JSON
)

// Column describes one expected header.
type Column struct {
	Name     string
	Type     ColumnType
	Required bool
	// FallbackLastColumn resolves the column to the last header when no
	// header carries its name. Old sheets kept the status there.
	FallbackLastColumn bool
	// AddIfMissing lets EnsureColumns append the header to existing tables.
	AddIfMissing bool
}

// Schema is the typed descriptor of one table.
type Schema struct {
	Table   string
	Columns []Column
}

// Headers returns the canonical header row used when creating the table.
func (s Schema) Headers() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Name
	}
	return out
}

// WithTable returns a copy of the schema bound to another table name.
func (s Schema) WithTable(name string) Schema {
	s.Table = name
	return s
}

// SchemaError lists the required columns a table lacks.
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet %s is missing required columns: %s", e.Table, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// Layout maps column names to positions for one header row.
type Layout struct {
	table   string
	headers []string
	index   map[string]int
	types   map[string]ColumnType
	columns []string
	// fallbacks lists the columns resolved through FallbackLastColumn.
	fallbacks []string
}

// Resolve builds the name-to-position map of headers against schema. Header
// names must match exactly; the first occurrence of a name wins.
func Resolve(schema Schema, headers []string) (Layout, error) {
	l := Layout{
		table:   schema.Table,
		headers: headers,
		index:   make(map[string]int, len(schema.Columns)),
		types:   make(map[string]ColumnType, len(schema.Columns)),
	}

	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if _, dup := byName[h]; !dup {
			byName[h] = i
		}
	}

	var missing []string
	for _, c := range schema.Columns {
		if i, ok := byName[c.Name]; ok {
			l.bind(c, i)
			continue
		}
		if c.FallbackLastColumn && len(headers) > 0 {
			l.bind(c, len(headers)-1)
			l.fallbacks = append(l.fallbacks, c.Name)
			continue
		}
		if c.Required {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		return Layout{}, &SchemaError{Table: schema.Table, Missing: missing}
	}
	return l, nil
}

func (l *Layout) bind(c Column, i int) {
	l.index[c.Name] = i
	l.types[c.Name] = c.Type
	l.columns = append(l.columns, c.Name)
}

func (l Layout) Table() string     { return l.table }
func (l Layout) Width() int        { return len(l.headers) }
func (l Layout) Headers() []string { return l.headers }

// Fallbacks reports which columns were resolved to the last header.
func (l Layout) Fallbacks() []string { return l.fallbacks }

func (l Layout) Index(col string) (int, bool) {
	i, ok := l.index[col]
	return i, ok
}

// Columns lists the resolved column names in schema order.
func (l Layout) Columns() []string { return l.columns }

// Type returns the declared type of col; unresolved columns are Text.
func (l Layout) Type(col string) ColumnType { return l.types[col] }

func (l Layout) Has(col string) bool {
	_, ok := l.index[col]
	return ok
}

// Get returns the cell of row under col, or "" when the column is absent or
// the row is short.
func (l Layout) Get(row []string, col string) string {
	i, ok := l.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// Set writes value under col; absent columns are ignored.
func (l Layout) Set(row []string, col, value string) {
	if i, ok := l.index[col]; ok && i < len(row) {
		row[i] = value
	}
}

// NewRow returns an empty row as wide as the header row.
func (l Layout) NewRow() []string {
	return make([]string, len(l.headers))
}

// EnsureColumns appends the header of every AddIfMissing column the table
// lacks and returns the resulting header row.
func EnsureColumns(ctx context.Context, t Table, schema Schema, headers []string) ([]string, error) {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	out := append([]string(nil), headers...)
	for _, c := range schema.Columns {
		if !c.AddIfMissing || present[c.Name] {
			continue
		}
		if err := t.WriteCell(ctx, 0, len(out), c.Name); err != nil {
			return headers, fmt.Errorf("add column %s to %s: %w", c.Name, t.Name(), err)
		}
		out = append(out, c.Name)
		present[c.Name] = true
	}
	return out, nil
}

// Bootstrap creates every table of schemas that does not exist yet.
func Bootstrap(ctx context.Context, store Store, schemas ...Schema) error {
	for _, s := range schemas {
		_, err := store.OpenTable(ctx, s.Table)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrTableNotFound) {
			return err
		}
		if _, err := store.CreateTable(ctx, s.Table, s.Headers()); err != nil && !errors.Is(err, ErrTableExists) {
			return fmt.Errorf("bootstrap %s: %w", s.Table, err)
		}
	}
	return nil
}

// Load reads t and resolves its layout, first appending any missing
// AddIfMissing headers. Tables that rely on a last-column fallback are left
// as they are, since a new trailing header would move the fallback.
func Load(ctx context.Context, t Table, schema Schema) (Snapshot, Layout, error) {
	snap, err := Read(ctx, t)
	if err != nil && !errors.Is(err, ErrEmptyTable) {
		return snap, Layout{}, err
	}
	l, err := Resolve(schema, snap.Headers)
	if err != nil || len(l.fallbacks) > 0 {
		return snap, l, err
	}
	headers, err := EnsureColumns(ctx, t, schema, snap.Headers)
	if err != nil {
		return snap, Layout{}, err
	}
	if len(headers) == len(snap.Headers) {
		return snap, l, nil
	}
	snap.Headers = headers
	l, err = Resolve(schema, headers)
	return snap, l, err
}
