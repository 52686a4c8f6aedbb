// Package records maps sheet rows to domain entities and back.
//
// Columns are located by header name through a tabular.Layout, never by
// position, so sheets may reorder or add columns freely. Cells are read
// defensively: a missing column reads as "", a malformed number as zero and
// a malformed date as the zero time.
package records

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/money"

	"github.com/shopspring/decimal"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006",
	"2006-01-02",
}

// ParseAmount reads a money cell; see money.Parse.
func ParseAmount(s string) decimal.Decimal {
	return money.Parse(s)
}

func FormatAmount(d decimal.Decimal) string {
	return d.String()
}

// ParseFloat reads a numeric cell; invalid, NaN and infinite values read as zero.
func ParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// FormatTime writes RFC3339 in UTC; the zero time writes "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}

func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// SameValue reports whether two cells of type typ read as the same value,
// e.g. "$1,250.00" and "1250" as numbers or "3/9/2024" and
// "2024-03-09T00:00:00Z" as times.
func SameValue(typ tabular.ColumnType, a, b string) bool {
	if a == b {
		return true
	}
	switch typ {
	case tabular.Number:
		return ParseAmount(a).Equal(ParseAmount(b))
	case tabular.Time:
		return ParseTime(a).Equal(ParseTime(b))
	case tabular.Bool:
		return ParseBool(a) == ParseBool(b)
	}
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// Keep returns next with every cell that holds the same value as in prev
// replaced by prev's text. Mapping a row to an entity and back normalizes
// amounts, dates and flags; Keep restores the text of the fields that did
// not change.
func Keep(l tabular.Layout, prev, next []string) []string {
	out := append([]string(nil), next...)
	for _, col := range l.Columns() {
		i, _ := l.Index(col)
		if i >= len(prev) || i >= len(out) {
			continue
		}
		if SameValue(l.Type(col), prev[i], out[i]) {
			out[i] = prev[i]
		}
	}
	return out
}

// ParseJSON keeps valid JSON as is and wraps anything else as a JSON string.
func ParseJSON(s string) json.RawMessage {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	raw, _ := json.Marshal(s)
	return raw
}
