package dune

import (
	"strconv"
	"strings"

	"github.com/kripto-transakcije/explorer/pkg/format"
)

// Row is one result row keyed by column name.
type Row map[string]any

// String renders a column as text; numbers print without exponent.
func (r Row) String(keys ...string) string {
	for _, key := range keys {
		switch v := r[key].(type) {
		case nil:
			continue
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return ""
}

// Float reads a numeric column that may be encoded as text.
func (r Row) Float(keys ...string) float64 {
	for _, key := range keys {
		switch v := r[key].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// Uint reads an integer column.
func (r Row) Uint(keys ...string) uint64 {
	return format.ParseUint(r.String(keys...))
}
