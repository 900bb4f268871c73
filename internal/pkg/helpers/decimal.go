package helpers

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// NormalizeDecimals recursively walks a JSON-like value (scalar, slice or
// string-keyed map) and converts every pgtype.Numeric it finds into a plain
// float64, so NUMERIC columns encode as JSON numbers instead of objects.
// The input is not mutated; maps and slices are rebuilt.
func NormalizeDecimals(v interface{}) interface{} {
	switch val := v.(type) {
	case pgtype.Numeric:
		if !val.Valid {
			return nil
		}
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = NormalizeDecimals(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = NormalizeDecimals(item)
		}
		return out
	default:
		return v
	}
}

// NormalizeRows applies NormalizeDecimals to a slice of row-mappings as
// returned by pgx.RowToMap.
func NormalizeRows(rows []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		out[i] = NormalizeDecimals(row).(map[string]interface{})
	}
	return out
}
