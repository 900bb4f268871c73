package helpers

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numeric(digits int64, exp int32) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(digits), Exp: exp, Valid: true}
}

func TestNormalizeDecimalsScalar(t *testing.T) {
	got := NormalizeDecimals(numeric(12345, -2))
	assert.Equal(t, 123.45, got)
}

func TestNormalizeDecimalsNull(t *testing.T) {
	assert.Nil(t, NormalizeDecimals(pgtype.Numeric{}))
}

func TestNormalizeDecimalsPassthrough(t *testing.T) {
	assert.Equal(t, "hello", NormalizeDecimals("hello"))
	assert.Equal(t, int64(7), NormalizeDecimals(int64(7)))
	assert.Nil(t, NormalizeDecimals(nil))
}

func TestNormalizeDecimalsNested(t *testing.T) {
	in := map[string]interface{}{
		"amount": numeric(50000, -2),
		"detail": map[string]interface{}{
			"marks": numeric(875, -1),
		},
		"history": []interface{}{
			numeric(100, 0),
			"unchanged",
		},
		"name": "Tuition Fee",
	}

	out := NormalizeDecimals(in).(map[string]interface{})
	assert.Equal(t, 500.0, out["amount"])
	assert.Equal(t, 87.5, out["detail"].(map[string]interface{})["marks"])
	assert.Equal(t, 100.0, out["history"].([]interface{})[0])
	assert.Equal(t, "unchanged", out["history"].([]interface{})[1])
	assert.Equal(t, "Tuition Fee", out["name"])

	// input map must not be mutated
	assert.IsType(t, pgtype.Numeric{}, in["amount"])
}

func TestNormalizeRowsEncodesAsNumbers(t *testing.T) {
	rows := []map[string]interface{}{
		{"payment_id": int64(1), "amount_paid": numeric(12345, -2)},
		{"payment_id": int64(2), "amount_paid": pgtype.Numeric{}},
	}

	out := NormalizeRows(rows)
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"payment_id":1,"amount_paid":123.45},{"payment_id":2,"amount_paid":null}]`, string(data))
}

func TestNormalizeRowsEmpty(t *testing.T) {
	out := NormalizeRows([]map[string]interface{}{})
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}
