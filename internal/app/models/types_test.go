package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2015-09-01"`), &d))
	assert.True(t, d.Valid)
	assert.Equal(t, 2015, d.Time.Year())
	assert.Equal(t, time.September, d.Time.Month())
	assert.Equal(t, 1, d.Time.Day())
}

func TestDateUnmarshalJSONAbsent(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(raw), &d))
		assert.False(t, d.Valid)
	}
}

func TestDateUnmarshalJSONInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"01/09/2015"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20150901`), &d))
}

func TestDateMarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2015, time.September, 1))
	require.NoError(t, err)
	assert.Equal(t, `"2015-09-01"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2020, time.March, 15).Value()
	require.NoError(t, err)
	assert.IsType(t, time.Time{}, v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2021, time.June, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2021-06-03", d.String())

	require.NoError(t, d.Scan(nil))
	assert.False(t, d.Valid)
	assert.Equal(t, "", d.String())
}

func TestTimeOfDayUnmarshalJSON(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"09:30:00"`), &tod))
	assert.True(t, tod.Valid)
	assert.Equal(t, "09:30:00", tod.String())

	// short form without seconds
	require.NoError(t, json.Unmarshal([]byte(`"14:15"`), &tod))
	assert.Equal(t, "14:15:00", tod.String())
}

func TestTimeOfDayUnmarshalJSONAbsent(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var tod TimeOfDay
		require.NoError(t, json.Unmarshal([]byte(raw), &tod))
		assert.False(t, tod.Valid)
	}
}

func TestTimeOfDayMarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewTimeOfDay(9, 30, 0))
	require.NoError(t, err)
	assert.Equal(t, `"09:30:00"`, string(data))

	data, err = json.Marshal(TimeOfDay{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestTimeOfDayScanMicroseconds(t *testing.T) {
	var tod TimeOfDay
	// 09:30:00 as microseconds since midnight
	require.NoError(t, tod.Scan(int64(9*3600+30*60)*1_000_000))
	assert.Equal(t, "09:30:00", tod.String())
}

func TestTimeOfDayValue(t *testing.T) {
	v, err := NewTimeOfDay(8, 0, 0).Value()
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", v)

	v, err = TimeOfDay{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
