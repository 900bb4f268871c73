package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassTimetableQueryOrdersByDayThenStartTime(t *testing.T) {
	sql, args, err := classTimetableQuery("Class 5")
	require.NoError(t, err)

	assert.Contains(t, sql, "ORDER BY tt.day_of_week, tt.start_time")
	assert.Contains(t, sql, "c.class_name = $1")
	assert.Equal(t, []interface{}{"Class 5"}, args)
}

func TestStudentAttendanceQueryOrdersByDateDescending(t *testing.T) {
	sql, args, err := studentAttendanceQuery(42)
	require.NoError(t, err)

	assert.Contains(t, sql, "ORDER BY a.date DESC")
	assert.Contains(t, sql, "a.student_id = $1")
	assert.Equal(t, []interface{}{int64(42)}, args)
}
