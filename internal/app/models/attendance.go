package models

// Attendance represents one student-day attendance row based on the
// 'attendance' table. RecordedBy references the user who took attendance,
// for audit only.
type Attendance struct {
	AttendanceID int64   `json:"attendance_id"`
	StudentID    int64   `json:"student_id" binding:"required"`
	Date         Date    `json:"date" binding:"required"`
	Status       string  `json:"status" binding:"required"`
	Remarks      *string `json:"remarks"`
	RecordedBy   int64   `json:"recorded_by" binding:"required"`
}
