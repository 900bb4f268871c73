package models

// Timetable represents a single scheduled period based on the 'timetable'
// table. day_of_week is free text ("Monday".."Sunday") and sorts
// alphabetically, matching the class timetable view's ordering contract.
type Timetable struct {
	TimetableID int64     `json:"timetable_id"`
	ClassID     int64     `json:"class_id" binding:"required"`
	SubjectID   int64     `json:"subject_id" binding:"required"`
	TeacherID   int64     `json:"teacher_id" binding:"required"`
	DayOfWeek   string    `json:"day_of_week" binding:"required"`
	StartTime   TimeOfDay `json:"start_time" binding:"required"`
	EndTime     TimeOfDay `json:"end_time" binding:"required"`
	RoomNumber  *string   `json:"room_number"`
}
