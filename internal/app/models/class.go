package models

// Class represents a class/grade offering for an academic year based on the
// 'classes' table
type Class struct {
	ClassID      int64   `json:"class_id"`
	ClassName    string  `json:"class_name" binding:"required"`
	Section      *string `json:"section"`
	AcademicYear string  `json:"academic_year" binding:"required"`
}
