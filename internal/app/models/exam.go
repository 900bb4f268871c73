package models

// Exam represents a scheduled examination based on the 'exams' table.
// Marks are stored as NUMERIC(6,2) and narrow to float64 at the JSON
// boundary.
type Exam struct {
	ExamID       int64   `json:"exam_id"`
	ExamName     string  `json:"exam_name" binding:"required"`
	ExamDate     Date    `json:"exam_date" binding:"required"`
	ClassID      int64   `json:"class_id" binding:"required"`
	SubjectID    int64   `json:"subject_id" binding:"required"`
	TotalMarks   float64 `json:"total_marks" binding:"required"`
	PassingMarks float64 `json:"passing_marks" binding:"required"`
}

// ExamResult links an exam to a student based on the 'exam_results' table.
// MarksObtained is a pointer so that a legitimate score of zero survives
// the required check.
type ExamResult struct {
	ResultID      int64    `json:"result_id"`
	ExamID        int64    `json:"exam_id" binding:"required"`
	StudentID     int64    `json:"student_id" binding:"required"`
	MarksObtained *float64 `json:"marks_obtained" binding:"required"`
	Grade         *string  `json:"grade"`
	Remarks       *string  `json:"remarks"`
}
