package models

// Subject represents a taught subject based on the 'subjects' table
type Subject struct {
	SubjectID   int64   `json:"subject_id"`
	SubjectName string  `json:"subject_name" binding:"required"`
	SubjectCode *string `json:"subject_code"`
	Description *string `json:"description"`
}
