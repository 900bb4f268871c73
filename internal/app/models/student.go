package models

// StudentStatusActive is the default status for newly admitted students.
// Status is free text; no other value is special-cased.
const StudentStatusActive = "active"

// Student defines the student model based on the 'students' table
type Student struct {
	StudentID      int64   `json:"student_id"`
	FamilyID       int64   `json:"family_id" binding:"required"`
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	DateOfBirth    Date    `json:"date_of_birth" binding:"required"`
	Gender         string  `json:"gender" binding:"required"`
	AdmissionDate  Date    `json:"admission_date"`
	CurrentClass   string  `json:"current_class" binding:"required"`
	Section        *string `json:"section"`
	Status         string  `json:"status"`
	ProfilePicture *string `json:"profile_picture"`
}
