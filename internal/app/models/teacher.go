package models

// Teacher represents a teaching staff member based on the 'teachers' table
type Teacher struct {
	TeacherID      int64   `json:"teacher_id"`
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Qualification  *string `json:"qualification"`
	Specialization *string `json:"specialization"`
	JoiningDate    Date    `json:"joining_date"`
}
