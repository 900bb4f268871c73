package models

// User is a staff/operator identity based on the 'users' table. It is
// referenced by fee_payments.received_by and attendance.recorded_by; no
// endpoint enforces identity.
//
// Password carries the plain-text password on create/update requests only;
// the service hashes it into PasswordHash and neither field is ever
// serialized in responses.
type User struct {
	UserID       int64   `json:"user_id"`
	Username     string  `json:"username" binding:"required"`
	Password     string  `json:"password,omitempty" binding:"required"`
	PasswordHash string  `json:"-"`
	Role         string  `json:"role" binding:"required"`
	FullName     string  `json:"full_name" binding:"required"`
	Email        *string `json:"email"`
}
