package models

// Family represents a household record based on the 'families' table
type Family struct {
	FamilyID      int64   `json:"family_id"`
	FamilyName    string  `json:"family_name" binding:"required"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
}
