package models

// FeeStructure is a fee template for a class and academic year based on the
// 'fee_structure' table, distinct from an actual payment against it.
type FeeStructure struct {
	FeeID        int64   `json:"fee_id"`
	ClassID      int64   `json:"class_id" binding:"required"`
	FeeName      string  `json:"fee_name" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	Frequency    string  `json:"frequency" binding:"required"`
	AcademicYear string  `json:"academic_year" binding:"required"`
	DueDate      Date    `json:"due_date"`
}

// FeePayment records money received from a family against a fee structure,
// based on the 'fee_payments' table. FamilyID is filled from the route when
// payments are created under /families/{id}/payments.
type FeePayment struct {
	PaymentID            int64   `json:"payment_id"`
	FamilyID             int64   `json:"family_id"`
	FeeID                int64   `json:"fee_id" binding:"required"`
	AmountPaid           float64 `json:"amount_paid" binding:"required"`
	PaymentDate          Date    `json:"payment_date" binding:"required"`
	PaymentMethod        string  `json:"payment_method" binding:"required"`
	TransactionReference *string `json:"transaction_reference"`
	ReceivedBy           int64   `json:"received_by" binding:"required"`
	Remarks              *string `json:"remarks"`
}
