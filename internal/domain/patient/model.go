package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. Every row belongs to the user that
// created it; the owner id is never serialized.
type Patient struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"-"`
	Name         string    `db:"name" json:"name"`
	Email        *string   `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone"`
	DOB          *string   `db:"dob" json:"dob"`
	MedicalNotes *string   `db:"medical_notes" json:"medical_notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Input carries the writable fields of a patient record. Absent optional
// fields stay nil, so an update replaces the full record.
type Input struct {
	Name         string  `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	DOB          *string `json:"dob"`
	MedicalNotes *string `json:"medical_notes"`
}

// ListResult is one page of patients together with the total row count.
type ListResult struct {
	Patients []*Patient `json:"patients"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	Limit    int        `json:"limit"`
}
