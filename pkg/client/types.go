package client

import "time"

// User is an account as the API returns it.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Patient is a patient record as the API returns it.
type Patient struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	DOB          *string   `json:"dob"`
	MedicalNotes *string   `json:"medical_notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PatientInput carries the writable patient fields. Leave optional fields
// nil to clear them on update.
type PatientInput struct {
	Name         string  `json:"name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	MedicalNotes *string `json:"medical_notes,omitempty"`
}

// PatientList is one page of patients plus the total count.
type PatientList struct {
	Patients []Patient `json:"patients"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

// Message is one chat message.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatThread is a patient's full message history.
type ChatThread struct {
	Patient  Patient   `json:"patient"`
	Messages []Message `json:"messages"`
}
