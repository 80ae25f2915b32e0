package chat

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AssistantReply is the fixed response appended after every user message.
// A real model integration would replace this single constant.
const AssistantReply = "Please consult your dentist for proper diagnosis."

// Message is one entry in a patient's chat thread.
type Message struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"-"`
	PatientID uuid.UUID `db:"patient_id" json:"-"`
	Role      string    `db:"role" json:"role"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
