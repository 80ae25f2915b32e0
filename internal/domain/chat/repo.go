package chat

import (
	"context"

	"github.com/google/uuid"
)

// Repository abstracts chat message persistence. The log is append-only;
// there is no update or delete.
type Repository interface {
	// Insert appends the message and fills in server-generated fields.
	Insert(ctx context.Context, m *Message) error
	// ListByPatient returns the full thread for one patient, oldest first.
	ListByPatient(ctx context.Context, ownerID, patientID uuid.UUID) ([]*Message, error)
}
