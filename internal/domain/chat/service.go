package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyMessage is returned by Send when the message is blank.
var ErrEmptyMessage = errors.New("message is empty")

// Service implements the per-patient chat thread.
type Service struct {
	messages Repository
}

func NewService(messages Repository) *Service {
	return &Service{messages: messages}
}

// History returns the full thread for one patient, oldest first. Callers are
// expected to have verified patient ownership already.
func (s *Service) History(ctx context.Context, ownerID, patientID uuid.UUID) ([]*Message, error) {
	return s.messages.ListByPatient(ctx, ownerID, patientID)
}

// Send appends the user's message followed by the assistant reply and
// returns the assistant message. The two inserts are not transactional; if
// the second fails the user message stays, which reads as an unanswered
// turn in the history.
func (s *Service) Send(ctx context.Context, ownerID, patientID uuid.UUID, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	userMsg := &Message{
		UserID:    ownerID,
		PatientID: patientID,
		Role:      RoleUser,
		Content:   content,
	}
	if err := s.messages.Insert(ctx, userMsg); err != nil {
		return nil, err
	}

	reply := &Message{
		UserID:    ownerID,
		PatientID: patientID,
		Role:      RoleAssistant,
		Content:   AssistantReply,
	}
	if err := s.messages.Insert(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}
