package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const messageCols = "id, user_id, patient_id, role, content, created_at"

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepoPG returns a Postgres-backed chat message repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Insert(ctx context.Context, m *Message) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return r.pool.QueryRow(ctx, `
		INSERT INTO chat_messages (id, user_id, patient_id, role, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		m.ID, m.UserID, m.PatientID, m.Role, m.Content,
	).Scan(&m.CreatedAt)
}

func (r *repoPG) ListByPatient(ctx context.Context, ownerID, patientID uuid.UUID) ([]*Message, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+messageCols+" FROM chat_messages WHERE user_id = $1 AND patient_id = $2 ORDER BY created_at ASC",
		ownerID, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func scanMessage(row pgx.Row) (*Message, error) {
	var m Message
	if err := row.Scan(&m.ID, &m.UserID, &m.PatientID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
