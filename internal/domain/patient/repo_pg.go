package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const patientCols = "id, user_id, name, email, phone, dob, medical_notes, created_at, updated_at"

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepoPG returns a Postgres-backed patient repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (id, user_id, name, email, phone, dob, medical_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		p.ID, p.UserID, p.Name, p.Email, p.Phone, p.DOB, p.MedicalNotes,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Patient, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+patientCols+" FROM patients WHERE id = $1 AND user_id = $2",
		id, ownerID)

	p, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM patients WHERE user_id = $1", ownerID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		"SELECT "+patientCols+" FROM patients WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	patients, err := scanPatientRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE patients
		SET name = $3, email = $4, phone = $5, dob = $6, medical_notes = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at`,
		p.ID, p.UserID, p.Name, p.Email, p.Phone, p.DOB, p.MedicalNotes)

	err := row.Scan(&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *repoPG) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		"DELETE FROM patients WHERE id = $1 AND user_id = $2", id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Email, &p.Phone, &p.DOB,
		&p.MedicalNotes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPatientRows(rows pgx.Rows) ([]*Patient, error) {
	patients := make([]*Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}
