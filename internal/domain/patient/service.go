package patient

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

// ErrNameRequired is returned by Create when the patient name is empty.
var ErrNameRequired = errors.New("patient name is required")

// Service implements owner-scoped patient management.
type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// Create stores a new patient for the owner. Optional fields left empty are
// stored as NULL.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, in Input) (*Patient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	p := &Patient{
		ID:           uuid.New(),
		UserID:       ownerID,
		Name:         name,
		Email:        normalize(in.Email),
		Phone:        normalize(in.Phone),
		DOB:          normalize(in.DOB),
		MedicalNotes: normalize(in.MedicalNotes),
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID returns the owner's patient, or (nil, nil) when it does not exist.
func (s *Service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, ownerID, id)
}

// List returns one page of the owner's patients, newest first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, page, limit int) (*ListResult, error) {
	params := pagination.Clamp(page, limit)

	patients, total, err := s.patients.List(ctx, ownerID, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Patients: patients,
		Total:    total,
		Page:     params.Page,
		Limit:    params.Limit,
	}, nil
}

// Update replaces the patient's writable fields. Fields absent from the
// input become NULL. Returns ErrNotFound when the owner has no patient with
// that id.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, in Input) (*Patient, error) {
	p := &Patient{
		ID:           id,
		UserID:       ownerID,
		Name:         strings.TrimSpace(in.Name),
		Email:        normalize(in.Email),
		Phone:        normalize(in.Phone),
		DOB:          normalize(in.DOB),
		MedicalNotes: normalize(in.MedicalNotes),
	}
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the patient. Returns ErrNotFound when the owner has no
// patient with that id.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.patients.Delete(ctx, ownerID, id)
}

func normalize(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
