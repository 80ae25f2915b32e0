package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Update and Delete when no row matches the
// patient id under the given owner.
var ErrNotFound = errors.New("patient not found")

// Repository abstracts patient persistence. All reads and writes are scoped
// to the owning user.
type Repository interface {
	// Create inserts the patient and fills in server-generated fields.
	Create(ctx context.Context, p *Patient) error
	// GetByID returns the patient, or (nil, nil) when the owner has no
	// patient with that id.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Patient, error)
	// List returns one page of the owner's patients, newest first, plus
	// the total count across all pages.
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Patient, int, error)
	// Update replaces the writable fields of the row matching p.ID and
	// p.UserID, refreshing updated_at. Returns ErrNotFound when no row
	// matches.
	Update(ctx context.Context, p *Patient) error
	// Delete removes the row. Returns ErrNotFound when no row matches.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
