package account

import (
	"context"
	"errors"
)

// ErrDuplicateEmail is returned by Create when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// Repository abstracts user persistence.
type Repository interface {
	// Create inserts the user and fills in server-generated fields.
	Create(ctx context.Context, u *User) error
	// GetByEmail returns the user with the given email, or (nil, nil) when
	// no such user exists.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
