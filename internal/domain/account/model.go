package account

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the users table. The password hash never serializes.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         *string   `db:"name" json:"name,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// LoginUser is the minimal user projection carried alongside a fresh token.
type LoginUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
