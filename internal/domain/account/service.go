package account

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinicdesk/clinicdesk/internal/platform/auth"
)

const bcryptCost = bcrypt.DefaultCost

// Service implements registration and login on top of a user repository.
type Service struct {
	users  Repository
	secret []byte
}

func NewService(users Repository, secret []byte) *Service {
	return &Service{users: users, secret: secret}
}

// Register hashes the password and creates the user. Returns
// ErrDuplicateEmail when the email is already taken.
func (s *Service) Register(ctx context.Context, email, password, name string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{Email: email, PasswordHash: string(hash)}
	if name != "" {
		u.Name = &name
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and issues a token. Returns (nil, nil) when
// the email is unknown or the password does not match, so callers cannot
// distinguish the two cases.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}

	token, err := auth.IssueToken(s.secret, u.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token: token,
		User:  LoginUser{ID: u.ID, Email: u.Email},
	}, nil
}
