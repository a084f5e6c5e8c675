package ports

import (
	"context"
	"time"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthResult is returned on successful registration or login. The transport
// layer wraps it into the response envelope.
type AuthResult struct {
	Username  string
	Email     string
	Roles     []string
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
