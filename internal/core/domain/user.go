package domain

import (
	"errors"
	"time"
)

// RoleUser is the default role granted to every account at registration.
const RoleUser = "User"

// RoleAdmin is reserved for operators; never self-assignable.
const RoleAdmin = "Admin"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrEmailTaken = errors.New("email already registered")
var ErrUsernameTaken = errors.New("username already taken")
var ErrPasswordMismatch = errors.New("password and confirmation do not match")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered author.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
