package handler

import "time"

type registerRequest struct {
	Username        string `json:"username"        validate:"required,min=3"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authEnvelope is the registration response. Field names are part of the
// public JSON contract and must not change.
type authEnvelope struct {
	Message         string    `json:"message"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	Username        string    `json:"username,omitempty"`
	Email           string    `json:"email,omitempty"`
	Roles           []string  `json:"roles,omitempty"`
	Token           string    `json:"token,omitempty"`
	ExpirationDate  time.Time `json:"expirationDate,omitzero"`
}

// loginResponse is the trimmed login payload: roles, token and expiry only.
type loginResponse struct {
	Roles          []string  `json:"roles"`
	Token          string    `json:"token"`
	ExpirationDate time.Time `json:"expirationDate"`
}
