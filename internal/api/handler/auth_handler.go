package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quillstack/blog-api/internal/api/metrics"
	"github.com/quillstack/blog-api/internal/core/domain"
	"github.com/quillstack/blog-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// authFailure renders the envelope every failed auth call returns: a message
// and isAuthenticated=false with a 400 status.
func authFailure(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, authEnvelope{
		Message:         msg,
		IsAuthenticated: false,
	})
}

// Register creates a new account and returns the auth envelope.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/Authenticator/RegisterAsync [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return authFailure(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return authFailure(c, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return authFailure(c, fmt.Sprintf("%s is already registered", req.Email))
		case errors.Is(err, domain.ErrUsernameTaken):
			return authFailure(c, fmt.Sprintf("%s is already taken, please try another name", req.Username))
		case errors.Is(err, domain.ErrPasswordMismatch):
			return authFailure(c, domain.ErrPasswordMismatch.Error())
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserExists):
			return authFailure(c, fmt.Sprintf("failed to register: %v", err))
		}
		return err
	}

	metrics.UsersRegisteredTotal.Inc()

	return c.JSON(http.StatusOK, authEnvelope{
		Message:         "user registered successfully",
		IsAuthenticated: true,
		Username:        result.Username,
		Email:           result.Email,
		Roles:           result.Roles,
		Token:           result.Token,
		ExpirationDate:  result.ExpiresAt,
	})
}

// Login authenticates a user and returns roles, token and expiry.
//
// The failure message is identical for unknown email and wrong password so
// the response never reveals which check failed.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/Authenticator/LoginAsync [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return authFailure(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return authFailure(c, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return authFailure(c, "Email or Password is incorrect")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Roles:          result.Roles,
		Token:          result.Token,
		ExpirationDate: result.ExpiresAt,
	})
}
