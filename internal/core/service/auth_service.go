package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quillstack/blog-api/internal/core/domain"
	"github.com/quillstack/blog-api/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// AuthService implements registration and login.
type AuthService struct {
	repo        ports.UserRepository
	jwtSecret   string
	jwtIssuer   string
	jwtAudience string
	tokenTTL    time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret, jwtIssuer, jwtAudience string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		repo:        repo,
		jwtSecret:   jwtSecret,
		jwtIssuer:   jwtIssuer,
		jwtAudience: jwtAudience,
		tokenTTL:    tokenTTL,
	}
}

// Register creates a new account with the default "User" role and returns a
// freshly issued token. Uniqueness of email and username is checked up front;
// the unique indexes on the store close the race.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddToRole(ctx, created.ID, domain.RoleUser); err != nil {
		return nil, err
	}

	roles := []string{domain.RoleUser}
	token, expiresAt, err := s.generateToken(created, roles)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{
		Username:  created.Username,
		Email:     created.Email,
		Roles:     roles,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Login verifies the credentials and issues a token over the user's current
// roles. Unknown email and wrong password fail identically so the response
// never reveals which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.generateToken(user, user.Roles)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{
		Username:  user.Username,
		Email:     user.Email,
		Roles:     user.Roles,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// generateToken signs an HS256 token carrying the user identity and one roles
// entry per role. The uid claim is what the auth middleware hands to handlers
// as the caller id.
func (s *AuthService) generateToken(user *domain.User, roles []string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)

	claims := jwt.MapClaims{
		"sub":   user.Username,
		"jti":   uuid.NewString(),
		"email": user.Email,
		"uid":   user.ID,
		"roles": roles,
		"iss":   s.jwtIssuer,
		"aud":   s.jwtAudience,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
