package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"linkmark/internal/auth"
	"linkmark/internal/domain"
	"linkmark/internal/repository"
)

// AuthService handles sign-up and sign-in and delegates token minting to the
// token issuer.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	SignToken(userID int64, email string) (string, error)
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	issuer *auth.TokenIssuer
}

func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, issuer *auth.TokenIssuer) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		issuer: issuer,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)

	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, domain.NewValidationError("password is required")
	}
	if len(password) < 8 {
		return nil, domain.NewValidationError("password must be at least 8 characters")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domain.NewValidationError("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", domain.ErrWrongPassword
	}

	return s.SignToken(user.ID, user.Email)
}

func (s *authService) SignToken(userID int64, email string) (string, error) {
	return s.issuer.Sign(userID, email)
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clean := *user
	clean.PasswordHash = ""
	return &clean
}
