package service

import (
	"context"
	"strings"

	"linkmark/internal/domain"
	"linkmark/internal/repository"
)

// UserService exposes profile operations for authenticated users.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	EditUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) EditUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if email == "" {
			return nil, domain.NewValidationError("email must not be empty")
		}
		patch.Email = &email
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}
