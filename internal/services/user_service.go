package services

import (
	"context"
	"strings"

	"taskhub.com/taskhub/internal/auth"
	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	repository "taskhub.com/taskhub/internal/repositories"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Signup creates a user account. The email is lowercased before it is
// stored or checked for uniqueness; the password is hashed; the
// authentication token is generated once and never rotates.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewValidation("Email has already been taken")
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:                name,
		Email:               email,
		PasswordDigest:      digest,
		AuthenticationToken: auth.NewAuthenticationToken(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
