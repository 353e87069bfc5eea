package services

import (
	"context"
	"errors"
	"strings"

	"taskhub.com/taskhub/internal/auth"
	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	repository "taskhub.com/taskhub/internal/repositories"
)

type SessionService struct {
	users *repository.UserRepository
}

func NewSessionService(users *repository.UserRepository) *SessionService {
	return &SessionService{users: users}
}

// Login verifies the credentials and returns the account. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *SessionService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrIncorrectCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordDigest) {
		return nil, apperrors.ErrIncorrectCredentials
	}

	return user, nil
}
