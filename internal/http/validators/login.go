package validators

import (
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func ValidateLoginRequest(r *dto.LoginRequest) error {
	var messages []string

	if r.Login.Email == "" {
		messages = append(messages, "Email can't be blank")
	}
	if r.Login.Password == "" {
		messages = append(messages, "Password can't be blank")
	}

	if len(messages) > 0 {
		return apperrors.NewValidation(messages...)
	}
	return nil
}
