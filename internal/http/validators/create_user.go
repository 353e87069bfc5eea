package validators

import (
	"regexp"

	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

const (
	nameMaxLength     = 50
	emailMaxLength    = 50
	passwordMinLength = 6
)

var emailPattern = regexp.MustCompile(`(?i)^([\w+\-].?)+@[a-z\d\-]+(\.[a-z]+)*\.[a-z]+$`)

func ValidateCreateUserRequest(r *dto.CreateUserRequest) error {
	var messages []string

	if r.User.Name == "" {
		messages = append(messages, "Name can't be blank")
	} else if len(r.User.Name) > nameMaxLength {
		messages = append(messages, "Name is too long (maximum is 50 characters)")
	}

	switch {
	case r.User.Email == "":
		messages = append(messages, "Email can't be blank")
	case len(r.User.Email) > emailMaxLength:
		messages = append(messages, "Email is too long (maximum is 50 characters)")
	case !emailPattern.MatchString(r.User.Email):
		messages = append(messages, "Email is invalid")
	}

	if r.User.Password == "" {
		messages = append(messages, "Password can't be blank")
	} else if len(r.User.Password) < passwordMinLength {
		messages = append(messages, "Password is too short (minimum is 6 characters)")
	}

	if r.User.PasswordConfirmation == "" {
		messages = append(messages, "Password confirmation can't be blank")
	} else if r.User.Password != r.User.PasswordConfirmation {
		messages = append(messages, "Password confirmation doesn't match Password")
	}

	if len(messages) > 0 {
		return apperrors.NewValidation(messages...)
	}
	return nil
}
