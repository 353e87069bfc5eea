package validators

import (
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func ValidateCreateCommentRequest(r *dto.CreateCommentRequest) error {
	var messages []string

	if r.Comment.Content == "" {
		messages = append(messages, "Content can't be blank")
	}
	if r.Comment.TaskID == "" {
		messages = append(messages, "Task must exist")
	}

	if len(messages) > 0 {
		return apperrors.NewValidation(messages...)
	}
	return nil
}
