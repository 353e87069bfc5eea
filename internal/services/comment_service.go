package services

import (
	"context"
	"fmt"

	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	"taskhub.com/taskhub/internal/policy"
	repository "taskhub.com/taskhub/internal/repositories"
)

type CommentService struct {
	comments *repository.CommentRepository
	tasks    *repository.TaskRepository
	notifier *NotifierService
}

func NewCommentService(
	comments *repository.CommentRepository,
	tasks *repository.TaskRepository,
	notifier *NotifierService,
) *CommentService {
	return &CommentService{
		comments: comments,
		tasks:    tasks,
		notifier: notifier,
	}
}

// Create adds a comment to a task the actor is party to and notifies the
// other party best-effort.
func (s *CommentService) Create(ctx context.Context, actor *model.User, taskID, content string) (*model.Comment, error) {
	if content == "" {
		return nil, apperrors.NewValidation("Content can't be blank")
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(policy.RoleFor(task, actor.ID)) {
		return nil, apperrors.ErrPermissionDenied
	}

	comment, err := s.comments.Create(ctx, content, task.ID, actor.ID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		event := fmt.Sprintf("%s commented on the task %q", actor.Name, task.Title)
		recipients := map[string]bool{task.CreatorID: true, task.UserID: true}
		for recipient := range recipients {
			if recipient != actor.ID {
				s.notifier.Notify(ctx, recipient, task.ID, event)
			}
		}
	}

	return comment, nil
}
