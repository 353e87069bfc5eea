package services

import (
	"context"
	"errors"
	"fmt"

	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	"taskhub.com/taskhub/internal/policy"
	repository "taskhub.com/taskhub/internal/repositories"
	"taskhub.com/taskhub/internal/slug"
)

const titleMaxLength = 50

type TaskService struct {
	tasks    *repository.TaskRepository
	users    *repository.UserRepository
	comments *repository.CommentRepository
	notifier *NotifierService
}

func NewTaskService(
	tasks *repository.TaskRepository,
	users *repository.UserRepository,
	comments *repository.CommentRepository,
	notifier *NotifierService,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		users:    users,
		comments: comments,
		notifier: notifier,
	}
}

// Create validates the title, resolves the assignee and inserts the task
// with its derived slug. The assignee is notified best-effort.
func (s *TaskService) Create(ctx context.Context, actor *model.User, title, assigneeID string) (*model.Task, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	if assigneeID == "" {
		assigneeID = actor.ID
	}
	if _, err := s.users.FindByID(ctx, assigneeID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewValidation("User must exist")
		}
		return nil, err
	}

	task, err := s.tasks.Create(ctx, title, actor.ID, assigneeID)
	if err != nil {
		return nil, err
	}

	if assigneeID != actor.ID {
		s.notify(ctx, assigneeID, task.ID, fmt.Sprintf("%s assigned you the task %q", actor.Name, task.Title))
	}

	return task, nil
}

// List splits the actor's visible tasks into pending and completed, each in
// presentation order, with assignees embedded on the pending entries.
func (s *TaskService) List(ctx context.Context, actor *model.User) (*dto.TaskListingResponse, error) {
	visible, err := s.tasks.ListVisible(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	pending := policy.InOrderOf(visible, model.ProgressPending)
	completed := policy.InOrderOf(visible, model.ProgressCompleted)

	pendingEntries := make([]dto.TaskWithAssignee, 0, len(pending))
	for _, task := range pending {
		assignee, err := s.users.FindByID(ctx, task.UserID)
		if err != nil {
			return nil, err
		}
		pendingEntries = append(pendingEntries, dto.TaskWithAssignee{
			Task: task,
			User: dto.NewUserSummary(assignee),
		})
	}

	if completed == nil {
		completed = []model.Task{}
	}

	return &dto.TaskListingResponse{
		Tasks: dto.TaskListing{
			Pending:   pendingEntries,
			Completed: completed,
		},
	}, nil
}

// Show returns a task with its assignee, creator name and comments. Only
// the creator and the assignee may view a task.
func (s *TaskService) Show(ctx context.Context, actor *model.User, taskSlug string) (*dto.TaskDetailResponse, error) {
	task, err := s.tasks.FindBySlug(ctx, taskSlug)
	if err != nil {
		return nil, err
	}

	if !policy.CanView(policy.RoleFor(task, actor.ID)) {
		return nil, apperrors.ErrPermissionDenied
	}

	assignee, err := s.users.FindByID(ctx, task.UserID)
	if err != nil {
		return nil, err
	}
	creator, err := s.users.FindByID(ctx, task.CreatorID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	return &dto.TaskDetailResponse{
		Task:         task,
		AssignedUser: dto.NewUserSummary(assignee),
		TaskCreator:  creator.Name,
		Comments:     comments,
	}, nil
}

// Update applies a partial update. The authorization rule runs against the
// set of fields present in the payload, strictly before anything is
// written; a payload carrying the slug key fails validation outright.
func (s *TaskService) Update(ctx context.Context, actor *model.User, taskSlug string, params dto.TaskParams) error {
	task, err := s.tasks.FindBySlug(ctx, taskSlug)
	if err != nil {
		return err
	}

	requested := params.FieldNames()
	role := policy.RoleFor(task, actor.ID)
	if policy.RestrictedRequested(requested) && role != policy.RoleCreator {
		return apperrors.ErrRestrictedAttributes
	}
	if role == policy.RoleNone || !policy.CanUpdate(role, requested) {
		return apperrors.ErrPermissionDenied
	}

	if params.Slug != nil {
		return apperrors.NewValidation("Slug is immutable")
	}

	fields, err := s.updateFields(ctx, params)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.tasks.Update(ctx, task.ID, fields); err != nil {
		return err
	}

	if params.UserID != nil && *params.UserID != task.UserID && *params.UserID != actor.ID {
		s.notify(ctx, *params.UserID, task.ID, fmt.Sprintf("%s assigned you the task %q", actor.Name, task.Title))
	}

	return nil
}

// updateFields validates the present fields and maps them to columns.
func (s *TaskService) updateFields(ctx context.Context, params dto.TaskParams) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if params.Title != nil {
		if err := validateTitle(*params.Title); err != nil {
			return nil, err
		}
		fields["title"] = *params.Title
	}
	if params.UserID != nil {
		if _, err := s.users.FindByID(ctx, *params.UserID); err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return nil, apperrors.NewValidation("User must exist")
			}
			return nil, err
		}
		fields["user_id"] = *params.UserID
	}
	if params.Progress != nil {
		progress := model.TaskProgress(*params.Progress)
		if !progress.Valid() {
			return nil, apperrors.NewValidation("Progress is not included in the list")
		}
		fields["progress"] = progress
	}
	if params.Status != nil {
		status := model.TaskStatus(*params.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidation("Status is not included in the list")
		}
		fields["status"] = status
	}

	return fields, nil
}

// Destroy removes a task and its comments. Creator only.
func (s *TaskService) Destroy(ctx context.Context, actor *model.User, taskSlug string) error {
	task, err := s.tasks.FindBySlug(ctx, taskSlug)
	if err != nil {
		return err
	}

	if !policy.CanDestroy(policy.RoleFor(task, actor.ID)) {
		return apperrors.ErrPermissionDenied
	}

	return s.tasks.Delete(ctx, task.ID)
}

func (s *TaskService) notify(ctx context.Context, recipientID, taskID, event string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, recipientID, taskID, event)
}

func validateTitle(title string) error {
	if title == "" {
		return apperrors.NewValidation("Title can't be blank")
	}
	if len(title) > titleMaxLength {
		return apperrors.NewValidation("Title is too long (maximum is 50 characters)")
	}
	if slug.Parameterize(title) == "" {
		return apperrors.NewValidation("Title must contain at least one letter or digit")
	}
	return nil
}
