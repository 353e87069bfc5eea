package services

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "taskhub.com/taskhub/internal/errors"
	repository "taskhub.com/taskhub/internal/repositories"
)

func TestCommentCreateRequiresParticipation(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifier := NewNotifierService(newMockTokenManager(10), notificationRepo, 1, 10)
	defer notifier.Shutdown(context.Background())

	users := NewUserService(userRepo)
	tasks := NewTaskService(taskRepo, userRepo, commentRepo, notifier)
	comments := NewCommentService(commentRepo, taskRepo, notifier)

	ctx := context.Background()
	creator := createTestUser(t, users, "creator")
	assignee := createTestUser(t, users, "assignee")
	stranger := createTestUser(t, users, "stranger")

	task, err := tasks.Create(ctx, creator, "Learn Go", assignee.ID)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if _, err := comments.Create(ctx, stranger, task.ID, "drive-by"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("stranger comment should be denied, got %v", err)
	}

	if _, err := comments.Create(ctx, assignee, task.ID, ""); err == nil {
		t.Error("blank comment should fail validation")
	}

	comment, err := comments.Create(ctx, assignee, task.ID, "on it")
	if err != nil {
		t.Fatalf("assignee comment failed: %v", err)
	}
	if comment.TaskID != task.ID || comment.UserID != assignee.ID {
		t.Errorf("comment should reference task and author, got %+v", comment)
	}

	// The creator is notified about the assignee's comment.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		notifications, err := notificationRepo.ListByUser(ctx, creator.ID)
		if err == nil && len(notifications) > 0 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("creator was not notified about the comment")
}
