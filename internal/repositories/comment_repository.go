package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskhub.com/taskhub/internal/models"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, content, taskID, userID string) (*model.Comment, error) {
	comment := &model.Comment{
		ID:      uuid.NewString(),
		Content: content,
		TaskID:  taskID,
		UserID:  userID,
	}

	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByTask returns a task's comments, newest first.
func (r *CommentRepository) ListByTask(ctx context.Context, taskID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) CountByTask(ctx context.Context, taskID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}
