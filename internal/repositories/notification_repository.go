package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskhub.com/taskhub/internal/models"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, userID, taskID, event string) (*model.Notification, error) {
	notification := &model.Notification{
		ID:     uuid.NewString(),
		UserID: userID,
		TaskID: taskID,
		Event:  event,
	}

	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}

// ListByUser returns a user's notifications, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}
