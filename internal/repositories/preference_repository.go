package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
)

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) FindByUser(ctx context.Context, userID string) (*model.Preference, error) {
	var preference model.Preference
	err := r.db.WithContext(ctx).First(&preference, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &preference, nil
}

func (r *PreferenceRepository) UpdateDeliveryHour(ctx context.Context, userID string, hour int) error {
	res := r.db.WithContext(ctx).Model(&model.Preference{}).
		Where("user_id = ?", userID).
		Update("notification_delivery_hour", hour)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
