package services

import (
	"context"

	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	repository "taskhub.com/taskhub/internal/repositories"
)

type PreferenceService struct {
	preferences *repository.PreferenceRepository
}

func NewPreferenceService(preferences *repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{preferences: preferences}
}

func (s *PreferenceService) Get(ctx context.Context, actor *model.User) (*model.Preference, error) {
	return s.preferences.FindByUser(ctx, actor.ID)
}

func (s *PreferenceService) UpdateDeliveryHour(ctx context.Context, actor *model.User, hour int) error {
	if hour < 0 || hour > 23 {
		return apperrors.NewValidation("Notification delivery hour must be between 0 and 23")
	}
	return s.preferences.UpdateDeliveryHour(ctx, actor.ID, hour)
}
