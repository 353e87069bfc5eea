package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	"taskhub.com/taskhub/internal/slug"
)

// slugMaxAttempts bounds how often a create is retried when the unique
// index rejects a slug that a concurrent create took between our probe and
// our insert.
const slugMaxAttempts = 3

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task, assigning the first free slug derived from the
// title. The probe runs inside the insert transaction; the unique index on
// tasks.slug is the backstop for the race two concurrent creates can still
// lose, in which case the probe is retried.
func (r *TaskRepository) Create(ctx context.Context, title, creatorID, assigneeID string) (*model.Task, error) {
	base := slug.Parameterize(title)

	task := &model.Task{
		ID:        uuid.NewString(),
		Title:     title,
		CreatorID: creatorID,
		UserID:    assigneeID,
		Progress:  model.ProgressPending,
		Status:    model.StatusUnstarred,
	}

	for attempt := 0; attempt < slugMaxAttempts; attempt++ {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			assigned, err := nextFreeSlug(tx, base)
			if err != nil {
				return err
			}
			task.Slug = assigned
			return tx.Create(task).Error
		})
		if err == nil {
			return task, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
	}

	return nil, apperrors.NewValidation("Slug has already been taken")
}

func nextFreeSlug(tx *gorm.DB, base string) (string, error) {
	for itr := 1; ; itr++ {
		candidate := slug.Candidate(base, itr)

		var count int64
		err := tx.Model(&model.Task{}).Where("slug = ?", candidate).Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
}

func (r *TaskRepository) FindBySlug(ctx context.Context, taskSlug string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "slug = ?", taskSlug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// ListVisible returns every task the user created or is assigned to, in
// creation order. Presentation ordering is applied by the listing policy.
func (r *TaskRepository) ListVisible(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR creator_id = ?", userID, userID).
		Order("created_at asc").
		Find(&tasks).Error
	return tasks, err
}

// Update applies the given column values. The slug column is never touched
// here; slug immutability is enforced before this point and the column is
// simply not writable through this method.
func (r *TaskRepository) Update(ctx context.Context, taskID string, fields map[string]interface{}) error {
	delete(fields, "slug")
	if len(fields) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// Delete removes a task together with its comments.
func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", taskID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, "id = ?", taskID).Error
	})
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
