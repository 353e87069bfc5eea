package models

import "time"

type TaskProgress string

type TaskStatus string

const (
	ProgressPending   TaskProgress = "pending"
	ProgressCompleted TaskProgress = "completed"

	StatusUnstarred TaskStatus = "unstarred"
	StatusStarred   TaskStatus = "starred"
)

// RestrictedTaskFields are the task attributes only the creator may change.
var RestrictedTaskFields = []string{"title", "user_id"}

type Task struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	Title     string       `gorm:"size:50;not null" json:"title"`
	Slug      string       `gorm:"uniqueIndex;size:64;not null" json:"slug"`
	CreatorID string       `gorm:"size:36;not null;index" json:"creator_id"`
	UserID    string       `gorm:"size:36;not null;index" json:"user_id"`
	Progress  TaskProgress `gorm:"type:varchar(20);not null;default:pending" json:"progress"`
	Status    TaskStatus   `gorm:"type:varchar(20);not null;default:unstarred" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (p TaskProgress) Valid() bool {
	return p == ProgressPending || p == ProgressCompleted
}

func (s TaskStatus) Valid() bool {
	return s == StatusUnstarred || s == StatusStarred
}
