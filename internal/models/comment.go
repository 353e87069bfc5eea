package models

import "time"

// Comment belongs to a task and is removed together with it.
type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	TaskID    string    `gorm:"size:36;not null;index" json:"task_id"`
	UserID    string    `gorm:"size:36;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
