package models

import "time"

// Notification is a per-user record of a task event, written asynchronously
// by the notifier workers.
type Notification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	TaskID    string    `gorm:"size:36;not null" json:"task_id"`
	Event     string    `gorm:"not null" json:"event"`
	CreatedAt time.Time `json:"created_at"`
}
