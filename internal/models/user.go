package models

import "time"

type User struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	Name                string    `gorm:"size:50;not null" json:"name"`
	Email               string    `gorm:"uniqueIndex;size:50;not null" json:"email"`
	PasswordDigest      string    `gorm:"not null" json:"-"`
	AuthenticationToken string    `gorm:"uniqueIndex;size:36;not null" json:"-"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
