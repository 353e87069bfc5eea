package models

// DefaultNotificationDeliveryHour is assigned to every new preference row.
const DefaultNotificationDeliveryHour = 18

type Preference struct {
	ID                       string `gorm:"primaryKey;size:36" json:"id"`
	UserID                   string `gorm:"size:36;not null;uniqueIndex" json:"user_id"`
	NotificationDeliveryHour int    `gorm:"not null" json:"notification_delivery_hour"`
}
