package models

import "time"

// Settings is the moderation and delivery configuration. A single row
// keyed by a well-known id is ever used.
type Settings struct {
	ID                string `gorm:"primaryKey;size:36" json:"id"`
	WebhookURL        string `gorm:"size:500;not null" json:"webhook_url"`
	NotificationEmail string `gorm:"size:255;not null" json:"notification_email"`
	AutoApprove       bool   `gorm:"not null" json:"auto_approve"`
	MinRating         int    `gorm:"not null" json:"min_rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Settings) TableName() string {
	return "settings"
}
