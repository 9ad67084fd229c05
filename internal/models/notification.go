package models

import "time"

type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index:idx_notifications_owner" json:"user_id"`
	CharacterID uint      `gorm:"not null;index:idx_notifications_owner" json:"character_id"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Type        string    `gorm:"size:30;not null;index" json:"type"`
	Read        bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
