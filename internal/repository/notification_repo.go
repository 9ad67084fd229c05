package repository

import (
	"context"

	"lsbets/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByOwner(ctx context.Context, userID, characterID uint, limit, offset int) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}

// MarkRead is idempotent: re-marking an already-read notification matches
// zero-or-one rows and is not an error.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID, characterID uint) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND character_id = ?", id, userID, characterID).
		Update("read", true).Error
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID, characterID uint) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND character_id = ? AND read = ?", userID, characterID, false).
		Update("read", true).Error
}
