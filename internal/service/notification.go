package service

import (
	"context"

	"lsbets/internal/models"
)

// NotificationService fronts the per-user notification feed for handlers.
// Ledger-affecting services append through the store directly.
type NotificationService struct {
	store NotificationStore
}

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

func (s *NotificationService) List(ctx context.Context, userID, characterID uint, limit, offset int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListByOwner(ctx, userID, characterID, limit, offset)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID, characterID uint) error {
	return s.store.MarkRead(ctx, id, userID, characterID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID, characterID uint) error {
	return s.store.MarkAllRead(ctx, userID, characterID)
}
