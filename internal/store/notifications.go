package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/models"
)

func (s *Store) AddNotification(ctx context.Context, notification *models.Notification) error {
	if err := s.withContext(ctx).Create(notification).Error; err != nil {
		return err
	}

	s.publish(notification.UserID, Notifications)
	return nil
}

// Notifications returns the notifications of the user, newest first.
func (s *Store) Notifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]models.Notification, error) {
	query := s.withContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkNotificationRead sets the read flag of the notification.
func (s *Store) MarkNotificationRead(ctx context.Context, userID, id uuid.UUID, read bool) (models.Notification, error) {
	var notification models.Notification

	err := s.withContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&notification).Error
	if err != nil {
		return models.Notification{}, err
	}

	notification.Read = read
	if err := s.withContext(ctx).Model(&notification).Update("read", read).Error; err != nil {
		return models.Notification{}, err
	}

	s.publish(userID, Notifications)
	return notification, nil
}
