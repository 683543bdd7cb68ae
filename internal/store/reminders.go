package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HasSentReminder reports whether a reminder record exists for the key.
func (s *Store) HasSentReminder(ctx context.Context, key models.ReminderKey) (bool, error) {
	var reminder models.BillReminder

	err := s.withContext(ctx).Where("id = ?", key.ID()).Take(&reminder).Error
	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// RecordReminder writes the reminder record for the key. It returns false
// if the record already existed, in which case nothing is written.
func (s *Store) RecordReminder(ctx context.Context, userID uuid.UUID, key models.ReminderKey) (bool, error) {
	reminder := models.BillReminder{
		DefaultModel: models.DefaultModel{ID: key.ID()},
		UserID:       userID,
		ScheduleID:   key.ScheduleID,
		DueDate:      key.DueDate,
		LeadDays:     key.LeadDays,
	}

	res := s.withContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&reminder)
	if res.Error != nil {
		return false, res.Error
	}

	if res.RowsAffected == 0 {
		return false, nil
	}

	s.publish(userID, BillReminders)
	return true, nil
}

// ForgetReminder deletes the reminder record for the key, so that the
// reminder can be sent again.
func (s *Store) ForgetReminder(ctx context.Context, userID uuid.UUID, key models.ReminderKey) error {
	err := s.withContext(ctx).Where("id = ? AND user_id = ?", key.ID(), userID).Delete(&models.BillReminder{}).Error
	if err != nil {
		return err
	}

	s.publish(userID, BillReminders)
	return nil
}

// Reminders returns all reminder records of the user.
func (s *Store) Reminders(ctx context.Context, userID uuid.UUID) ([]models.BillReminder, error) {
	var reminders []models.BillReminder

	err := s.withContext(ctx).Where("user_id = ?", userID).Order("due_date ASC").Find(&reminders).Error
	if err != nil {
		return nil, err
	}

	return reminders, nil
}
