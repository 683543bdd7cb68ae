package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Settings returns the stored settings of the user. Fields that were never
// set are taken from defaults. A stored empty list of reminder days is kept,
// it disables bill reminders.
func (s *Store) Settings(ctx context.Context, userID uuid.UUID, defaults models.Settings) (models.Settings, error) {
	var settings models.Settings

	err := s.withContext(ctx).Where("user_id = ?", userID).Take(&settings).Error
	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.Settings{}
	} else if err != nil {
		return models.Settings{}, err
	}

	settings.UserID = userID
	if settings.BillReminderDays == nil {
		settings.BillReminderDays = append([]int(nil), defaults.BillReminderDays...)
	}
	if settings.Locale == "" {
		settings.Locale = defaults.Locale
	}
	if settings.Currency == "" {
		settings.Currency = defaults.Currency
	}

	return settings, nil
}

// SaveSettings creates or replaces the settings of the user.
func (s *Store) SaveSettings(ctx context.Context, settings *models.Settings) error {
	err := s.withContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at", "bill_reminder_days", "locale", "currency"}),
		}).
		Create(settings).Error
	if err != nil {
		return err
	}

	s.publish(settings.UserID, SettingsDoc)
	return nil
}
