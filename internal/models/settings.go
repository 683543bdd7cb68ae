package models

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings holds the per-user preferences the engines read.
type Settings struct {
	UserID           uuid.UUID `gorm:"primaryKey"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	BillReminderDays []int  `gorm:"serializer:json"` // Days before a due date at which a reminder is sent
	Locale           string                          // BCP 47 language tag used to format amounts in notifications
	Currency         string                          // ISO 4217 currency code used to format amounts in notifications
}

func (s Settings) Self() string {
	return "Settings"
}

func (s *Settings) BeforeSave(_ *gorm.DB) error {
	if s.UserID == uuid.Nil {
		return ErrUserIDMissing
	}

	s.Locale = strings.TrimSpace(s.Locale)
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))

	days, err := NormalizeReminderDays(s.BillReminderDays)
	if err != nil {
		return err
	}
	s.BillReminderDays = days

	return nil
}

// NormalizeReminderDays validates that all lead times are positive and
// returns them sorted and without duplicates.
func NormalizeReminderDays(days []int) ([]int, error) {
	normalized := make([]int, 0, len(days))
	for _, d := range days {
		if d <= 0 {
			return nil, ErrReminderDaysNotPositive
		}
		normalized = append(normalized, d)
	}

	slices.Sort(normalized)
	return slices.Compact(normalized), nil
}
