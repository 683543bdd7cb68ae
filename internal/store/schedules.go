package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
	"gorm.io/gorm"
)

// Schedules returns all recurring schedules of the user ordered by their next due date.
func (s *Store) Schedules(ctx context.Context, userID uuid.UUID) ([]models.RecurringSchedule, error) {
	var schedules []models.RecurringSchedule

	err := s.withContext(ctx).
		Where(&models.RecurringSchedule{UserID: userID}).
		Order("next_due_date ASC, name ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	return schedules, nil
}

// DueSchedules returns the active schedules of the user due on or before today.
func (s *Store) DueSchedules(ctx context.Context, userID uuid.UUID, today types.Date) ([]models.RecurringSchedule, error) {
	var schedules []models.RecurringSchedule

	err := s.withContext(ctx).
		Where("user_id = ? AND active = ? AND next_due_date <= ?", userID, true, today).
		Order("next_due_date ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	return schedules, nil
}

func (s *Store) Schedule(ctx context.Context, userID, id uuid.UUID) (models.RecurringSchedule, error) {
	var schedule models.RecurringSchedule

	err := s.withContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&schedule).Error
	if err != nil {
		return models.RecurringSchedule{}, err
	}

	return schedule, nil
}

func (s *Store) CreateSchedule(ctx context.Context, schedule *models.RecurringSchedule) error {
	if err := s.withContext(ctx).Create(schedule).Error; err != nil {
		return err
	}

	s.publish(schedule.UserID, Schedules)
	return nil
}

// UpdateSchedule saves all user-editable fields of the schedule.
//
// The stored next due date is kept. It is only moved forward when the
// start date is moved past it.
func (s *Store) UpdateSchedule(ctx context.Context, schedule *models.RecurringSchedule) error {
	err := s.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.RecurringSchedule
		err := tx.Where("id = ? AND user_id = ?", schedule.ID, schedule.UserID).First(&current).Error
		if err != nil {
			return err
		}

		schedule.CreatedAt = current.CreatedAt
		schedule.NextDueDate = current.NextDueDate

		return tx.Save(schedule).Error
	})
	if err != nil {
		return err
	}

	s.publish(schedule.UserID, Schedules)
	return nil
}

// DeleteSchedule deletes the schedule and its reminder records.
// Ledger entries materialized from it are kept.
func (s *Store) DeleteSchedule(ctx context.Context, userID, id uuid.UUID) error {
	err := s.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.RecurringSchedule{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return notFound("recurring schedule")
		}

		return tx.Where("schedule_id = ? AND user_id = ?", id, userID).Delete(&models.BillReminder{}).Error
	})
	if err != nil {
		return err
	}

	s.publish(userID, Schedules, BillReminders)
	return nil
}

// AdvanceSchedule moves the next due date of the schedule from one date to
// another. It only succeeds if the stored next due date still equals from,
// so that concurrent materializations advance a schedule at most once.
//
// The returned bool is false if the anchor had already moved.
func (s *Store) AdvanceSchedule(ctx context.Context, userID, id uuid.UUID, from, to types.Date) (bool, error) {
	res := s.withContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(&models.RecurringSchedule{}).
		Where("id = ? AND user_id = ? AND next_due_date = ?", id, userID, from).
		Update("next_due_date", to)
	if res.Error != nil {
		return false, res.Error
	}

	if res.RowsAffected == 0 {
		return false, nil
	}

	s.publish(userID, Schedules)
	return true, nil
}
