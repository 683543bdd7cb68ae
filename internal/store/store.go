// Package store persists the per-user collections and publishes a
// change to the hub after every committed write.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/models"
	"gorm.io/gorm"
)

type Store struct {
	db  *gorm.DB
	hub *Hub
}

func New(db *gorm.DB, hub *Hub) *Store {
	if hub == nil {
		hub = NewHub()
	}

	return &Store{db: db, hub: hub}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Hub() *Hub {
	return s.hub
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) publish(userID uuid.UUID, collections ...Collection) {
	for _, c := range collections {
		s.hub.Publish(Change{UserID: userID, Collection: c})
	}
}

func (s *Store) withContext(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// notFound returns the error for a resource of the user that does not exist.
func notFound(name string) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, name)
}

// Users returns the ids of all users that own schedules or budgets.
func (s *Store) Users(ctx context.Context) ([]uuid.UUID, error) {
	var scheduleUsers, budgetUsers []uuid.UUID

	err := s.withContext(ctx).Model(&models.RecurringSchedule{}).Distinct().Pluck("user_id", &scheduleUsers).Error
	if err != nil {
		return nil, err
	}

	err = s.withContext(ctx).Model(&models.Budget{}).Distinct().Pluck("user_id", &budgetUsers).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(scheduleUsers)+len(budgetUsers))
	users := make([]uuid.UUID, 0, len(scheduleUsers)+len(budgetUsers))
	for _, id := range append(scheduleUsers, budgetUsers...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		users = append(users, id)
	}

	return users, nil
}

// DeleteUserData deletes all resources of the user.
func (s *Store) DeleteUserData(ctx context.Context, userID uuid.UUID) error {
	tables := []struct {
		model      any
		collection Collection
	}{
		{&models.Notification{}, Notifications},
		{&models.BudgetAlert{}, BudgetAlerts},
		{&models.Budget{}, Budgets},
		{&models.BillReminder{}, BillReminders},
		{&models.Transaction{}, Transactions},
		{&models.RecurringSchedule{}, Schedules},
		{&models.Goal{}, Goals},
		{&models.Category{}, Categories},
		{&models.Account{}, Accounts},
		{&models.Settings{}, SettingsDoc},
	}

	err := s.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range tables {
			if err := tx.Where("user_id = ?", userID).Delete(t.model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, t := range tables {
		s.publish(userID, t.collection)
	}
	return nil
}
