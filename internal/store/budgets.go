package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) Budgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget

	err := s.withContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

func (s *Store) Budget(ctx context.Context, userID, id uuid.UUID) (models.Budget, error) {
	var budget models.Budget

	err := s.withContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

func (s *Store) CreateBudget(ctx context.Context, budget *models.Budget) error {
	if err := s.withContext(ctx).Create(budget).Error; err != nil {
		return err
	}

	s.publish(budget.UserID, Budgets)
	return nil
}

func (s *Store) UpdateBudget(ctx context.Context, budget *models.Budget) error {
	current, err := s.Budget(ctx, budget.UserID, budget.ID)
	if err != nil {
		return err
	}
	budget.CreatedAt = current.CreatedAt

	if err := s.withContext(ctx).Save(budget).Error; err != nil {
		return err
	}

	s.publish(budget.UserID, Budgets)
	return nil
}

// DeleteBudget deletes the budget and its alert records.
func (s *Store) DeleteBudget(ctx context.Context, userID, id uuid.UUID) error {
	err := s.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return notFound("budget")
		}

		return tx.Where("budget_id = ? AND user_id = ?", id, userID).Delete(&models.BudgetAlert{}).Error
	})
	if err != nil {
		return err
	}

	s.publish(userID, Budgets, BudgetAlerts)
	return nil
}

// HasSentBudgetAlert reports whether an alert record exists for the key.
func (s *Store) HasSentBudgetAlert(ctx context.Context, key models.BudgetAlertKey) (bool, error) {
	var alert models.BudgetAlert

	err := s.withContext(ctx).Where("id = ?", key.ID()).Take(&alert).Error
	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// RecordBudgetAlert writes the alert record. It returns false if a record
// for the same budget, level and period already existed.
func (s *Store) RecordBudgetAlert(ctx context.Context, alert *models.BudgetAlert) (bool, error) {
	alert.ID = models.BudgetAlertKey{BudgetID: alert.BudgetID, Level: alert.Level, Period: alert.Period}.ID()

	res := s.withContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(alert)
	if res.Error != nil {
		return false, res.Error
	}

	if res.RowsAffected == 0 {
		return false, nil
	}

	s.publish(alert.UserID, BudgetAlerts)
	return true, nil
}

// ForgetBudgetAlert deletes the alert record for the key, so that the alert
// can be sent again.
func (s *Store) ForgetBudgetAlert(ctx context.Context, userID uuid.UUID, key models.BudgetAlertKey) error {
	err := s.withContext(ctx).Where("id = ? AND user_id = ?", key.ID(), userID).Delete(&models.BudgetAlert{}).Error
	if err != nil {
		return err
	}

	s.publish(userID, BudgetAlerts)
	return nil
}

// BudgetAlerts returns the alert records of the user for the period.
func (s *Store) BudgetAlerts(ctx context.Context, userID uuid.UUID, period types.Month) ([]models.BudgetAlert, error) {
	var alerts []models.BudgetAlert

	err := s.withContext(ctx).
		Where("user_id = ? AND period = ?", userID, period).
		Order("created_at ASC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}

	return alerts, nil
}
