package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/models"
)

func (s *Store) Accounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account

	err := s.withContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

func (s *Store) Account(ctx context.Context, userID, id uuid.UUID) (models.Account, error) {
	var account models.Account

	err := s.withContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&account).Error
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	if err := s.withContext(ctx).Create(account).Error; err != nil {
		return err
	}

	s.publish(account.UserID, Accounts)
	return nil
}

func (s *Store) Categories(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category

	err := s.withContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := s.withContext(ctx).Create(category).Error; err != nil {
		return err
	}

	s.publish(category.UserID, Categories)
	return nil
}

// CategoryNames maps the category ids of the user to their names.
func (s *Store) CategoryNames(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]string, error) {
	categories, err := s.Categories(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (s *Store) Goals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal

	err := s.withContext(ctx).Where("user_id = ?", userID).Order("target_date ASC, name ASC").Find(&goals).Error
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (s *Store) Goal(ctx context.Context, userID, id uuid.UUID) (models.Goal, error) {
	var goal models.Goal

	err := s.withContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

func (s *Store) CreateGoal(ctx context.Context, goal *models.Goal) error {
	if err := s.withContext(ctx).Create(goal).Error; err != nil {
		return err
	}

	s.publish(goal.UserID, Goals)
	return nil
}
