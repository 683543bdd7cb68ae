package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Batch is a set of writes for one user that are committed together.
type Batch struct {
	tx      *gorm.DB
	userID  uuid.UUID
	touched map[Collection]bool
}

// Batch runs fn in a database transaction. If fn returns an error, none of
// its writes are committed. Changes are published after the commit.
func (s *Store) Batch(ctx context.Context, userID uuid.UUID, fn func(b *Batch) error) error {
	touched := make(map[Collection]bool)

	err := s.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Batch{tx: tx, userID: userID, touched: touched})
	})
	if err != nil {
		return err
	}

	for c := range touched {
		s.publish(userID, c)
	}
	return nil
}

// CreateTransaction adds a ledger entry for the user of the batch.
func (b *Batch) CreateTransaction(transaction *models.Transaction) error {
	transaction.UserID = b.userID
	if err := b.tx.Create(transaction).Error; err != nil {
		return err
	}

	b.touched[Transactions] = true
	return nil
}

func (b *Batch) Account(id uuid.UUID) (models.Account, error) {
	var account models.Account

	err := b.tx.Where("id = ? AND user_id = ?", id, b.userID).First(&account).Error
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// Goal reads the goal and locks it until the batch is committed, so that
// concurrent batches funding the same goal are serialized.
func (b *Batch) Goal(id uuid.UUID) (models.Goal, error) {
	var goal models.Goal

	err := lockGoal(b.tx, b.userID, id).First(&goal).Error
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// lockGoal selects the goal for update. SQLite has no row locks, its write
// transactions are serialized by the database lock.
func lockGoal(tx *gorm.DB, userID, id uuid.UUID) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ? AND user_id = ?", id, userID)
}

// AddToGoal adds the amount to the saved amount of the goal and returns
// the updated goal.
func (b *Batch) AddToGoal(id uuid.UUID, amount decimal.Decimal) (models.Goal, error) {
	goal, err := b.Goal(id)
	if err != nil {
		return models.Goal{}, err
	}

	goal.SavedAmount = goal.SavedAmount.Add(amount)
	if err := b.tx.Model(&goal).Update("saved_amount", goal.SavedAmount).Error; err != nil {
		return models.Goal{}, err
	}

	b.touched[Goals] = true
	return goal, nil
}
