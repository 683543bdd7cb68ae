package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
	"gorm.io/gorm/clause"
)

// TransactionFilter restricts the ledger entries returned by Transactions.
// Zero values do not filter.
type TransactionFilter struct {
	Month      types.Month
	From       types.Date
	Until      types.Date
	Kind       types.EntryKind
	CategoryID uuid.UUID
	AccountID  uuid.UUID
	ScheduleID uuid.UUID
}

// Transactions returns the ledger entries of the user ordered by date, newest first.
func (s *Store) Transactions(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]models.Transaction, error) {
	query := s.withContext(ctx).Where("user_id = ?", userID)

	if !filter.Month.IsZero() {
		query = query.Where("date >= ? AND date < ?", filter.Month.FirstDay(), filter.Month.AddDate(0, 1).FirstDay())
	}

	if !filter.From.IsZero() {
		query = query.Where("date >= ?", filter.From)
	}

	if !filter.Until.IsZero() {
		query = query.Where("date <= ?", filter.Until)
	}

	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}

	if filter.CategoryID != uuid.Nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	if filter.AccountID != uuid.Nil {
		query = query.Where("account_id = ?", filter.AccountID)
	}

	if filter.ScheduleID != uuid.Nil {
		query = query.Where("schedule_id = ?", filter.ScheduleID)
	}

	var transactions []models.Transaction
	if err := query.Order("date DESC, created_at DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}

	return transactions, nil
}

func (s *Store) Transaction(ctx context.Context, userID, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction

	err := s.withContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

func (s *Store) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	if err := s.withContext(ctx).Create(transaction).Error; err != nil {
		return err
	}

	s.publish(transaction.UserID, Transactions)
	return nil
}

// PutTransaction writes the ledger entry with its ID, replacing any
// existing entry with the same ID.
func (s *Store) PutTransaction(ctx context.Context, transaction *models.Transaction) error {
	err := s.withContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(transactionColumns),
		}).
		Create(transaction).Error
	if err != nil {
		return err
	}

	s.publish(transaction.UserID, Transactions)
	return nil
}

// transactionColumns are the columns replaced when a ledger entry is put again.
// created_at is kept.
var transactionColumns = []string{
	"updated_at", "user_id", "amount", "kind", "category_id", "sub_category", "tags",
	"account_id", "date", "note", "schedule_id", "transfer_id", "goal_id",
}

func (s *Store) UpdateTransaction(ctx context.Context, transaction *models.Transaction) error {
	err := s.withContext(ctx).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		First(&models.Transaction{}).Error
	if err != nil {
		return err
	}

	if err := s.withContext(ctx).Omit("created_at").Save(transaction).Error; err != nil {
		return err
	}

	s.publish(transaction.UserID, Transactions)
	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	res := s.withContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return notFound("transaction")
	}

	s.publish(userID, Transactions)
	return nil
}

// ExpensesByCategory returns the sum of the user's expenses in the month per
// category. Transfers between the user's accounts are not spending and are
// left out.
func (s *Store) ExpensesByCategory(ctx context.Context, userID uuid.UUID, month types.Month) (map[uuid.UUID]decimal.Decimal, error) {
	expenses, err := s.Transactions(ctx, userID, TransactionFilter{Month: month, Kind: types.Expense})
	if err != nil {
		return nil, err
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range expenses {
		if e.TransferID != nil {
			continue
		}
		sums[e.CategoryID] = sums[e.CategoryID].Add(e.Amount)
	}

	return sums, nil
}
