// Package ledger writes operations that consist of several documents and
// must be applied completely or not at all.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/store"
	"github.com/tally-finance/backend/internal/types"
)

var (
	ErrSameAccount       = errors.New("source and destination account of a transfer must be different")
	ErrAccountArchived   = errors.New("archived accounts cannot be used for transfers")
	ErrGoalArchived      = errors.New("archived goals cannot be funded")
	ErrAmountNotPositive = errors.New("the amount must be positive")
)

type Ledger struct {
	store *store.Store
}

func New(s *store.Store) *Ledger {
	return &Ledger{store: s}
}

// Transfer moves money between two accounts of a user.
type Transfer struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Date          types.Date
	Note          string
}

// Transfer writes the outgoing and the incoming entry of the transfer with
// a shared transfer id.
func (l *Ledger) Transfer(ctx context.Context, userID uuid.UUID, t Transfer) ([]models.Transaction, error) {
	if !t.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	if t.FromAccountID == t.ToAccountID {
		return nil, ErrSameAccount
	}

	transferID := uuid.New()
	var entries []models.Transaction

	err := l.store.Batch(ctx, userID, func(b *store.Batch) error {
		from, err := b.Account(t.FromAccountID)
		if err != nil {
			return err
		}

		to, err := b.Account(t.ToAccountID)
		if err != nil {
			return err
		}

		if from.Archived || to.Archived {
			return ErrAccountArchived
		}

		note := strings.TrimSpace(t.Note)
		if note == "" {
			note = fmt.Sprintf("Transfer from %s to %s", from.Name, to.Name)
		}

		outgoing := models.Transaction{
			Amount:     t.Amount,
			Kind:       types.Expense,
			AccountID:  &from.ID,
			Date:       t.Date,
			Note:       note,
			TransferID: &transferID,
		}
		incoming := outgoing
		incoming.Kind = types.Income
		incoming.AccountID = &to.ID

		for _, entry := range []*models.Transaction{&outgoing, &incoming} {
			if err := b.CreateTransaction(entry); err != nil {
				return err
			}
		}

		entries = []models.Transaction{outgoing, incoming}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("user", userID.String()).Str("transfer", transferID.String()).Msg("Transfer written")
	return entries, nil
}

// Contribution adds money to a goal.
type Contribution struct {
	Amount    decimal.Decimal
	AccountID *uuid.UUID // The account the money is taken from, if any
	Date      types.Date
	Note      string
}

// FundGoal writes an expense entry for the contribution and adds it to the
// saved amount of the goal.
func (l *Ledger) FundGoal(ctx context.Context, userID, goalID uuid.UUID, c Contribution) (models.Goal, models.Transaction, error) {
	if !c.Amount.IsPositive() {
		return models.Goal{}, models.Transaction{}, ErrAmountNotPositive
	}

	var (
		goal  models.Goal
		entry models.Transaction
	)

	err := l.store.Batch(ctx, userID, func(b *store.Batch) error {
		current, err := b.Goal(goalID)
		if err != nil {
			return err
		}

		if current.Archived {
			return ErrGoalArchived
		}

		if c.AccountID != nil && *c.AccountID != uuid.Nil {
			if _, err := b.Account(*c.AccountID); err != nil {
				return err
			}
		}

		note := strings.TrimSpace(c.Note)
		if note == "" {
			note = fmt.Sprintf("Contribution to %s", current.Name)
		}

		entry = models.Transaction{
			Amount:    c.Amount,
			Kind:      types.Expense,
			AccountID: c.AccountID,
			Date:      c.Date,
			Note:      note,
			GoalID:    &current.ID,
		}
		if err := b.CreateTransaction(&entry); err != nil {
			return err
		}

		goal, err = b.AddToGoal(goalID, c.Amount)
		return err
	})
	if err != nil {
		return models.Goal{}, models.Transaction{}, err
	}

	return goal, entry, nil
}
