package budgetalert

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tally-finance/backend/internal/metrics"
	"github.com/tally-finance/backend/internal/models"
)

// Records persists the budget alerts that were sent.
type Records interface {
	HasSentBudgetAlert(ctx context.Context, key models.BudgetAlertKey) (bool, error)

	// RecordBudgetAlert writes the record and reports whether it was
	// created by this call.
	RecordBudgetAlert(ctx context.Context, alert *models.BudgetAlert) (bool, error)

	ForgetBudgetAlert(ctx context.Context, userID uuid.UUID, key models.BudgetAlertKey) error
}

// Notifier delivers a budget alert to the user.
type Notifier interface {
	NotifyBudget(ctx context.Context, status Status, categoryName string) error
}

type Dispatcher struct {
	records  Records
	notifier Notifier
}

func NewDispatcher(records Records, notifier Notifier) *Dispatcher {
	return &Dispatcher{records: records, notifier: notifier}
}

// Dispatch sends the alerts for the statuses.
//
// An exceeded alert is sent once per budget and period. A warning is only
// sent if neither a warning nor an exceeded alert was sent for the period,
// so the severity shown never goes down.
//
// categoryNames maps category ids to the names used in the notification.
func (d *Dispatcher) Dispatch(ctx context.Context, statuses []Status, categoryNames map[uuid.UUID]string) ([]models.BudgetAlert, error) {
	var (
		sent []models.BudgetAlert
		errs []error
	)

	for _, s := range statuses {
		if s.Level == models.AlertNone {
			continue
		}

		alert, err := d.send(ctx, s, categoryName(s.Budget, categoryNames))
		if err != nil {
			log.Error().
				Err(err).
				Str("user", s.Budget.UserID.String()).
				Str("budget", s.Budget.ID.String()).
				Str("period", s.Period.String()).
				Str("level", string(s.Level)).
				Msg("Budget alert failed")

			errs = append(errs, fmt.Errorf("%s alert for budget %s in %s: %w", s.Level, s.Budget.ID, s.Period, err))
			continue
		}

		if alert != nil {
			sent = append(sent, *alert)
		}
	}

	return sent, errors.Join(errs...)
}

// ShouldSend reports whether an alert of the status' level is due, given
// which levels were already sent for the period.
func ShouldSend(level models.AlertLevel, sentWarning, sentExceeded bool) bool {
	switch level {
	case models.AlertExceeded:
		return !sentExceeded
	case models.AlertWarning:
		return !sentWarning && !sentExceeded
	}
	return false
}

func (d *Dispatcher) send(ctx context.Context, s Status, category string) (*models.BudgetAlert, error) {
	sentExceeded, err := d.records.HasSentBudgetAlert(ctx, models.BudgetAlertKey{BudgetID: s.Budget.ID, Level: models.AlertExceeded, Period: s.Period})
	if err != nil {
		return nil, err
	}

	sentWarning := false
	if s.Level == models.AlertWarning && !sentExceeded {
		sentWarning, err = d.records.HasSentBudgetAlert(ctx, models.BudgetAlertKey{BudgetID: s.Budget.ID, Level: models.AlertWarning, Period: s.Period})
		if err != nil {
			return nil, err
		}
	}

	if !ShouldSend(s.Level, sentWarning, sentExceeded) {
		return nil, nil
	}

	alert := models.BudgetAlert{
		UserID:     s.Budget.UserID,
		BudgetID:   s.Budget.ID,
		Level:      s.Level,
		Period:     s.Period,
		Percentage: s.Percentage,
	}

	created, err := d.records.RecordBudgetAlert(ctx, &alert)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, nil
	}

	if err := d.notifier.NotifyBudget(ctx, s, category); err != nil {
		key := models.BudgetAlertKey{BudgetID: alert.BudgetID, Level: alert.Level, Period: alert.Period}
		if ferr := d.records.ForgetBudgetAlert(ctx, alert.UserID, key); ferr != nil {
			return nil, errors.Join(err, fmt.Errorf("releasing alert record: %w", ferr))
		}
		return nil, err
	}

	metrics.BudgetAlertsSent.WithLabelValues(string(s.Level)).Inc()
	log.Info().
		Str("user", s.Budget.UserID.String()).
		Str("budget", s.Budget.ID.String()).
		Str("period", s.Period.String()).
		Str("level", string(s.Level)).
		Msg("Budget alert sent")

	return &alert, nil
}

// AllCategoriesName is the category name used for budgets without a category.
const AllCategoriesName = "All categories"

func categoryName(b models.Budget, names map[uuid.UUID]string) string {
	if b.AllCategories() {
		return AllCategoriesName
	}

	if name, ok := names[*b.CategoryID]; ok && name != "" {
		return name
	}
	return b.Name
}
