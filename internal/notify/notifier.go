// Package notify records user-facing notifications for bill reminders and
// budget alerts.
package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/budgetalert"
	"github.com/tally-finance/backend/internal/models"
)

// Store persists notifications and provides the settings used to format them.
type Store interface {
	AddNotification(ctx context.Context, n *models.Notification) error
	Settings(ctx context.Context, userID uuid.UUID, defaults models.Settings) (models.Settings, error)
}

// Notifier records notifications in the store.
type Notifier struct {
	store    Store
	defaults models.Settings
}

func New(store Store, defaults models.Settings) *Notifier {
	return &Notifier{store: store, defaults: defaults}
}

func (n *Notifier) settings(ctx context.Context, userID uuid.UUID) models.Settings {
	settings, err := n.store.Settings(ctx, userID, n.defaults)
	if err != nil {
		// Formatting falls back to the defaults
		return n.defaults
	}
	return settings
}

// NotifyBill records a reminder that the schedule is due.
func (n *Notifier) NotifyBill(ctx context.Context, s models.RecurringSchedule, key models.ReminderKey) error {
	settings := n.settings(ctx, s.UserID)
	amount := FormatAmount(s.Amount, settings.Locale, settings.Currency)

	when := fmt.Sprintf("in %d days", key.LeadDays)
	if key.LeadDays == 1 {
		when = "tomorrow"
	}

	return n.store.AddNotification(ctx, &models.Notification{
		UserID:      s.UserID,
		Kind:        models.NotificationBillReminder,
		Title:       fmt.Sprintf("Upcoming bill: %s", s.Name),
		Message:     fmt.Sprintf("%s (%s) is due %s, on %s.", s.Name, amount, when, key.DueDate),
		ReferenceID: s.ID,
	})
}

// NotifyBudget records an alert about the spending of a budget.
func (n *Notifier) NotifyBudget(ctx context.Context, status budgetalert.Status, categoryName string) error {
	settings := n.settings(ctx, status.Budget.UserID)
	spent := FormatAmount(status.Spent, settings.Locale, settings.Currency)
	limit := FormatAmount(status.Budget.Amount, settings.Locale, settings.Currency)

	kind := models.NotificationBudgetWarning
	title := fmt.Sprintf("Budget warning: %s", categoryName)
	if status.Level == models.AlertExceeded {
		kind = models.NotificationBudgetExceeded
		title = fmt.Sprintf("Budget exceeded: %s", categoryName)
	}

	return n.store.AddNotification(ctx, &models.Notification{
		UserID:      status.Budget.UserID,
		Kind:        kind,
		Title:       title,
		Message:     fmt.Sprintf("You have spent %s%% of your %s budget in %s (%s of %s).", status.Percentage.StringFixed(0), categoryName, status.Period, spent, limit),
		ReferenceID: status.Budget.ID,
	})
}
