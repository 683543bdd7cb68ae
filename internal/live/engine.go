// Package live runs the recurrence, reminder and budget alert engines
// against the current data of a user.
package live

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tally-finance/backend/internal/budgetalert"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/notify"
	"github.com/tally-finance/backend/internal/recurrence"
	"github.com/tally-finance/backend/internal/reminder"
	"github.com/tally-finance/backend/internal/store"
	"github.com/tally-finance/backend/internal/types"
)

type Options struct {
	CatchUp  recurrence.CatchUp
	Defaults models.Settings  // Used for users without stored settings
	Location *time.Location   // Time zone that determines the current date, UTC if nil
	Now      func() time.Time // Current time, time.Now if nil
}

// Engine wires the engines to the store.
type Engine struct {
	store        *store.Store
	materializer *recurrence.Materializer
	reminders    *reminder.Dispatcher
	alerts       *budgetalert.Dispatcher
	defaults     models.Settings
	location     *time.Location
	now          func() time.Time
}

func NewEngine(st *store.Store, opts Options) *Engine {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	notifier := notify.New(st, opts.Defaults)

	return &Engine{
		store:        st,
		materializer: recurrence.NewMaterializer(st, opts.CatchUp),
		reminders:    reminder.NewDispatcher(reminder.NewDeduplicator(st), notifier),
		alerts:       budgetalert.NewDispatcher(st, notifier),
		defaults:     opts.Defaults,
		location:     opts.Location,
		now:          opts.Now,
	}
}

func (e *Engine) Store() *store.Store {
	return e.store
}

// Defaults returns the settings used for users without stored settings.
func (e *Engine) Defaults() models.Settings {
	return e.defaults
}

// Today returns the current calendar date.
func (e *Engine) Today() types.Date {
	return types.DateOf(e.now().In(e.location))
}

// Snapshot is the state of a user after a sync.
type Snapshot struct {
	Today        types.Date
	Period       types.Month
	Schedules    []models.RecurringSchedule
	Settings     models.Settings
	Upcoming     []reminder.UpcomingBill
	Budgets      []budgetalert.Status
	Materialized []models.Transaction // Ledger entries written by the sync
}

// AlertingBudgets returns the budget statuses with an alert level.
func (s Snapshot) AlertingBudgets() []budgetalert.Status {
	return budgetalert.Alerting(s.Budgets)
}

// MaterializationError is returned by Sync when schedules could not be
// materialized. The snapshot is complete nonetheless.
type MaterializationError struct {
	Err error
}

func (e *MaterializationError) Error() string {
	return "materializing schedules: " + e.Err.Error()
}

func (e *MaterializationError) Unwrap() error {
	return e.Err
}

// Partial reports whether err only stems from failed materializations, so
// that the snapshot returned with it is complete.
func Partial(err error) bool {
	_, ok := err.(*MaterializationError)
	return ok
}

// Sync materializes the due schedules of the user and computes the upcoming
// bills and the budget statuses for the current month.
//
// Materialization failures are returned, but do not prevent the rest of the
// snapshot from being computed.
func (e *Engine) Sync(ctx context.Context, userID uuid.UUID) (Snapshot, error) {
	today := e.Today()
	snapshot := Snapshot{
		Today:  today,
		Period: today.Month(),
	}

	schedules, err := e.store.Schedules(ctx, userID)
	if err != nil {
		return snapshot, fmt.Errorf("loading schedules: %w", err)
	}

	result, err := e.materializer.MaterializeDue(ctx, schedules, today)
	var materializeErr error
	if err != nil {
		materializeErr = &MaterializationError{Err: err}
	}
	snapshot.Materialized = result.Entries
	if len(result.Advanced) > 0 {
		schedules, err = e.store.Schedules(ctx, userID)
		if err != nil {
			return snapshot, errors.Join(materializeErr, fmt.Errorf("reloading schedules: %w", err))
		}
	}
	snapshot.Schedules = schedules

	snapshot.Settings, err = e.store.Settings(ctx, userID, e.defaults)
	if err != nil {
		return snapshot, errors.Join(materializeErr, fmt.Errorf("loading settings: %w", err))
	}

	records, err := e.store.Reminders(ctx, userID)
	if err != nil {
		return snapshot, errors.Join(materializeErr, fmt.Errorf("loading reminders: %w", err))
	}
	snapshot.Upcoming = reminder.Upcoming(schedules, snapshot.Settings.BillReminderDays, today, reminder.SentIn(records))

	budgets, err := e.store.Budgets(ctx, userID)
	if err != nil {
		return snapshot, errors.Join(materializeErr, fmt.Errorf("loading budgets: %w", err))
	}

	expenses, err := e.store.ExpensesByCategory(ctx, userID, snapshot.Period)
	if err != nil {
		return snapshot, errors.Join(materializeErr, fmt.Errorf("loading expenses: %w", err))
	}
	snapshot.Budgets = budgetalert.Evaluate(budgets, expenses, snapshot.Period)

	return snapshot, materializeErr
}

// SendReminders sends the bill reminders that fire today.
func (e *Engine) SendReminders(ctx context.Context, snapshot Snapshot) ([]models.ReminderKey, error) {
	return e.reminders.Dispatch(ctx, snapshot.Schedules, snapshot.Settings.BillReminderDays, snapshot.Today)
}

// SendAlerts sends the budget alerts that were not sent in the period yet.
// Budgets are named after their category in categoryNames.
func (e *Engine) SendAlerts(ctx context.Context, snapshot Snapshot, categoryNames map[uuid.UUID]string) ([]models.BudgetAlert, error) {
	return e.alerts.Dispatch(ctx, snapshot.Budgets, categoryNames)
}

// SweepResult counts what a sweep did.
type SweepResult struct {
	Users     int
	Entries   int
	Reminders int
	Alerts    int
}

// Sweep syncs every user and sends their reminders and alerts. A failure
// for one user does not stop the sweep.
func (e *Engine) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	users, err := e.store.Users(ctx)
	if err != nil {
		return result, fmt.Errorf("loading users: %w", err)
	}

	var errs []error
	for _, userID := range users {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if err := e.sweepUser(ctx, userID, &result); err != nil {
			log.Error().Err(err).Str("user", userID.String()).Msg("Sweep failed")
			errs = append(errs, fmt.Errorf("user %s: %w", userID, err))
		}
		result.Users++
	}

	return result, errors.Join(errs...)
}

// maxSweepPasses bounds the syncs per user in one sweep.
const maxSweepPasses = 400

func (e *Engine) sweepUser(ctx context.Context, userID uuid.UUID, result *SweepResult) error {
	var (
		snapshot Snapshot
		errs     []error
	)

	// Sync until no schedule is due. In single step mode, every sync
	// materializes at most one occurrence per schedule.
	for pass := 0; pass < maxSweepPasses; pass++ {
		var err error
		snapshot, err = e.Sync(ctx, userID)
		result.Entries += len(snapshot.Materialized)
		if err != nil {
			errs = append(errs, err)
			break
		}

		if len(snapshot.Materialized) == 0 {
			break
		}

		due, err := e.store.DueSchedules(ctx, userID, snapshot.Today)
		if err != nil {
			errs = append(errs, err)
			break
		}
		if len(due) == 0 {
			break
		}
	}

	sent, err := e.SendReminders(ctx, snapshot)
	result.Reminders += len(sent)
	if err != nil {
		errs = append(errs, err)
	}

	names, err := e.store.CategoryNames(ctx, userID)
	if err != nil {
		errs = append(errs, err)
	}

	alerts, err := e.SendAlerts(ctx, snapshot, names)
	result.Alerts += len(alerts)
	if err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
