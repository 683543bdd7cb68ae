package reminder

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tally-finance/backend/internal/metrics"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

// Records persists the reminders that were sent.
type Records interface {
	HasSentReminder(ctx context.Context, key models.ReminderKey) (bool, error)

	// RecordReminder writes the record for the key and reports whether it
	// was created by this call.
	RecordReminder(ctx context.Context, userID uuid.UUID, key models.ReminderKey) (bool, error)

	ForgetReminder(ctx context.Context, userID uuid.UUID, key models.ReminderKey) error
}

// Deduplicator tracks which reminders were sent.
type Deduplicator struct {
	records Records
}

func NewDeduplicator(records Records) *Deduplicator {
	return &Deduplicator{records: records}
}

func (d *Deduplicator) HasSent(ctx context.Context, key models.ReminderKey) (bool, error) {
	return d.records.HasSentReminder(ctx, key)
}

// RecordSent records the reminder. Recording the same key twice creates one
// record; the second call returns false.
func (d *Deduplicator) RecordSent(ctx context.Context, userID uuid.UUID, key models.ReminderKey) (bool, error) {
	return d.records.RecordReminder(ctx, userID, key)
}

// Forget removes the record of the reminder.
func (d *Deduplicator) Forget(ctx context.Context, userID uuid.UUID, key models.ReminderKey) error {
	return d.records.ForgetReminder(ctx, userID, key)
}

// Notifier delivers a bill reminder to the user.
type Notifier interface {
	NotifyBill(ctx context.Context, s models.RecurringSchedule, key models.ReminderKey) error
}

type Dispatcher struct {
	dedup    *Deduplicator
	notifier Notifier
}

func NewDispatcher(dedup *Deduplicator, notifier Notifier) *Dispatcher {
	return &Dispatcher{dedup: dedup, notifier: notifier}
}

// Dispatch sends the reminders that fire today and were not sent before.
//
// The record is written before the notification. If two dispatchers race
// for the same reminder, only the one that created the record notifies.
// If notifying fails, the record is deleted again and the next dispatch on
// the same day retries.
func (d *Dispatcher) Dispatch(ctx context.Context, schedules []models.RecurringSchedule, leadDays []int, today types.Date) ([]models.ReminderKey, error) {
	byID := make(map[uuid.UUID]models.RecurringSchedule, len(schedules))
	for _, s := range schedules {
		byID[s.ID] = s
	}

	var (
		sent []models.ReminderKey
		errs []error
	)

	for _, key := range Due(schedules, leadDays, today) {
		s := byID[key.ScheduleID]

		ok, err := d.send(ctx, s, key)
		if err != nil {
			log.Error().
				Err(err).
				Str("user", s.UserID.String()).
				Str("schedule", s.ID.String()).
				Str("due", key.DueDate.String()).
				Int("lead", key.LeadDays).
				Msg("Bill reminder failed")

			errs = append(errs, fmt.Errorf("reminder for schedule %s due %s, %d days ahead: %w", s.ID, key.DueDate, key.LeadDays, err))
			continue
		}

		if ok {
			sent = append(sent, key)
		}
	}

	return sent, errors.Join(errs...)
}

func (d *Dispatcher) send(ctx context.Context, s models.RecurringSchedule, key models.ReminderKey) (bool, error) {
	sent, err := d.dedup.HasSent(ctx, key)
	if err != nil {
		return false, err
	}
	if sent {
		return false, nil
	}

	created, err := d.dedup.RecordSent(ctx, s.UserID, key)
	if err != nil {
		return false, err
	}
	if !created {
		return false, nil
	}

	if err := d.notifier.NotifyBill(ctx, s, key); err != nil {
		if ferr := d.dedup.Forget(ctx, s.UserID, key); ferr != nil {
			return false, errors.Join(err, fmt.Errorf("releasing reminder record: %w", ferr))
		}
		return false, err
	}

	metrics.RemindersSent.WithLabelValues(strconv.Itoa(key.LeadDays)).Inc()
	log.Info().
		Str("user", s.UserID.String()).
		Str("schedule", s.ID.String()).
		Str("due", key.DueDate.String()).
		Int("lead", key.LeadDays).
		Msg("Bill reminder sent")

	return true, nil
}
