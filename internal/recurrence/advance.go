// Package recurrence materializes due occurrences of recurring schedules
// into ledger entries.
package recurrence

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/schedule"
	"github.com/tally-finance/backend/internal/types"
	ez_uuid "github.com/tally-finance/backend/internal/uuid"
)

// NotePrefix marks the note of ledger entries materialized from a schedule.
const NotePrefix = "[Recurring]"

// EntryID is the id of the ledger entry for the occurrence of the schedule
// on the due date. Writing the entry under this id more than once never
// creates a duplicate.
func EntryID(scheduleID uuid.UUID, dueDate types.Date) uuid.UUID {
	return ez_uuid.Derive("ledger-entry", scheduleID.String(), dueDate.String())
}

// Entry returns the ledger entry for the occurrence of the schedule on the
// due date, using the schedule's current values.
func Entry(s models.RecurringSchedule, dueDate types.Date) models.Transaction {
	scheduleID := s.ID

	var accountID *uuid.UUID
	if s.AccountID != nil {
		id := *s.AccountID
		accountID = &id
	}

	return models.Transaction{
		DefaultModel: models.DefaultModel{ID: EntryID(s.ID, dueDate)},
		UserID:       s.UserID,
		Amount:       s.Amount,
		Kind:         s.Kind,
		CategoryID:   s.CategoryID,
		SubCategory:  s.SubCategory,
		Tags:         append([]string(nil), s.Tags...),
		AccountID:    accountID,
		Date:         dueDate,
		Note:         note(s),
		ScheduleID:   &scheduleID,
	}
}

func note(s models.RecurringSchedule) string {
	text := s.Note
	if text == "" {
		text = s.Name
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", NotePrefix, text))
}

// Advance is the state transition of a schedule. If the schedule is active
// and due on or before today, it returns the schedule with its next due date
// advanced by one period and the entry for the old due date. Otherwise it
// returns the schedule unchanged and no entry.
func Advance(s models.RecurringSchedule, today types.Date) (models.RecurringSchedule, *models.Transaction) {
	if !s.IsDue(today) {
		return s, nil
	}

	entry := Entry(s, s.NextDueDate)
	s.NextDueDate = schedule.NextOccurrence(s.NextDueDate, s.Frequency)

	return s, &entry
}
