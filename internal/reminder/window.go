// Package reminder computes upcoming bills from recurring schedules and
// sends each bill reminder at most once.
package reminder

import (
	"slices"
	"strings"

	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

type Status string

const (
	StatusPending  Status = "pending"  // No reminder was sent for the occurrence yet
	StatusReminded Status = "reminded" // A reminder was sent for at least one lead time
)

// UpcomingBill is an occurrence of a schedule that is due within the
// reminder window.
type UpcomingBill struct {
	Schedule     models.RecurringSchedule
	DueDate      types.Date
	DaysUntilDue int
	Status       Status
}

// SentFunc reports whether a reminder was recorded for the key.
type SentFunc func(models.ReminderKey) bool

// SentIn returns a SentFunc backed by the reminder records.
func SentIn(records []models.BillReminder) SentFunc {
	sent := make(map[models.ReminderKey]bool, len(records))
	for _, r := range records {
		sent[normalizeKey(r.Key())] = true
	}

	return func(k models.ReminderKey) bool {
		return sent[normalizeKey(k)]
	}
}

// normalizeKey makes keys comparable independently of how their date was
// constructed.
func normalizeKey(k models.ReminderKey) models.ReminderKey {
	k.DueDate = types.DateOf(k.DueDate.Time())
	return k
}

// Upcoming returns the next occurrences of the active schedules that are due
// between today and the largest lead time, both inclusive. Each occurrence
// is reminded if a reminder was recorded for any of the lead times.
//
// The result is sorted by days until due, then by schedule id.
// Without lead times, nothing is upcoming.
func Upcoming(schedules []models.RecurringSchedule, leadDays []int, today types.Date, sent SentFunc) []UpcomingBill {
	if len(leadDays) == 0 {
		return []UpcomingBill{}
	}
	maxLead := slices.Max(leadDays)

	bills := []UpcomingBill{}
	for _, s := range schedules {
		if !s.Active {
			continue
		}

		days := today.DaysUntil(s.NextDueDate)
		if days < 0 || days > maxLead {
			continue
		}

		status := StatusPending
		for _, lead := range leadDays {
			if sent != nil && sent(models.ReminderKey{ScheduleID: s.ID, DueDate: s.NextDueDate, LeadDays: lead}) {
				status = StatusReminded
				break
			}
		}

		bills = append(bills, UpcomingBill{
			Schedule:     s,
			DueDate:      s.NextDueDate,
			DaysUntilDue: days,
			Status:       status,
		})
	}

	slices.SortStableFunc(bills, func(a, b UpcomingBill) int {
		if a.DaysUntilDue != b.DaysUntilDue {
			return a.DaysUntilDue - b.DaysUntilDue
		}
		return strings.Compare(a.Schedule.ID.String(), b.Schedule.ID.String())
	})

	return bills
}

// Due returns the keys of the reminders that fire today: one for every
// active schedule and lead time where the schedule is due in exactly that
// many days. Reminders for days that passed without a check are not
// returned later.
func Due(schedules []models.RecurringSchedule, leadDays []int, today types.Date) []models.ReminderKey {
	var keys []models.ReminderKey

	for _, s := range schedules {
		if !s.Active {
			continue
		}

		days := today.DaysUntil(s.NextDueDate)
		for _, lead := range leadDays {
			if days == lead {
				keys = append(keys, models.ReminderKey{ScheduleID: s.ID, DueDate: s.NextDueDate, LeadDays: lead})
			}
		}
	}

	return keys
}
