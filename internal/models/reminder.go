package models

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/types"
	ez_uuid "github.com/tally-finance/backend/internal/uuid"
)

// BillReminder records that a reminder was sent for one occurrence of a
// schedule at one lead time. It is never updated.
type BillReminder struct {
	DefaultModel
	UserID     uuid.UUID  `gorm:"index"`
	ScheduleID uuid.UUID  `gorm:"uniqueIndex:bill_reminder_occurrence"`
	DueDate    types.Date `gorm:"uniqueIndex:bill_reminder_occurrence"`
	LeadDays   int        `gorm:"uniqueIndex:bill_reminder_occurrence"`
}

func (r BillReminder) Self() string {
	return "Bill Reminder"
}

// BillReminderID is the id of the reminder record for the occurrence and lead time.
func BillReminderID(scheduleID uuid.UUID, dueDate types.Date, leadDays int) uuid.UUID {
	return ez_uuid.Derive("bill-reminder", scheduleID.String(), dueDate.String(), strconv.Itoa(leadDays))
}

// ReminderKey identifies one reminder: an occurrence of a schedule at one lead time.
type ReminderKey struct {
	ScheduleID uuid.UUID
	DueDate    types.Date
	LeadDays   int
}

func (k ReminderKey) ID() uuid.UUID {
	return BillReminderID(k.ScheduleID, k.DueDate, k.LeadDays)
}

// Key returns the key of the reminder the record was written for.
func (r BillReminder) Key() ReminderKey {
	return ReminderKey{ScheduleID: r.ScheduleID, DueDate: r.DueDate, LeadDays: r.LeadDays}
}
