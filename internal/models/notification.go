package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationKind identifies what a notification is about.
type NotificationKind string

const (
	NotificationBillReminder   NotificationKind = "bill_reminder"
	NotificationBudgetWarning  NotificationKind = "budget_warning"
	NotificationBudgetExceeded NotificationKind = "budget_exceeded"
)

// Notification is a user-facing message.
type Notification struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index"`
	Kind        NotificationKind
	Title       string
	Message     string
	ReferenceID uuid.UUID // The schedule or budget the notification is about
	Read        bool
}

func (n Notification) Self() string {
	return "Notification"
}

func (n *Notification) BeforeSave(_ *gorm.DB) error {
	n.Title = strings.TrimSpace(n.Title)
	n.Message = strings.TrimSpace(n.Message)

	if n.UserID == uuid.Nil {
		return ErrUserIDMissing
	}

	return nil
}
