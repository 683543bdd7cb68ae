package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups ledger entries, schedules and budgets.
type Category struct {
	DefaultModel
	UserID uuid.UUID `gorm:"uniqueIndex:category_name_user"`
	Name   string    `gorm:"uniqueIndex:category_name_user"`
	Note   string
}

func (c Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.UserID == uuid.Nil {
		return ErrUserIDMissing
	}

	if c.Name == "" {
		return ErrNameEmpty
	}

	return nil
}
