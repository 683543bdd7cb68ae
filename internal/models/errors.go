package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrUserIDMissing    = errors.New("the resource must belong to a user")
)

// Schedule errors
var (
	ErrScheduleNameEmpty         = errors.New("the name of a recurring schedule must not be empty")
	ErrScheduleAmountNotPositive = errors.New("the amount of a recurring schedule must be positive")
	ErrScheduleStartDateMissing  = errors.New("the start date of a recurring schedule must be set")
)

// Transaction errors
var (
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be positive")
)

// Budget errors
var (
	ErrBudgetAmountNotPositive = errors.New("the budget amount must be positive")
	ErrAlertLevelInvalid       = errors.New("the alert level must be one of warning, exceeded")
)

// Settings errors
var (
	ErrReminderDaysNotPositive = errors.New("bill reminder days must be positive numbers")
)

// Account, category and goal errors
var (
	ErrAccountNameNotUnique  = errors.New("the account name must be unique for the user")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the user")
	ErrGoalAmountNotPositive = errors.New("goal target amounts must be larger than zero")
	ErrNameEmpty             = errors.New("the name must not be empty")
)
