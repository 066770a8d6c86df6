package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors returned by Bill.Validate.
var (
	ErrEmptyTitle     = errors.New("bill title is required")
	ErrNegativeAmount = errors.New("bill amount must not be negative")
)

// Bill represents a single payable obligation.
type Bill struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      Date            `json:"dueISO"`
	Category     string          `json:"category"`
	Notes        string          `json:"notes,omitempty"`
	Paid         bool            `json:"paid"`
	CreatedBy    string          `json:"createdBy"`
	PaidBy       string          `json:"paidBy,omitempty"`
	ReminderDays int             `json:"reminderDays,omitempty"`
	Recipients   []string        `json:"recipients,omitempty"`
}

// Validate checks the fields a user can get wrong through the form:
// the title must be non-empty after trimming and the amount must not be
// negative. Amount well-formedness is enforced earlier, when the input
// string is parsed into a decimal.
func (b *Bill) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyTitle
	}
	if b.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// SearchText returns the lowercased text a search query is matched
// against: title, category and notes concatenated.
func (b *Bill) SearchText() string {
	return strings.ToLower(b.Title + " " + b.Category + " " + b.Notes)
}
