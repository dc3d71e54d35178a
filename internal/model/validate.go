package model

import (
	"fmt"
	"time"
)

// ValidationError rejects bad input before any store call is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ValidateDate checks the canonical YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return &ValidationError{Field: "date", Reason: "want YYYY-MM-DD"}
	}
	return nil
}

// ValidateMonth checks the canonical YYYY-MM form.
func ValidateMonth(month string) error {
	if _, err := time.Parse(monthLayout, month); err != nil {
		return &ValidationError{Field: "month", Reason: "want YYYY-MM"}
	}
	return nil
}

// Validate checks a transaction before it is written.
func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return &ValidationError{Field: "kind", Reason: "want income or expense"}
	}
	if t.CategoryID == "" {
		return &ValidationError{Field: "category", Reason: "required"}
	}
	if t.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	return ValidateDate(t.Date)
}

// Validate checks a category before it is written.
func (c Category) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if !c.Kind.Valid() {
		return &ValidationError{Field: "kind", Reason: "want income or expense"}
	}
	return nil
}

// Validate checks a monthly limit before it is written.
func (l MonthlyLimit) Validate() error {
	if l.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	return ValidateMonth(l.Month)
}
