package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/anpt04/thuchi/internal/model"
)

// Set upserts the expense ceiling for month on the active backend.
func (r *Limits) Set(ctx context.Context, month string, amount decimal.Decimal) error {
	if err := (model.MonthlyLimit{Month: month, Amount: amount}).Validate(); err != nil {
		return err
	}
	return r.active().SetMonthlyLimit(ctx, month, amount)
}

// Get returns the limit for month, or nil when none is set.
func (r *Limits) Get(ctx context.Context, month string) (*model.MonthlyLimit, error) {
	return r.active().GetMonthlyLimit(ctx, month)
}

// Delete removes the limit for month.
func (r *Limits) Delete(ctx context.Context, month string) error {
	return r.active().DeleteMonthlyLimit(ctx, month)
}
