package local

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/anpt04/thuchi/internal/model"
)

// SetMonthlyLimit upserts the expense ceiling for month.
func (s *Store) SetMonthlyLimit(ctx context.Context, month string, amount decimal.Decimal) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO month_limits(month, amount) VALUES(?, ?)
	ON CONFLICT(month) DO UPDATE SET amount = excluded.amount
	`, month, amount.String())
	if err != nil {
		return fmt.Errorf("set monthly limit: %w", err)
	}
	return nil
}

// GetMonthlyLimit returns the limit for month, or nil when none is set.
func (s *Store) GetMonthlyLimit(ctx context.Context, month string) (*model.MonthlyLimit, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var amount string
	err := s.db.QueryRowContext(ctx,
		`SELECT amount FROM month_limits WHERE month = ?`, month).Scan(&amount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get monthly limit: %w", err)
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("monthly limit amount %q: %w", amount, err)
	}
	return &model.MonthlyLimit{Month: month, Amount: amt}, nil
}

// DeleteMonthlyLimit removes the limit for month, if any.
func (s *Store) DeleteMonthlyLimit(ctx context.Context, month string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM month_limits WHERE month = ?`, month); err != nil {
		return fmt.Errorf("delete monthly limit: %w", err)
	}
	return nil
}
