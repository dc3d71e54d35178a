package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anpt04/thuchi/internal/model"
)

// TransactionLister is the repository slice the budget service reads.
type TransactionLister interface {
	List(ctx context.Context) ([]model.Transaction, error)
}

// LimitGetter is the repository slice the budget service reads limits from.
type LimitGetter interface {
	Get(ctx context.Context, month string) (*model.MonthlyLimit, error)
}

// MonthStatus is one month's spending measured against its limit. Limit is
// nil when no limit is set, and Over is false in that case.
type MonthStatus struct {
	Month string
	Spent decimal.Decimal
	Limit *decimal.Decimal
	Over  bool
}

// Budget computes spending totals on top of the repositories, so it works
// against whichever backend is active.
type Budget struct {
	Transactions TransactionLister
	Limits       LimitGetter
}

// MonthStatus sums the month's expenses and compares them to the stored
// limit, if any.
func (b *Budget) MonthStatus(ctx context.Context, month string) (MonthStatus, error) {
	if err := model.ValidateMonth(month); err != nil {
		return MonthStatus{}, err
	}
	txs, err := b.Transactions.List(ctx)
	if err != nil {
		return MonthStatus{}, err
	}
	spent := decimal.Zero
	for _, t := range txs {
		if t.Kind == model.KindExpense && strings.HasPrefix(t.Date, month+"-") {
			spent = spent.Add(t.Amount)
		}
	}
	st := MonthStatus{Month: month, Spent: spent}
	lim, err := b.Limits.Get(ctx, month)
	if err != nil {
		return MonthStatus{}, err
	}
	if lim != nil {
		st.Limit = &lim.Amount
		st.Over = spent.GreaterThan(lim.Amount)
	}
	return st, nil
}
