package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/anpt04/thuchi/internal/model"
)

type staticTransactions struct{ txs []model.Transaction }

func (s staticTransactions) List(ctx context.Context) ([]model.Transaction, error) {
	return s.txs, nil
}

type staticLimits struct{ limits map[string]decimal.Decimal }

func (s staticLimits) Get(ctx context.Context, month string) (*model.MonthlyLimit, error) {
	amt, ok := s.limits[month]
	if !ok {
		return nil, nil
	}
	return &model.MonthlyLimit{Month: month, Amount: amt}, nil
}

func TestMonthStatusSumsOnlyMonthExpenses(t *testing.T) {
	t.Parallel()
	b := &Budget{
		Transactions: staticTransactions{txs: []model.Transaction{
			{Kind: model.KindExpense, Amount: decimal.NewFromInt(10000), Date: "2024-05-01"},
			{Kind: model.KindExpense, Amount: decimal.NewFromInt(20000), Date: "2024-05-20"},
			{Kind: model.KindExpense, Amount: decimal.NewFromInt(99999), Date: "2024-06-01"},
			{Kind: model.KindIncome, Amount: decimal.NewFromInt(500000), Date: "2024-05-05"},
		}},
		Limits: staticLimits{limits: map[string]decimal.Decimal{
			"2024-05": decimal.NewFromInt(25000),
		}},
	}

	st, err := b.MonthStatus(context.Background(), "2024-05")
	require.NoError(t, err)
	require.True(t, st.Spent.Equal(decimal.NewFromInt(30000)))
	require.NotNil(t, st.Limit)
	require.True(t, st.Over)

	st, err = b.MonthStatus(context.Background(), "2024-06")
	require.NoError(t, err)
	require.True(t, st.Spent.Equal(decimal.NewFromInt(99999)))
	require.Nil(t, st.Limit)
	require.False(t, st.Over)
}

func TestMonthStatusRejectsBadMonth(t *testing.T) {
	t.Parallel()
	b := &Budget{Transactions: staticTransactions{}, Limits: staticLimits{}}
	_, err := b.MonthStatus(context.Background(), "05-2024")
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
}
