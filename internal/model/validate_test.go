package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTransactionValidate(t *testing.T) {
	t.Parallel()
	ok := Transaction{
		Kind: KindExpense, CategoryID: "food", CategoryName: "Ăn uống",
		Amount: decimal.NewFromInt(10000), Date: "2024-05-01",
	}
	require.NoError(t, ok.Validate())

	cases := map[string]Transaction{
		"bad kind":        {Kind: "transfer", CategoryID: "food", Date: "2024-05-01"},
		"missing cat":     {Kind: KindExpense, Date: "2024-05-01"},
		"negative amount": {Kind: KindExpense, CategoryID: "food", Amount: decimal.NewFromInt(-1), Date: "2024-05-01"},
		"bad date":        {Kind: KindExpense, CategoryID: "food", Date: "01/05/2024"},
	}
	for name, tx := range cases {
		var verr *ValidationError
		require.ErrorAs(t, tx.Validate(), &verr, name)
	}
}

func TestMonthValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, ValidateMonth("2024-05"))
	require.Error(t, ValidateMonth("2024-5"))
	require.Error(t, ValidateMonth("2024-05-01"))
}

func TestGoldHelpers(t *testing.T) {
	t.Parallel()
	buy := GoldPurchase(decimal.NewFromInt(5000000), "2024-05-01", "1 chỉ SJC")
	require.Equal(t, KindExpense, buy.Kind)
	require.Equal(t, CategoryBuyGold, buy.CategoryID)
	require.NoError(t, buy.Validate())

	sell := GoldSale(decimal.NewFromInt(5200000), "2024-06-01", "")
	require.Equal(t, KindIncome, sell.Kind)
	require.Equal(t, CategorySellGold, sell.CategoryID)
	require.NoError(t, sell.Validate())
}

func TestDefaultCategoriesFixedIDs(t *testing.T) {
	t.Parallel()
	cats := DefaultCategories()
	require.Len(t, cats, 5)
	ids := map[string]bool{}
	for _, c := range cats {
		require.True(t, c.Kind.Valid())
		require.False(t, ids[c.ID], "duplicate id %s", c.ID)
		ids[c.ID] = true
	}
	require.True(t, ids["salary"])
	require.True(t, ids["food"])
}
