package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a transaction or category as money in or money out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k == KindIncome || k == KindExpense }

// Reserved category ids for gold trades. Gold purchases are stored as
// ordinary expense transactions and gold sales as ordinary income
// transactions under these ids.
const (
	CategoryBuyGold  = "buyGold"
	CategorySellGold = "sellGold"
)

// Transaction is one income or expense record. CategoryName is a snapshot of
// the category's name at write time; renaming the category later does not
// rewrite it.
type Transaction struct {
	ID           string
	Kind         Kind
	CategoryID   string
	CategoryName string
	Amount       decimal.Decimal
	Date         string
	Note         string
}

// Category is a named bucket transactions are filed under.
type Category struct {
	ID   string
	Name string
	Kind Kind
}

// MonthlyLimit caps a calendar month's total expense.
type MonthlyLimit struct {
	Month  string
	Amount decimal.Decimal
}

// Profile is the per-user document created once at registration.
type Profile struct {
	Name      string
	Email     string
	CreatedAt time.Time
}

// GoldPurchase builds an expense transaction under the reserved buyGold
// category.
func GoldPurchase(amount decimal.Decimal, date, note string) Transaction {
	return Transaction{
		Kind:         KindExpense,
		CategoryID:   CategoryBuyGold,
		CategoryName: "Mua vàng",
		Amount:       amount,
		Date:         date,
		Note:         note,
	}
}

// GoldSale builds an income transaction under the reserved sellGold category.
func GoldSale(amount decimal.Decimal, date, note string) Transaction {
	return Transaction{
		Kind:         KindIncome,
		CategoryID:   CategorySellGold,
		CategoryName: "Bán vàng",
		Amount:       amount,
		Date:         date,
		Note:         note,
	}
}

// DefaultCategories returns the seed set a fresh store starts with. The ids
// are fixed so every backend scope shares the same defaults.
func DefaultCategories() []Category {
	return []Category{
		{ID: "salary", Name: "Lương", Kind: KindIncome},
		{ID: "gift", Name: "Quà tặng", Kind: KindIncome},
		{ID: "food", Name: "Ăn uống", Kind: KindExpense},
		{ID: "entertainment", Name: "Giải trí", Kind: KindExpense},
		{ID: "transport", Name: "Đi lại", Kind: KindExpense},
	}
}
