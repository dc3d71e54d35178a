// Package store defines the backend-neutral persistence contracts. The sqlite
// backend in store/local and the Firestore backend in store/cloud both satisfy
// them, so everything above the repository layer is backend-blind.
package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/anpt04/thuchi/internal/model"
)

// ErrNotInitialized is returned when the local store is used before Open.
var ErrNotInitialized = errors.New("store: not initialized")

// TransactionPatch carries the fields of an update; nil fields are left
// untouched.
type TransactionPatch struct {
	Kind         *model.Kind
	CategoryID   *string
	CategoryName *string
	Amount       *decimal.Decimal
	Date         *string
	Note         *string
}

// CategoryPatch carries the fields of a category update; nil fields are left
// untouched. Kind is intentionally patchable even for categories that
// existing transactions reference.
type CategoryPatch struct {
	Name *string
	Kind *model.Kind
}

// TransactionStore is the transaction CRUD contract shared by both backends.
type TransactionStore interface {
	AddTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactionsByCategory(ctx context.Context, categoryID string) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) error
	DeleteTransaction(ctx context.Context, id string) error
}

// CategoryStore is the category CRUD contract shared by both backends.
type CategoryStore interface {
	AddCategory(ctx context.Context, c model.Category) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id string, patch CategoryPatch) error
	DeleteCategory(ctx context.Context, id string) error
}

// LimitStore is the monthly-limit contract shared by both backends.
type LimitStore interface {
	SetMonthlyLimit(ctx context.Context, month string, amount decimal.Decimal) error
	GetMonthlyLimit(ctx context.Context, month string) (*model.MonthlyLimit, error)
	DeleteMonthlyLimit(ctx context.Context, month string) error
}
