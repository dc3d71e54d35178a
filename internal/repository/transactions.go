package repository

import (
	"context"

	"github.com/anpt04/thuchi/internal/model"
	"github.com/anpt04/thuchi/internal/store"
)

// Add validates t and writes it to the active backend.
func (r *Transactions) Add(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	if err := t.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return r.active().AddTransaction(ctx, t)
}

// List returns all transactions from the active backend.
func (r *Transactions) List(ctx context.Context) ([]model.Transaction, error) {
	return r.active().ListTransactions(ctx)
}

// Get returns the transaction with id, or nil when absent.
func (r *Transactions) Get(ctx context.Context, id string) (*model.Transaction, error) {
	return r.active().GetTransaction(ctx, id)
}

// ListByCategory returns the transactions filed under categoryID.
func (r *Transactions) ListByCategory(ctx context.Context, categoryID string) ([]model.Transaction, error) {
	return r.active().ListTransactionsByCategory(ctx, categoryID)
}

// Update overwrites only the fields present in patch.
func (r *Transactions) Update(ctx context.Context, id string, patch store.TransactionPatch) error {
	if patch.Amount != nil && patch.Amount.IsNegative() {
		return &model.ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if patch.Date != nil {
		if err := model.ValidateDate(*patch.Date); err != nil {
			return err
		}
	}
	return r.active().UpdateTransaction(ctx, id, patch)
}

// Delete removes the transaction with id.
func (r *Transactions) Delete(ctx context.Context, id string) error {
	return r.active().DeleteTransaction(ctx, id)
}
