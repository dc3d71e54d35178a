package local

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anpt04/thuchi/internal/model"
	"github.com/anpt04/thuchi/internal/store"
)

// AddTransaction persists t and returns it with the assigned sequential id.
func (s *Store) AddTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	if err := s.ready(); err != nil {
		return model.Transaction{}, err
	}
	res, err := s.db.ExecContext(ctx, `
	INSERT INTO transactions(kind, category, category_name, amount, date, note)
	VALUES(?, ?, ?, ?, ?, ?)
	`, string(t.Kind), t.CategoryID, t.CategoryName, t.Amount.String(), t.Date, t.Note)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	t.ID = strconv.FormatInt(rowID, 10)
	return t, nil
}

// ListTransactions returns all transactions. Order is not guaranteed.
func (s *Store) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.queryTransactions(ctx, `SELECT id, kind, category, category_name, amount, date, note FROM transactions`)
}

// ListTransactionsByCategory returns the transactions filed under categoryID.
func (s *Store) ListTransactionsByCategory(ctx context.Context, categoryID string) ([]model.Transaction, error) {
	return s.queryTransactions(ctx,
		`SELECT id, kind, category, category_name, amount, date, note FROM transactions WHERE category = ?`,
		categoryID)
}

// GetTransaction returns the transaction with id, or nil when absent.
func (s *Store) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, category, category_name, amount, date, note FROM transactions WHERE id = ?`, id)
	t, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// UpdateTransaction overwrites only the fields present in patch.
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch store.TransactionPatch) error {
	if err := s.ready(); err != nil {
		return err
	}
	var set []string
	var args []interface{}
	if patch.Kind != nil {
		set = append(set, "kind = ?")
		args = append(args, string(*patch.Kind))
	}
	if patch.CategoryID != nil {
		set = append(set, "category = ?")
		args = append(args, *patch.CategoryID)
	}
	if patch.CategoryName != nil {
		set = append(set, "category_name = ?")
		args = append(args, *patch.CategoryName)
	}
	if patch.Amount != nil {
		set = append(set, "amount = ?")
		args = append(args, patch.Amount.String())
	}
	if patch.Date != nil {
		set = append(set, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.Note != nil {
		set = append(set, "note = ?")
		args = append(args, *patch.Note)
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes the transaction with id. Deleting an absent id is
// not an error.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]model.Transaction, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	return out, nil
}

// scanTransaction handles both Row and Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row scanner) (model.Transaction, error) {
	var t model.Transaction
	var rowID int64
	var kind, amount string
	if err := row.Scan(&rowID, &kind, &t.CategoryID, &t.CategoryName, &amount, &t.Date, &t.Note); err != nil {
		return model.Transaction{}, err
	}
	t.ID = strconv.FormatInt(rowID, 10)
	t.Kind = model.Kind(kind)
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("amount %q: %w", amount, err)
	}
	t.Amount = amt
	return t, nil
}
