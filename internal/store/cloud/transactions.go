package cloud

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/anpt04/thuchi/internal/model"
	"github.com/anpt04/thuchi/internal/store"
)

// transactionDoc is the wire form of a transaction. Amounts travel as strings
// so decimal values survive the round trip exactly.
type transactionDoc struct {
	Kind         string `firestore:"type"`
	CategoryID   string `firestore:"category"`
	CategoryName string `firestore:"categoryName"`
	Amount       string `firestore:"amount"`
	Date         string `firestore:"date"`
	Note         string `firestore:"note"`
}

func toTransactionDoc(t model.Transaction) transactionDoc {
	return transactionDoc{
		Kind:         string(t.Kind),
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName,
		Amount:       t.Amount.String(),
		Date:         t.Date,
		Note:         t.Note,
	}
}

func (d transactionDoc) toModel(id string) (model.Transaction, error) {
	amt, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("amount %q: %w", d.Amount, err)
	}
	return model.Transaction{
		ID:           id,
		Kind:         model.Kind(d.Kind),
		CategoryID:   d.CategoryID,
		CategoryName: d.CategoryName,
		Amount:       amt,
		Date:         d.Date,
		Note:         d.Note,
	}, nil
}

// AddTransaction stores t under the current user with a backend-generated id.
func (s *Store) AddTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	uid, ok := s.currentUser()
	if !ok {
		return model.Transaction{}, nil
	}
	ref, _, err := s.transactions(uid).Add(ctx, toTransactionDoc(t))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}
	t.ID = ref.ID
	return t, nil
}

// ListTransactions returns all of the current user's transactions.
func (s *Store) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	uid, ok := s.currentUser()
	if !ok {
		return nil, nil
	}
	return collectTransactions(s.transactions(uid).Documents(ctx))
}

// ListTransactionsByCategory returns the current user's transactions filed
// under categoryID.
func (s *Store) ListTransactionsByCategory(ctx context.Context, categoryID string) ([]model.Transaction, error) {
	uid, ok := s.currentUser()
	if !ok {
		return nil, nil
	}
	it := s.transactions(uid).Where("category", "==", categoryID).Documents(ctx)
	return collectTransactions(it)
}

// GetTransaction returns the transaction with id, or nil when absent.
func (s *Store) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	uid, ok := s.currentUser()
	if !ok {
		return nil, nil
	}
	snap, err := s.transactions(uid).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	var d transactionDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	t, err := d.toModel(snap.Ref.ID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTransaction writes only the fields present in patch.
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch store.TransactionPatch) error {
	uid, ok := s.currentUser()
	if !ok {
		return nil
	}
	var updates []firestore.Update
	if patch.Kind != nil {
		updates = append(updates, firestore.Update{Path: "type", Value: string(*patch.Kind)})
	}
	if patch.CategoryID != nil {
		updates = append(updates, firestore.Update{Path: "category", Value: *patch.CategoryID})
	}
	if patch.CategoryName != nil {
		updates = append(updates, firestore.Update{Path: "categoryName", Value: *patch.CategoryName})
	}
	if patch.Amount != nil {
		updates = append(updates, firestore.Update{Path: "amount", Value: patch.Amount.String()})
	}
	if patch.Date != nil {
		updates = append(updates, firestore.Update{Path: "date", Value: *patch.Date})
	}
	if patch.Note != nil {
		updates = append(updates, firestore.Update{Path: "note", Value: *patch.Note})
	}
	if len(updates) == 0 {
		return nil
	}
	if _, err := s.transactions(uid).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes the transaction with id.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	uid, ok := s.currentUser()
	if !ok {
		return nil
	}
	if _, err := s.transactions(uid).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func collectTransactions(it *firestore.DocumentIterator) ([]model.Transaction, error) {
	defer it.Stop()
	var out []model.Transaction
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("iterate transactions: %w", err)
		}
		var d transactionDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("decode transaction: %w", err)
		}
		t, err := d.toModel(snap.Ref.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
}
