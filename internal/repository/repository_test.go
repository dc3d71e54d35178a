package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/anpt04/thuchi/internal/model"
	"github.com/anpt04/thuchi/internal/store"
)

// staticProvider is an auth.Provider fixed to one state.
type staticProvider struct{ uid string }

func (p staticProvider) CurrentUID() (string, bool) { return p.uid, p.uid != "" }

// recordingStore satisfies all three store contracts and counts calls.
type recordingStore struct {
	calls int
}

func (s *recordingStore) bump() { s.calls++ }

func (s *recordingStore) AddTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	s.bump()
	t.ID = "t1"
	return t, nil
}

func (s *recordingStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	s.bump()
	return nil, nil
}

func (s *recordingStore) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	s.bump()
	return nil, nil
}

func (s *recordingStore) ListTransactionsByCategory(ctx context.Context, categoryID string) ([]model.Transaction, error) {
	s.bump()
	return nil, nil
}

func (s *recordingStore) UpdateTransaction(ctx context.Context, id string, patch store.TransactionPatch) error {
	s.bump()
	return nil
}

func (s *recordingStore) DeleteTransaction(ctx context.Context, id string) error {
	s.bump()
	return nil
}

func (s *recordingStore) AddCategory(ctx context.Context, c model.Category) (model.Category, error) {
	s.bump()
	c.ID = "c1"
	return c, nil
}

func (s *recordingStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	s.bump()
	return nil, nil
}

func (s *recordingStore) UpdateCategory(ctx context.Context, id string, patch store.CategoryPatch) error {
	s.bump()
	return nil
}

func (s *recordingStore) DeleteCategory(ctx context.Context, id string) error {
	s.bump()
	return nil
}

func (s *recordingStore) SetMonthlyLimit(ctx context.Context, month string, amount decimal.Decimal) error {
	s.bump()
	return nil
}

func (s *recordingStore) GetMonthlyLimit(ctx context.Context, month string) (*model.MonthlyLimit, error) {
	s.bump()
	return nil, nil
}

func (s *recordingStore) DeleteMonthlyLimit(ctx context.Context, month string) error {
	s.bump()
	return nil
}

func validTransaction() model.Transaction {
	return model.Transaction{
		Kind:         model.KindExpense,
		CategoryID:   "food",
		CategoryName: "Ăn uống",
		Amount:       decimal.NewFromInt(10000),
		Date:         "2024-05-01",
	}
}

func TestRoutingSignedOutHitsLocalOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	localSt, cloudSt := &recordingStore{}, &recordingStore{}
	p := staticProvider{}

	tx := NewTransactions(localSt, cloudSt, p)
	cat := NewCategories(localSt, cloudSt, p)
	lim := NewLimits(localSt, cloudSt, p)

	_, err := tx.Add(ctx, validTransaction())
	require.NoError(t, err)
	_, err = tx.List(ctx)
	require.NoError(t, err)
	_, err = tx.Get(ctx, "1")
	require.NoError(t, err)
	_, err = tx.ListByCategory(ctx, "food")
	require.NoError(t, err)
	require.NoError(t, tx.Update(ctx, "1", store.TransactionPatch{}))
	require.NoError(t, tx.Delete(ctx, "1"))

	_, err = cat.Add(ctx, model.Category{Name: "x", Kind: model.KindIncome})
	require.NoError(t, err)
	_, err = cat.List(ctx)
	require.NoError(t, err)
	require.NoError(t, cat.Update(ctx, "c1", store.CategoryPatch{}))
	require.NoError(t, cat.Delete(ctx, "c1"))

	require.NoError(t, lim.Set(ctx, "2024-05", decimal.NewFromInt(1)))
	_, err = lim.Get(ctx, "2024-05")
	require.NoError(t, err)
	require.NoError(t, lim.Delete(ctx, "2024-05"))

	require.Equal(t, 13, localSt.calls)
	require.Zero(t, cloudSt.calls)
}

func TestRoutingSignedInHitsCloudOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	localSt, cloudSt := &recordingStore{}, &recordingStore{}
	p := staticProvider{uid: "u1"}

	tx := NewTransactions(localSt, cloudSt, p)
	cat := NewCategories(localSt, cloudSt, p)
	lim := NewLimits(localSt, cloudSt, p)

	_, err := tx.Add(ctx, validTransaction())
	require.NoError(t, err)
	_, err = cat.List(ctx)
	require.NoError(t, err)
	require.NoError(t, lim.Set(ctx, "2024-05", decimal.NewFromInt(1)))

	require.Zero(t, localSt.calls)
	require.Equal(t, 3, cloudSt.calls)
}

func TestValidationRejectedBeforeStoreCall(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	localSt, cloudSt := &recordingStore{}, &recordingStore{}
	tx := NewTransactions(localSt, cloudSt, staticProvider{})
	cat := NewCategories(localSt, cloudSt, staticProvider{})
	lim := NewLimits(localSt, cloudSt, staticProvider{})

	bad := validTransaction()
	bad.Amount = decimal.NewFromInt(-5)
	_, err := tx.Add(ctx, bad)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)

	bad = validTransaction()
	bad.Date = "01/05/2024"
	_, err = tx.Add(ctx, bad)
	require.ErrorAs(t, err, &verr)

	bad = validTransaction()
	bad.CategoryID = ""
	_, err = tx.Add(ctx, bad)
	require.ErrorAs(t, err, &verr)

	_, err = cat.Add(ctx, model.Category{Name: "", Kind: model.KindIncome})
	require.ErrorAs(t, err, &verr)

	require.Error(t, lim.Set(ctx, "2024-5", decimal.NewFromInt(1)))
	require.Error(t, lim.Set(ctx, "2024-05", decimal.NewFromInt(-1)))

	require.Zero(t, localSt.calls)
	require.Zero(t, cloudSt.calls)
}
