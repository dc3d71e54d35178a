package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/anpt04/thuchi/internal/model"
)

// LocalReader is the slice of the local store migration reads from.
type LocalReader interface {
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

// CloudUploader is the slice of the cloud store migration writes to. The uid
// is explicit because migration runs against a just-created account.
type CloudUploader interface {
	UploadCategory(ctx context.Context, uid string, c model.Category) error
	UploadTransaction(ctx context.Context, uid string, t model.Transaction) error
	SeedDefaultCategories(ctx context.Context, uid string) error
}

// ItemResult records the outcome of copying one record.
type ItemResult struct {
	Kind string // "category" or "transaction"
	ID   string // local id
	Err  error
}

// Report is the per-item outcome of a Migrate run. A partly failed copy is an
// ordinary value here, not an error of the run itself.
type Report struct {
	Items []ItemResult
}

// Failed returns the items that did not copy.
func (r Report) Failed() []ItemResult {
	var out []ItemResult
	for _, it := range r.Items {
		if it.Err != nil {
			out = append(out, it)
		}
	}
	return out
}

// Migrator performs the one-time transfer of locally accumulated data into a
// freshly registered account. It does not create accounts and it does not
// sign anybody in or out; the registration flow around it does.
//
// There is no idempotency key: running Migrate twice against the same account
// duplicates every transaction, because transaction documents get fresh cloud
// ids on each run. Callers invoke it at most once per registration.
type Migrator struct {
	Local LocalReader
	Cloud CloudUploader
	Log   zerolog.Logger
}

// Skip seeds the default categories for uid and leaves local data untouched.
func (m *Migrator) Skip(ctx context.Context, uid string) error {
	if err := m.Cloud.SeedDefaultCategories(ctx, uid); err != nil {
		return fmt.Errorf("skip: %w", err)
	}
	m.Log.Info().Str("uid", uid).Msg("seeded default categories")
	return nil
}

// Migrate copies every local category and transaction into uid's namespace.
// Categories go first and keep their local ids, so the category references
// on the copied transactions stay valid without rewriting. Transactions get
// fresh cloud ids. Individual write failures do not stop the copy; they are
// collected in the report. Local data is never deleted.
func (m *Migrator) Migrate(ctx context.Context, uid string) (Report, error) {
	cats, err := m.Local.ListCategories(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("read local categories: %w", err)
	}
	txs, err := m.Local.ListTransactions(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("read local transactions: %w", err)
	}

	var rep Report
	for _, c := range cats {
		err := m.Cloud.UploadCategory(ctx, uid, c)
		rep.Items = append(rep.Items, ItemResult{Kind: "category", ID: c.ID, Err: err})
		if err != nil {
			m.Log.Error().Err(err).Str("category", c.ID).Msg("category copy failed")
		}
	}
	for _, t := range txs {
		err := m.Cloud.UploadTransaction(ctx, uid, t)
		rep.Items = append(rep.Items, ItemResult{Kind: "transaction", ID: t.ID, Err: err})
		if err != nil {
			m.Log.Error().Err(err).Str("transaction", t.ID).Msg("transaction copy failed")
		}
	}

	m.Log.Info().
		Str("uid", uid).
		Int("categories", len(cats)).
		Int("transactions", len(txs)).
		Int("failed", len(rep.Failed())).
		Msg("migration finished")
	return rep, nil
}
