package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anpt04/thuchi/internal/store/local"
)

// Maintenance houses destructive local-only actions surfaced through the
// settings surface. The cloud backend is never touched here.
type Maintenance struct {
	Local *local.Store
}

// ResetLocal wipes every local table and reseeds the default categories. It
// keeps the schema intact so the app can continue running.
func (s *Maintenance) ResetLocal(ctx context.Context) error {
	if s.Local == nil {
		return fmt.Errorf("maintenance: local store not configured")
	}
	if err := s.Local.WithTx(func(tx *sql.Tx) error {
		for _, t := range []string{"transactions", "month_limits", "categories"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return s.Local.SeedDefaults(ctx)
}
