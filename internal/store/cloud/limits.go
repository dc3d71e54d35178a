package cloud

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/anpt04/thuchi/internal/model"
)

type limitDoc struct {
	Amount string `firestore:"amountLimit"`
}

// SetMonthlyLimit upserts the expense ceiling for month, keyed by the month
// string itself.
func (s *Store) SetMonthlyLimit(ctx context.Context, month string, amount decimal.Decimal) error {
	uid, ok := s.currentUser()
	if !ok {
		return nil
	}
	// MergeAll needs map data.
	_, err := s.limits(uid).Doc(month).Set(ctx, map[string]interface{}{"amountLimit": amount.String()}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("set monthly limit: %w", err)
	}
	return nil
}

// GetMonthlyLimit returns the limit for month, or nil when none is set.
func (s *Store) GetMonthlyLimit(ctx context.Context, month string) (*model.MonthlyLimit, error) {
	uid, ok := s.currentUser()
	if !ok {
		return nil, nil
	}
	snap, err := s.limits(uid).Doc(month).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get monthly limit: %w", err)
	}
	var d limitDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("decode monthly limit: %w", err)
	}
	amt, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return nil, fmt.Errorf("monthly limit amount %q: %w", d.Amount, err)
	}
	return &model.MonthlyLimit{Month: month, Amount: amt}, nil
}

// DeleteMonthlyLimit removes the limit for month, if any.
func (s *Store) DeleteMonthlyLimit(ctx context.Context, month string) error {
	uid, ok := s.currentUser()
	if !ok {
		return nil
	}
	if _, err := s.limits(uid).Doc(month).Delete(ctx); err != nil {
		return fmt.Errorf("delete monthly limit: %w", err)
	}
	return nil
}
