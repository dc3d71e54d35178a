package cloud

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/anpt04/thuchi/internal/model"
)

type profileDoc struct {
	Name  string `firestore:"name"`
	Email string `firestore:"email"`
	// zero value is replaced server-side
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

// CreateUserProfile writes the users/{uid} document. It must run once before
// any other write for the account is meaningful.
func (s *Store) CreateUserProfile(ctx context.Context, uid string, p model.Profile) error {
	_, err := s.userDoc(uid).Set(ctx, profileDoc{Name: p.Name, Email: p.Email})
	if err != nil {
		return fmt.Errorf("create user profile: %w", err)
	}
	return nil
}

// FetchUserProfile reads the users/{uid} document, or nil when absent.
func (s *Store) FetchUserProfile(ctx context.Context, uid string) (*model.Profile, error) {
	snap, err := s.userDoc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch user profile: %w", err)
	}
	var d profileDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("decode user profile: %w", err)
	}
	return &model.Profile{Name: d.Name, Email: d.Email, CreatedAt: d.CreatedAt}, nil
}

// DefaultCategoryTemplates returns the platform-wide default category set.
func (s *Store) DefaultCategoryTemplates() []model.Category {
	return model.DefaultCategories()
}

// SeedDefaultCategories writes every default category into uid's namespace
// under its fixed id, as one atomic batch: either all seeds land or none do.
// Re-running overwrites the same documents, so it is idempotent.
func (s *Store) SeedDefaultCategories(ctx context.Context, uid string) error {
	batch := s.client.Batch()
	for _, c := range s.DefaultCategoryTemplates() {
		batch.Set(s.categories(uid).Doc(c.ID), toCategoryDoc(c))
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("seed default categories: %w", err)
	}
	return nil
}

// UploadCategory writes c into uid's namespace keeping c.ID as the document
// id, so transaction category references copied alongside stay valid.
func (s *Store) UploadCategory(ctx context.Context, uid string, c model.Category) error {
	if _, err := s.categories(uid).Doc(c.ID).Set(ctx, toCategoryDoc(c)); err != nil {
		return fmt.Errorf("upload category %s: %w", c.ID, err)
	}
	return nil
}

// UploadTransaction writes t into uid's namespace under a fresh document id.
func (s *Store) UploadTransaction(ctx context.Context, uid string, t model.Transaction) error {
	ref := s.transactions(uid).NewDoc()
	if _, err := ref.Set(ctx, toTransactionDoc(t)); err != nil {
		return fmt.Errorf("upload transaction %s: %w", t.ID, err)
	}
	return nil
}
