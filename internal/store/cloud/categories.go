package cloud

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/anpt04/thuchi/internal/model"
	"github.com/anpt04/thuchi/internal/store"
)

type categoryDoc struct {
	Name string `firestore:"name"`
	Kind string `firestore:"type"`
}

func toCategoryDoc(c model.Category) categoryDoc {
	return categoryDoc{Name: c.Name, Kind: string(c.Kind)}
}

func (d categoryDoc) toModel(id string) model.Category {
	return model.Category{ID: id, Name: d.Name, Kind: model.Kind(d.Kind)}
}

// AddCategory stores c under the current user with a backend-generated id.
func (s *Store) AddCategory(ctx context.Context, c model.Category) (model.Category, error) {
	uid, ok := s.currentUser()
	if !ok {
		return model.Category{}, nil
	}
	ref, _, err := s.categories(uid).Add(ctx, toCategoryDoc(c))
	if err != nil {
		return model.Category{}, fmt.Errorf("add category: %w", err)
	}
	c.ID = ref.ID
	return c, nil
}

// ListCategories returns all of the current user's categories.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	uid, ok := s.currentUser()
	if !ok {
		return nil, nil
	}
	it := s.categories(uid).Documents(ctx)
	defer it.Stop()
	var out []model.Category
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("iterate categories: %w", err)
		}
		var d categoryDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		out = append(out, d.toModel(snap.Ref.ID))
	}
}

// UpdateCategory writes only the fields present in patch. Transactions keep
// their name snapshot; they are not rewritten.
func (s *Store) UpdateCategory(ctx context.Context, id string, patch store.CategoryPatch) error {
	uid, ok := s.currentUser()
	if !ok {
		return nil
	}
	var updates []firestore.Update
	if patch.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *patch.Name})
	}
	if patch.Kind != nil {
		updates = append(updates, firestore.Update{Path: "type", Value: string(*patch.Kind)})
	}
	if len(updates) == 0 {
		return nil
	}
	if _, err := s.categories(uid).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteCategory removes the category with id. Transactions referencing it
// are left in place.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	uid, ok := s.currentUser()
	if !ok {
		return nil
	}
	if _, err := s.categories(uid).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
