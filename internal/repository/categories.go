package repository

import (
	"context"

	"github.com/anpt04/thuchi/internal/model"
	"github.com/anpt04/thuchi/internal/store"
)

// Add validates c and writes it to the active backend, returning the stored
// record with its assigned id.
func (r *Categories) Add(ctx context.Context, c model.Category) (model.Category, error) {
	if err := c.Validate(); err != nil {
		return model.Category{}, err
	}
	return r.active().AddCategory(ctx, c)
}

// List returns all categories from the active backend.
func (r *Categories) List(ctx context.Context) ([]model.Category, error) {
	return r.active().ListCategories(ctx)
}

// Update overwrites only the fields present in patch. Retyping a category a
// transaction already references is allowed; the transaction keeps its own
// kind and name snapshot.
func (r *Categories) Update(ctx context.Context, id string, patch store.CategoryPatch) error {
	if patch.Kind != nil && !patch.Kind.Valid() {
		return &model.ValidationError{Field: "kind", Reason: "want income or expense"}
	}
	return r.active().UpdateCategory(ctx, id, patch)
}

// Delete removes the category with id; its transactions stay.
func (r *Categories) Delete(ctx context.Context, id string) error {
	return r.active().DeleteCategory(ctx, id)
}
