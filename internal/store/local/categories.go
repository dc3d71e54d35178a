package local

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/anpt04/thuchi/internal/model"
	"github.com/anpt04/thuchi/internal/store"
)

// AddCategory persists c, generating an id when none is given, and returns
// the stored record.
func (s *Store) AddCategory(ctx context.Context, c model.Category) (model.Category, error) {
	if err := s.ready(); err != nil {
		return model.Category{}, err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories(id, name, kind) VALUES(?, ?, ?)`,
		c.ID, c.Name, string(c.Kind))
	if err != nil {
		return model.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

// ListCategories returns all categories.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, kind FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		var kind string
		if err := rows.Scan(&c.ID, &c.Name, &kind); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Kind = model.Kind(kind)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	return out, nil
}

// UpdateCategory overwrites only the fields present in patch. Transactions
// keep their name snapshot; they are not rewritten.
func (s *Store) UpdateCategory(ctx context.Context, id string, patch store.CategoryPatch) error {
	if err := s.ready(); err != nil {
		return err
	}
	var set []string
	var args []interface{}
	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Kind != nil {
		set = append(set, "kind = ?")
		args = append(args, string(*patch.Kind))
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := s.db.ExecContext(ctx,
		"UPDATE categories SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteCategory removes the category with id. Transactions referencing it
// are left in place.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
