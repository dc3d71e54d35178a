// Package prefs persists small non-authoritative snapshots next to the
// config. The category snapshot warms the directory cache before the first
// backend load; the stores remain the system of record.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/anpt04/thuchi/internal/model"
)

const categoriesFile = "categories.json"

func categoriesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "thuchi")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, categoriesFile), nil
}

// SaveCategories writes the snapshot atomically.
func SaveCategories(cats []model.Category) error {
	path, err := categoriesPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cats, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadCategories reads the snapshot; a missing file is not an error.
func LoadCategories() ([]model.Category, error) {
	path, err := categoriesPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var cats []model.Category
	if err := json.Unmarshal(data, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
