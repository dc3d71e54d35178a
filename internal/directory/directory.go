// Package directory keeps a process-wide cached view of the active backend's
// category list. The cache is a read-through convenience only, never the
// system of record: losing it is always recoverable with Reload.
package directory

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/anpt04/thuchi/internal/model"
)

// CategoryLister is the repository slice the directory refreshes from.
type CategoryLister interface {
	List(ctx context.Context) ([]model.Category, error)
}

// Notifier delivers auth transitions; each one triggers a reload.
type Notifier interface {
	OnChange(fn func(uid string, signedIn bool)) (remove func())
}

// Directory is the cached category list.
type Directory struct {
	repo CategoryLister
	log  zerolog.Logger

	mu   sync.Mutex
	cats []model.Category

	unsubscribe func()
}

// New builds a directory over repo and subscribes it to auth transitions.
// The cache starts empty; call Reload (or wait for a transition) to fill it.
func New(repo CategoryLister, n Notifier, log zerolog.Logger) *Directory {
	d := &Directory{repo: repo, log: log}
	d.unsubscribe = n.OnChange(func(uid string, signedIn bool) {
		if err := d.Reload(context.Background()); err != nil {
			// degrade to the stale cache rather than fail the transition
			log.Error().Err(err).Bool("signed_in", signedIn).Msg("category reload failed")
		}
	})
	return d
}

// Close unsubscribes from auth transitions.
func (d *Directory) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

// Get returns the cached list. It may be empty before the first load.
func (d *Directory) Get() []model.Category {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]model.Category, len(d.cats))
	copy(out, d.cats)
	return out
}

// Set replaces the cache, keeping it consistent after a local mutation
// without a full reload.
func (d *Directory) Set(cats []model.Category) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cats = append([]model.Category(nil), cats...)
}

// Reload fetches the full list from the active backend and replaces the
// cache.
func (d *Directory) Reload(ctx context.Context) error {
	cats, err := d.repo.List(ctx)
	if err != nil {
		return err
	}
	d.Set(cats)
	d.log.Debug().Int("count", len(cats)).Msg("category directory reloaded")
	return nil
}
