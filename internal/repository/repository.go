// Package repository presents one CRUD contract per entity kind, independent
// of backend. Each operation routes to the local sqlite store while signed
// out and to the per-user cloud store while signed in; callers above this
// layer never branch on backend.
package repository

import (
	"github.com/anpt04/thuchi/internal/auth"
	"github.com/anpt04/thuchi/internal/store"
)

// backend picks the active side. This helper is the only place authentication
// state is consulted for routing.
func backend[S any](p auth.Provider, local, cloud S) S {
	if _, ok := p.CurrentUID(); ok {
		return cloud
	}
	return local
}

// Transactions routes transaction CRUD to the active backend.
type Transactions struct {
	local store.TransactionStore
	cloud store.TransactionStore
	authp auth.Provider
}

// NewTransactions builds the transaction façade.
func NewTransactions(local, cloud store.TransactionStore, p auth.Provider) *Transactions {
	return &Transactions{local: local, cloud: cloud, authp: p}
}

func (r *Transactions) active() store.TransactionStore {
	return backend(r.authp, r.local, r.cloud)
}

// Categories routes category CRUD to the active backend.
type Categories struct {
	local store.CategoryStore
	cloud store.CategoryStore
	authp auth.Provider
}

// NewCategories builds the category façade.
func NewCategories(local, cloud store.CategoryStore, p auth.Provider) *Categories {
	return &Categories{local: local, cloud: cloud, authp: p}
}

func (r *Categories) active() store.CategoryStore {
	return backend(r.authp, r.local, r.cloud)
}

// Limits routes monthly-limit CRUD to the active backend.
type Limits struct {
	local store.LimitStore
	cloud store.LimitStore
	authp auth.Provider
}

// NewLimits builds the limit façade.
func NewLimits(local, cloud store.LimitStore, p auth.Provider) *Limits {
	return &Limits{local: local, cloud: cloud, authp: p}
}

func (r *Limits) active() store.LimitStore {
	return backend(r.authp, r.local, r.cloud)
}
