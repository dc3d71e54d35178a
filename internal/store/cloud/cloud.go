// Package cloud implements the Firestore backend. Documents live under a
// per-user namespace: users/{uid}/transactions/{id}, users/{uid}/categories/{id}
// and users/{uid}/MonthlyLimit/{YYYY-MM}, with the profile at users/{uid}.
//
// Every operation resolves the current user first. With nobody signed in the
// operation is a no-op returning an empty result; the repository layer never
// routes here unauthenticated, but the store defends itself anyway.
package cloud

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/anpt04/thuchi/internal/auth"
)

const (
	usersCollection        = "users"
	transactionsCollection = "transactions"
	categoriesCollection   = "categories"
	limitsCollection       = "MonthlyLimit"
)

// Store is the Firestore backend.
type Store struct {
	client *firestore.Client
	authp  auth.Provider
	log    zerolog.Logger
}

// New wraps an existing Firestore client.
func New(client *firestore.Client, p auth.Provider, log zerolog.Logger) *Store {
	return &Store{client: client, authp: p, log: log}
}

// Dial creates the Firestore client and wraps it. credentialsFile may be
// empty, in which case application default credentials apply.
func Dial(ctx context.Context, projectID, credentialsFile string, p auth.Provider, log zerolog.Logger) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return New(client, p, log), nil
}

// Close releases the underlying client.
func (s *Store) Close() error { return s.client.Close() }

// currentUser resolves the signed-in user, if any.
func (s *Store) currentUser() (string, bool) {
	return s.authp.CurrentUID()
}

func (s *Store) userDoc(uid string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(uid)
}

func (s *Store) transactions(uid string) *firestore.CollectionRef {
	return s.userDoc(uid).Collection(transactionsCollection)
}

func (s *Store) categories(uid string) *firestore.CollectionRef {
	return s.userDoc(uid).Collection(categoriesCollection)
}

func (s *Store) limits(uid string) *firestore.CollectionRef {
	return s.userDoc(uid).Collection(limitsCollection)
}
