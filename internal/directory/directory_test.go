package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anpt04/thuchi/internal/auth"
	"github.com/anpt04/thuchi/internal/logger"
	"github.com/anpt04/thuchi/internal/model"
)

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

// switchingLister serves one list while signed out and another while signed
// in, the way the category repository does.
type switchingLister struct {
	session *auth.Session
	local   []model.Category
	cloud   []model.Category
	calls   int
}

func (l *switchingLister) List(ctx context.Context) ([]model.Category, error) {
	l.calls++
	if _, ok := l.session.CurrentUID(); ok {
		return l.cloud, nil
	}
	return l.local, nil
}

func TestReloadOnAuthTransitions(t *testing.T) {
	t.Parallel()
	session := auth.NewSession()
	lister := &switchingLister{
		session: session,
		local:   []model.Category{{ID: "food", Name: "Ăn uống", Kind: model.KindExpense}},
		cloud: []model.Category{
			{ID: "food", Name: "Ăn uống", Kind: model.KindExpense},
			{ID: "abc123", Name: "Thú cưng", Kind: model.KindExpense},
		},
	}

	d := New(lister, session, logger.NewWithWriter(testWriter{t}))
	defer d.Close()

	require.Empty(t, d.Get()) // lazy until first load
	require.NoError(t, d.Reload(context.Background()))
	require.Len(t, d.Get(), 1)

	session.SignIn("u1")
	require.Len(t, d.Get(), 2)

	session.SignOut()
	require.Len(t, d.Get(), 1)
}

func TestSetReplacesCache(t *testing.T) {
	t.Parallel()
	session := auth.NewSession()
	lister := &switchingLister{session: session}
	d := New(lister, session, logger.NewWithWriter(testWriter{t}))
	defer d.Close()

	d.Set([]model.Category{{ID: "a", Name: "A", Kind: model.KindIncome}})
	got := d.Get()
	require.Len(t, got, 1)

	// mutating the returned slice must not reach the cache
	got[0].Name = "mutated"
	require.Equal(t, "A", d.Get()[0].Name)
}

func TestCloseStopsReloads(t *testing.T) {
	t.Parallel()
	session := auth.NewSession()
	lister := &switchingLister{session: session}
	d := New(lister, session, logger.NewWithWriter(testWriter{t}))

	d.Close()
	before := lister.calls
	session.SignIn("u1")
	require.Equal(t, before, lister.calls)
}
