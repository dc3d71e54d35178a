// Package auth defines the current-user contract the persistence layer routes
// on. The concrete identity provider (Firebase Auth in production) lives
// outside this module; anything satisfying Provider plugs in.
package auth

import "sync"

// Provider reports the currently signed-in user, if any. It is the single
// switch point between the local and cloud backends: only the repository
// façades and the cloud store may consult it.
type Provider interface {
	CurrentUID() (uid string, ok bool)
}

// Notifier delivers sign-in/sign-out transitions.
type Notifier interface {
	OnChange(fn func(uid string, signedIn bool)) (remove func())
}

// Session is an in-process Provider with listener fan-out. The CLI drives it
// directly; tests use it to flip authentication state.
type Session struct {
	mu        sync.Mutex
	uid       string
	listeners map[int]func(uid string, signedIn bool)
	nextID    int
}

// NewSession returns a signed-out session.
func NewSession() *Session {
	return &Session{listeners: make(map[int]func(string, bool))}
}

// CurrentUID implements Provider.
func (s *Session) CurrentUID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uid, s.uid != ""
}

// SignIn records uid as the current user and notifies listeners.
func (s *Session) SignIn(uid string) {
	s.mu.Lock()
	s.uid = uid
	fns := s.snapshot()
	s.mu.Unlock()
	for _, fn := range fns {
		fn(uid, true)
	}
}

// SignOut clears the current user and notifies listeners.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.uid = ""
	fns := s.snapshot()
	s.mu.Unlock()
	for _, fn := range fns {
		fn("", false)
	}
}

// OnChange implements Notifier. The returned func unsubscribes.
func (s *Session) OnChange(fn func(uid string, signedIn bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Session) snapshot() []func(string, bool) {
	fns := make([]func(string, bool), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	return fns
}
