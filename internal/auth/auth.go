// Package auth holds the process-wide authentication state for gated sources.
package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrEmptyCredentials is returned when login is attempted with an empty
// username or password. The state is not mutated in that case.
var ErrEmptyCredentials = errors.New("username and password are required")

// Snapshot is an immutable view of the authentication state, passed to source
// adapters so a login or logout mid-flight cannot change what an in-progress
// fetch observes.
type Snapshot struct {
	Authenticated bool
	Token         string
}

// State is the mutable authentication state. Created unauthenticated at
// process start; never persisted across restarts.
type State struct {
	mu            sync.RWMutex
	authenticated bool
	token         string
	onLogout      []func()
}

// NewState returns an unauthenticated State.
func NewState() *State {
	return &State{}
}

// OnLogout registers fn to run after every logout, outside the state lock.
// The aggregator uses this to purge the result cache, since cached
// authenticated responses may embed gated content.
func (s *State) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// Login validates the credentials and, on success, marks the state
// authenticated with a fresh opaque token. There is no real identity backend;
// any non-empty credential pair is accepted.
func (s *State) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrEmptyCredentials
	}
	token := uuid.NewString()
	s.mu.Lock()
	s.authenticated = true
	s.token = token
	s.mu.Unlock()
	return token, nil
}

// Logout clears the token, marks the state unauthenticated, and runs the
// registered logout hooks. Logging out while already unauthenticated still
// runs the hooks; the purge is a no-op on an empty cache.
func (s *State) Logout() {
	s.mu.Lock()
	s.authenticated = false
	s.token = ""
	hooks := s.onLogout
	s.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// Snapshot returns the current state for use by adapters.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Authenticated: s.authenticated, Token: s.token}
}

// Authenticated reports whether a login is active.
func (s *State) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}
