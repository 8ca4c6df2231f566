// Package store provides the in-memory user and token stores for the
// ArkadasAI demo API. All state lives in process memory and is lost on
// restart; the stores are safe for concurrent use by request handlers.
package store

import (
	"fmt"
	"sync"

	"arkadasai/internal/types"
)

// UserStore maps email (the unique key) to a user record. The sequential id
// counter is shared between the register and auto-provision paths so ids are
// never duplicated or skipped, regardless of which path creates the record.
type UserStore struct {
	mu     sync.RWMutex
	users  map[string]*types.User
	nextID int
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*types.User),
	}
}

// defaultName is assigned to users provisioned by login and to registrations
// that omit the name field.
const defaultName = "Guest"

// newLocked creates and inserts a record. Caller must hold the write lock.
func (s *UserStore) newLocked(email, name string) *types.User {
	s.nextID++
	u := &types.User{
		ID:    fmt.Sprintf("user_%d", s.nextID),
		Email: email,
		Name:  name,
		Plan:  types.PlanFree,
	}
	s.users[email] = u
	return u
}

// GetOrCreate returns the record for email, provisioning a new one with name
// "Guest" and plan Free if the email has not been seen. It is idempotent:
// an existing record is returned unchanged, with its plan intact.
func (s *UserStore) GetOrCreate(email string) types.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[email]; ok {
		return *u
	}
	return *s.newLocked(email, defaultName)
}

// CreateNew creates a record with the caller-supplied name. The existence
// check and insert happen under one critical section, so concurrent
// registrations for the same email have exactly one winner; the losers fail
// with a conflict error and the stored record is left untouched.
func (s *UserStore) CreateNew(email, name string) (types.User, error) {
	if name == "" {
		name = defaultName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; ok {
		return types.User{}, types.NewAppError(types.ErrCodeConflictEmail, "User already exists", nil)
	}
	return *s.newLocked(email, name), nil
}

// Get returns a copy of the record for email.
func (s *UserStore) Get(email string) (types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return types.User{}, false
	}
	return *u, true
}

// SetPlan overwrites the plan field of an existing record in place, leaving
// all other fields untouched, and returns the updated record. The email is
// expected to exist (callers hold a resolved token); a missing record is an
// internal invariant violation.
func (s *UserStore) SetPlan(email string, plan types.PlanTier) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return types.User{}, types.NewAppError(types.ErrCodeInternalUnexpected, "an unexpected error occurred",
			fmt.Errorf("set plan: no record for resolved email %q", email))
	}
	u.Plan = plan
	return *u, nil
}

// Count returns the number of stored records.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
