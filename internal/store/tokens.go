package store

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// TokenStore maps opaque bearer tokens to user emails. Tokens are never
// revoked or expired; every successful register/login issues a fresh one and
// old tokens stay valid, so multiple tokens may map to the same email.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewTokenStore creates an empty TokenStore.
func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: make(map[string]string),
	}
}

// Issue generates a token for email, records the mapping, and returns the
// token. The value combines a nanosecond timestamp with a sanitized form of
// the email, so issuances for one email at different times never collide and
// same-instant issuances for different emails stay distinct. The duplicate
// check under the lock covers clocks too coarse to separate two calls.
func (s *TokenStore) Issue(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := fmt.Sprintf("demo_%d_%s", time.Now().UnixNano(), sanitizeEmail(email))
	token := base
	for n := 1; ; n++ {
		if _, exists := s.tokens[token]; !exists {
			break
		}
		token = fmt.Sprintf("%s_%d", base, n)
	}
	s.tokens[token] = email
	return token
}

// Resolve returns the email associated with token. A token, once issued,
// resolves to the same email for its entire lifetime.
func (s *TokenStore) Resolve(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email, ok := s.tokens[token]
	return email, ok
}

// sanitizeEmail makes an email safe for embedding in a token value.
func sanitizeEmail(email string) string {
	return strings.ReplaceAll(email, "@", "_")
}
