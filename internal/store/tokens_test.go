package store

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_IssueAndResolve(t *testing.T) {
	s := NewTokenStore()

	token := s.Issue("alice@example.com")
	assert.True(t, strings.HasPrefix(token, "demo_"))
	assert.Contains(t, token, "alice_example.com")

	email, ok := s.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", email)
}

func TestTokenStore_ResolveUnknown(t *testing.T) {
	s := NewTokenStore()

	_, ok := s.Resolve("demo_0_nobody")
	assert.False(t, ok)
}

func TestTokenStore_MultipleTokensSameEmail(t *testing.T) {
	s := NewTokenStore()

	// Each login issues a new token; old tokens remain valid.
	t1 := s.Issue("alice@example.com")
	t2 := s.Issue("alice@example.com")
	assert.NotEqual(t, t1, t2)

	for _, token := range []string{t1, t2} {
		email, ok := s.Resolve(token)
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", email)
	}
}

func TestTokenStore_ConcurrentIssueUnique(t *testing.T) {
	const n = 128

	s := NewTokenStore()

	var (
		mu     sync.Mutex
		tokens = make(map[string]struct{}, n)
		wg     sync.WaitGroup
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := s.Issue(fmt.Sprintf("user%d@example.com", i%4))
			mu.Lock()
			tokens[token] = struct{}{}
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	// Every issuance produced a distinct token, even for the same email in
	// the same instant.
	assert.Len(t, tokens, n)
}
