package auth

import (
	"context"
	"sync"
	"time"

	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

// tokenExpirationBuffer is subtracted from a token's expiry so callers
// rotate slightly before the server would reject it.
const tokenExpirationBuffer = 30 * time.Second

// Token is a bearer access token with an optional expiry. GoCardless
// dashboard tokens do not expire; ExpiresAt stays zero for those.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// Valid reports whether the token can still be sent.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(tokenExpirationBuffer).Before(t.ExpiresAt)
}

// TokenStore holds the current token behind a lock so a long-lived client
// can have its token rotated concurrently with in-flight requests.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the current token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}

// TokenManager supplies the bearer token for outgoing requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager serves a fixed access token, the only credential kind
// the GoCardless API accepts. It supports rotation via SetToken.
type StaticTokenManager struct {
	store *TokenStore
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(accessToken string) *StaticTokenManager {
	store := NewTokenStore()
	store.Set(&Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})

	return &StaticTokenManager{store: store}
}

// GetToken returns the stored token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if !token.Valid() {
		return "", gocardless.ErrAccessTokenRequired
	}

	return token.AccessToken, nil
}

// SetToken replaces the stored token.
func (m *StaticTokenManager) SetToken(accessToken string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}
