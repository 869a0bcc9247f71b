package auth

import (
	"context"
	"strings"
	"time"

	"tasker/internal/cache"
)

const (
	sessionKeyPrefix  = "session:"
	denylistKeyPrefix = "denylist:"
)

// SessionStoreInterface defines the interface for session token storage.
// All operations fail safe: an unreachable cache behaves like a miss, since
// authorization is always decided by token verification, never by the cache.
type SessionStoreInterface interface {
	Token(ctx context.Context, email string) string
	SaveToken(ctx context.Context, email, token string, ttl time.Duration) error
	DeleteToken(ctx context.Context, email string) bool
	Emails(ctx context.Context) []string
	RevokeID(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

// SessionStore maps user emails to their last-issued token in Redis and keeps
// a denylist of revoked token IDs so logout takes effect before natural expiry.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Token returns the cached token for email, or "" on a miss.
func (s *SessionStore) Token(ctx context.Context, email string) string {
	data, _ := s.cache.Get(ctx, sessionKeyPrefix+email)
	return string(data)
}

// SaveToken stores token under email. The TTL must match the token's own
// expiry so the cache entry never outlives the token it holds.
func (s *SessionStore) SaveToken(ctx context.Context, email, token string, ttl time.Duration) error {
	return s.cache.Set(ctx, sessionKeyPrefix+email, []byte(token), ttl)
}

// DeleteToken removes the cached token for email, reporting whether an entry
// existed. Deleting an absent entry is not an error.
func (s *SessionStore) DeleteToken(ctx context.Context, email string) bool {
	return s.cache.Delete(ctx, sessionKeyPrefix+email)
}

// Emails returns the emails with a cached session token.
func (s *SessionStore) Emails(ctx context.Context) []string {
	keys := s.cache.Keys(ctx, sessionKeyPrefix+"*")
	emails := make([]string, 0, len(keys))
	for _, key := range keys {
		emails = append(emails, strings.TrimPrefix(key, sessionKeyPrefix))
	}
	return emails
}

// RevokeID denylists a token ID until the token would have expired anyway.
func (s *SessionStore) RevokeID(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.cache.Set(ctx, denylistKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsRevoked checks whether a token ID has been denylisted.
func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) bool {
	data, _ := s.cache.Get(ctx, denylistKeyPrefix+tokenID)
	return data != nil
}
