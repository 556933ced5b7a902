package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore remembers bearer tokens that were logged out before they
// expired, keyed by their jti.
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type tokenStore struct {
	client *redis.Client
	prefix string
}

func NewTokenStore(client *redis.Client, prefix string) TokenStore {
	return &tokenStore{
		client: client,
		prefix: prefix,
	}
}

func (ts *tokenStore) key(tokenID string) string {
	return fmt.Sprintf("%s:%s", ts.prefix, tokenID)
}

func (ts *tokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	// already expired tokens fail verification anyway
	if ttl <= 0 {
		return nil
	}

	if err := ts.client.Set(ctx, ts.key(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (ts *tokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := ts.client.Exists(ctx, ts.key(tokenID)).Result()
	if err != nil && err != redis.Nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}

	return n > 0, nil
}
