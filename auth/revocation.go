package auth

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// revocationList denylists access tokens until their natural expiry. Backed by
// redis when REDIS_ADDR is set; without it revocation is a no-op and logout
// relies on cookie clearing alone.
type revocationList struct {
	client *redis.Client
}

var revoked = newRevocationList()

func newRevocationList() *revocationList {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return &revocationList{}
	}
	return &revocationList{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})}
}

// RevokeToken denylists an access token for the remainder of its lifetime.
func RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	return revoked.revoke(ctx, token, ttl)
}

// IsTokenRevoked reports whether a token was revoked by a logout. A failing
// revocation store is logged and treated as not revoked.
func IsTokenRevoked(ctx context.Context, token string) bool {
	return revoked.isRevoked(ctx, token)
}

func (r *revocationList) revoke(ctx context.Context, token string, ttl time.Duration) error {
	if r.client == nil || token == "" {
		return nil
	}
	return r.client.Set(ctx, revocationKey(token), "1", ttl).Err()
}

func (r *revocationList) isRevoked(ctx context.Context, token string) bool {
	if r.client == nil || token == "" {
		return false
	}
	n, err := r.client.Exists(ctx, revocationKey(token)).Result()
	if err != nil {
		log.Printf("❌ Revocation check failed: %v", err)
		return false
	}
	return n > 0
}

func revocationKey(token string) string {
	return "revoked:" + token
}
