package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ecelliitbhu/ecell-backend/config"
	"github.com/ecelliitbhu/ecell-backend/pkg/jwt"
)

// Client holds revoked admin tokens until they would have expired on their own
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects and pings Redis
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return &Client{rdb: rdb, logger: logger}, nil
}

// ── admin token revocation ──

func revokedAdminKey(jti string) string {
	return "ecell:admin:revoked:" + jti
}

// revocationTTL how long a revocation must be remembered. ok is false when
// the token is already expired and the signature check alone rejects it.
// Tokens without an expiry are remembered forever (ttl 0).
func revocationTTL(claims *jwt.Claims, now time.Time) (ttl time.Duration, ok bool) {
	if claims.ExpiresAt == nil {
		return 0, true
	}
	ttl = claims.ExpiresAt.Time.Sub(now)
	return ttl, ttl > 0
}

// RevokeAdminToken rejects the admin token for the rest of its lifetime
func (c *Client) RevokeAdminToken(ctx context.Context, claims *jwt.Claims) error {
	ttl, ok := revocationTTL(claims, time.Now())
	if !ok {
		return nil
	}
	if err := c.rdb.Set(ctx, revokedAdminKey(claims.ID), claims.Subject, ttl).Err(); err != nil {
		return err
	}
	c.logger.Info("admin token revoked", zap.String("jti", claims.ID), zap.Duration("ttl", ttl))
	return nil
}

// IsAdminTokenRevoked reports whether the admin logged this token out
func (c *Client) IsAdminTokenRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, revokedAdminKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close closes the connection pool
func (c *Client) Close() error {
	return c.rdb.Close()
}
