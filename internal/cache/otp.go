// Package cache holds the Redis-backed one-time-password store used by the
// password-reset flow. Codes expire on their own via TTL.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

type Client struct {
	client *redis.Client
}

func New(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{client: rdb}, nil
}

func otpKey(email string) string {
	return "otp:" + email
}

func (c *Client) StoreOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	return c.client.Set(ctx, otpKey(email), code, ttl).Err()
}

// GetOTP returns the stored code, or "" when none exists or it has expired.
func (c *Client) GetOTP(ctx context.Context, email string) (string, error) {
	code, err := c.client.Get(ctx, otpKey(email)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("otp lookup failed: %w", err)
	}
	return code, nil
}

func (c *Client) DeleteOTP(ctx context.Context, email string) error {
	return c.client.Del(ctx, otpKey(email)).Err()
}

func (c *Client) Close() error {
	return c.client.Close()
}
