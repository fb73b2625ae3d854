// Package redis carries status snapshots between the poller and websocket
// subscribers over Redis Pub/Sub.
package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kripto-transakcije/explorer/pkg/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Channel layout is "explorer:{chain}:status".
const (
	channelPrefix = "explorer"
	statusSuffix  = "status"

	// StatusPattern matches the status channel of every chain.
	StatusPattern = channelPrefix + ":*:" + statusSuffix
)

// StatusChannel is the channel a chain's status snapshots are published on.
func StatusChannel(chain string) string {
	return channelPrefix + ":" + chain + ":" + statusSuffix
}

// ChainFromChannel extracts the chain key from a status channel name.
// Returns "" if the channel does not follow the layout.
func ChainFromChannel(channel string) string {
	parts := strings.Split(channel, ":")
	if len(parts) != 3 || parts[0] != channelPrefix || parts[2] != statusSuffix {
		return ""
	}
	return parts[1]
}

// Client wraps the Redis client used for live status notifications.
type Client struct {
	client *redis.Client
	logger *zap.Logger
}

// NewClient creates a new Redis client using environment variables for configuration.
// Environment variables:
//   - REDIS_HOST: Redis host (default: "localhost")
//   - REDIS_PORT: Redis port (default: "6379")
//   - REDIS_PASSWORD: Redis password (default: "")
//   - REDIS_DB: Redis database number (default: "0")
func NewClient(ctx context.Context, logger *zap.Logger) (*Client, error) {
	host := utils.Env("REDIS_HOST", "localhost")
	port := utils.Env("REDIS_PORT", "6379")
	db := utils.EnvInt("REDIS_DB", 0)
	addr := fmt.Sprintf("%s:%s", host, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.Env("REDIS_PASSWORD", ""),
		DB:       db,

		PoolSize:     5,
		MinIdleConns: 1,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	logger.Info("Connected to Redis", zap.String("addr", addr), zap.Int("db", db))

	return &Client{client: rdb, logger: logger}, nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// Publish publishes a message to a Pub/Sub channel.
// Best-effort: a failed publish is logged and the next tick tries again.
func (c *Client) Publish(ctx context.Context, channel string, message interface{}) {
	if err := c.client.Publish(ctx, channel, message).Err(); err != nil {
		c.logger.Warn("Failed to publish Redis message",
			zap.String("channel", channel),
			zap.Error(err))
	}
}

// PSubscribe subscribes to one or more channel patterns, e.g. StatusPattern.
// The caller is responsible for closing the PubSub object when done.
func (c *Client) PSubscribe(ctx context.Context, patterns ...string) *redis.PubSub {
	c.logger.Debug("Subscribing to Redis patterns", zap.Strings("patterns", patterns))
	return c.client.PSubscribe(ctx, patterns...)
}

// Health checks if Redis is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
