package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"brew_co/internal/models"

	"github.com/go-redis/redis/v8"
)

var ErrStateNotFound = errors.New("persisted state not found")

// Client persists the cart and view mode under a single key.
type Client struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func Initialize(redisURL, stateKey string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewClient(rdb, stateKey, ttl), nil
}

// NewClient wraps an existing connection. A zero ttl keeps the state
// until it is overwritten.
func NewClient(rdb *redis.Client, stateKey string, ttl time.Duration) *Client {
	return &Client{rdb: rdb, key: "state:" + stateKey, ttl: ttl}
}

func (c *Client) SaveState(ctx context.Context, state models.PersistedState) error {
	if state.Cart == nil {
		state.Cart = []models.CartItem{}
	}
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	return c.rdb.Set(ctx, c.key, jsonData, c.ttl).Err()
}

func (c *Client) LoadState(ctx context.Context) (*models.PersistedState, error) {
	val, err := c.rdb.Get(ctx, c.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to get state: %w", err)
	}

	var state models.PersistedState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	return &state, nil
}

func (c *Client) DeleteState(ctx context.Context) error {
	return c.rdb.Del(ctx, c.key).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
