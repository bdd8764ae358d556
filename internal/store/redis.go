package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "energy-econ:artifact:"

// Redis stores artifacts in Redis with a key TTL so several API replicas can
// serve each other's renders.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to addr and verifies the connection with PING.
func NewRedis(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedisWithClient(client, ttl), nil
}

func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Put(ctx context.Context, a Artifact) (string, error) {
	prepare(&a, time.Now())
	raw, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	if err := r.client.Set(ctx, redisKeyPrefix+a.ID, raw, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set: %w", err)
	}
	return a.ID, nil
}

func (r *Redis) Get(ctx context.Context, id string) (*Artifact, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrArtifactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", id, err)
	}
	return &a, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
