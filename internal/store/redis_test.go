package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedis(ctx, "127.0.0.1:1", time.Minute)
	assert.ErrorContains(t, err, "redis ping")
}

func TestRedisPutGet(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	r, err := NewRedis(ctx, addr, time.Minute)
	require.NoError(t, err)
	defer r.Close()

	id, err := r.Put(ctx, Artifact{Name: "methane_cost_kcf.png", ContentType: "image/png", Data: []byte("png")})
	require.NoError(t, err)

	a, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "methane_cost_kcf.png", a.Name)
	assert.Equal(t, []byte("png"), a.Data)

	_, err = r.Get(ctx, NewID())
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}
