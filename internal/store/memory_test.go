package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPutGet(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()

	id, err := m.Put(context.Background(), Artifact{Name: "methane_cost_kg.png", ContentType: "image/png", Data: []byte{1, 2, 3}})
	require.NoError(t, err)
	assert.True(t, ValidID(id))

	a, err := m.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, a.ID)
	assert.Equal(t, []byte{1, 2, 3}, a.Data)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestMemoryUnknownID(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()
	_, err := m.Get(context.Background(), NewID())
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	id, err := m.Put(context.Background(), Artifact{Name: "a"})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = m.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrArtifactNotFound)

	assert.Equal(t, 1, m.Len())
	m.Sweep()
	assert.Equal(t, 0, m.Len())
}

func TestMemoryCloseIsIdempotent(t *testing.T) {
	m := NewMemory(time.Minute, time.Millisecond)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(NewID()))
	assert.False(t, ValidID("../etc/passwd"))
}
