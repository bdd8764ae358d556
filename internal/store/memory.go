package store

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	artifact  Artifact
	expiresAt time.Time
}

// Memory is an in-process Store with per-entry expiry.
type Memory struct {
	mu    sync.RWMutex
	items map[string]*entry
	ttl   time.Duration
	now   func() time.Time

	stop chan struct{}
	once sync.Once
}

// NewMemory creates a store whose entries live for ttl. A background
// goroutine sweeps expired entries every sweep interval until Close.
func NewMemory(ttl, sweep time.Duration) *Memory {
	if ttl <= 0 {
		ttl = time.Hour
	}
	m := &Memory{
		items: make(map[string]*entry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	if sweep > 0 {
		go m.cleanup(sweep)
	}
	return m
}

func (m *Memory) Put(_ context.Context, a Artifact) (string, error) {
	now := m.now()
	prepare(&a, now)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[a.ID] = &entry{artifact: a, expiresAt: now.Add(m.ttl)}
	return a.ID, nil
}

func (m *Memory) Get(_ context.Context, id string) (*Artifact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.items[id]
	if !ok || m.now().After(e.expiresAt) {
		return nil, ErrArtifactNotFound
	}
	a := e.artifact
	return &a, nil
}

// Len reports the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *Memory) Close() error {
	m.once.Do(func() { close(m.stop) })
	return nil
}

// Sweep removes expired entries.
func (m *Memory) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for id, e := range m.items {
		if now.After(e.expiresAt) {
			delete(m.items, id)
		}
	}
}

func (m *Memory) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.Sweep()
		case <-m.stop:
			return
		}
	}
}
